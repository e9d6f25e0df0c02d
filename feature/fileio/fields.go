package fileio

import (
	"fmt"
	"strings"

	"dispute-reconciler/core/reconcile"
	"dispute-reconciler/core/utils"
)

// DefaultCurrency fills records that omit a currency.
const DefaultCurrency = "USD"

// fieldKey folds "DisputeId", "dispute_id" and "dispute-id" to one key.
func fieldKey(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

// fromFields builds a dispute from loosely keyed values. A present but
// unparseable amount fails unless lenient is set, in which case it is zero.
func fromFields(fields map[string]any, lenient bool) (reconcile.Dispute, error) {
	norm := make(map[string]any, len(fields))
	for k, v := range fields {
		norm[fieldKey(k)] = v
	}

	d := reconcile.Dispute{
		DisputeID:     utils.ToString(norm["disputeid"]),
		TransactionID: utils.ToString(norm["transactionid"]),
		Currency:      utils.DefaultString(utils.ToString(norm["currency"]), DefaultCurrency),
		Status:        utils.ToString(norm["status"]),
		Reason:        utils.ToString(norm["reason"]),
	}

	raw, ok := norm["amount"]
	if !ok || raw == nil || utils.ToString(raw) == "" {
		return d, nil
	}
	if lenient {
		d.Amount = utils.ToDecimal(raw)
		return d, nil
	}
	amount, valid := utils.ParseDecimal(utils.ToString(raw))
	if !valid {
		return d, fmt.Errorf("dispute %q: invalid amount %q", d.DisputeID, utils.ToString(raw))
	}
	d.Amount = amount
	return d, nil
}

package fileio

import (
	"encoding/xml"
	"errors"
	"io"

	"dispute-reconciler/core/reconcile"
)

// xmlDispute mirrors a <Dispute> element. Pointers distinguish absent
// children from empty ones.
type xmlDispute struct {
	DisputeID     *string `xml:"DisputeId"`
	TransactionID *string `xml:"TransactionId"`
	Amount        *string `xml:"Amount"`
	Currency      *string `xml:"Currency"`
	Status        *string `xml:"Status"`
	Reason        *string `xml:"Reason"`
}

// decodeXML collects every <Dispute> element at any depth. Unparseable
// amounts read as zero.
func decodeXML(r io.Reader) ([]reconcile.Dispute, error) {
	dec := xml.NewDecoder(r)
	disputes := []reconcile.Dispute{}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Dispute" {
			continue
		}

		var raw xmlDispute
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return nil, err
		}

		fields := map[string]any{}
		set := func(key string, v *string) {
			if v != nil {
				fields[key] = *v
			}
		}
		set("DisputeId", raw.DisputeID)
		set("TransactionId", raw.TransactionID)
		set("Amount", raw.Amount)
		set("Currency", raw.Currency)
		set("Status", raw.Status)
		set("Reason", raw.Reason)

		d, _ := fromFields(fields, true)
		disputes = append(disputes, d)
	}
	return disputes, nil
}

package disputes

import (
	"time"

	"dispute-reconciler/core/reconcile"

	"github.com/shopspring/decimal"
)

// TableName is the table backing the internal dispute store.
const TableName = "disputes"

// DisputeRecord is the persisted form of an internal dispute.
// Amount is stored as text to keep exact decimal values across drivers.
type DisputeRecord struct {
	DisputeID     string          `gorm:"column:dispute_id;primaryKey;size:64"`
	TransactionID string          `gorm:"column:transaction_id;size:64"`
	Amount        decimal.Decimal `gorm:"column:amount;type:varchar(64)"`
	Currency      string          `gorm:"column:currency;size:8"`
	Status        string          `gorm:"column:status;size:32;index"`
	Reason        string          `gorm:"column:reason;size:255"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

// TableName implements gorm's tabler.
func (DisputeRecord) TableName() string {
	return TableName
}

// columns lists what VerifySchema expects to find.
var columns = []string{"dispute_id", "transaction_id", "amount", "currency", "status", "reason"}

// ToDispute converts the record into the engine's type.
func (r DisputeRecord) ToDispute() reconcile.Dispute {
	return reconcile.Dispute{
		DisputeID:     r.DisputeID,
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Status:        r.Status,
		Reason:        r.Reason,
	}
}

// FromDispute converts an engine dispute into a record.
func FromDispute(d reconcile.Dispute) DisputeRecord {
	return DisputeRecord{
		DisputeID:     d.DisputeID,
		TransactionID: d.TransactionID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		Status:        d.Status,
		Reason:        d.Reason,
	}
}

// SampleDisputes is the seed data for an empty store.
func SampleDisputes() []reconcile.Dispute {
	return []reconcile.Dispute{
		{DisputeID: "case_001", TransactionID: "txn_001", Amount: decimal.RequireFromString("100.00"), Currency: "USD", Status: "Open", Reason: "Fraud"},
		{DisputeID: "case_002", TransactionID: "txn_005", Amount: decimal.RequireFromString("150.00"), Currency: "USD", Status: "Lost", Reason: "Product Not Received"},
		{DisputeID: "case_004", TransactionID: "txn_007", Amount: decimal.RequireFromString("90.00"), Currency: "USD", Status: "Open", Reason: "Unauthorized"},
	}
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is the default invoice status when the caller supplies none.
const StatusPending = "pending"

// Invoice is the header row of an invoice. The invoice number is assigned
// once, right after creation, and never changes afterwards. TotalDue is
// derived from the line items on every write; it is never taken from the
// caller.
type Invoice struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ClientID      *uint           `gorm:"index" json:"client_id"`
	InvoiceNumber string          `gorm:"type:varchar(30)" json:"invoice_number"`
	InvoiceDate   *time.Time      `gorm:"type:date" json:"invoice_date"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalDue      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_due"`
}

// LineItem is one billable entry belonging to an invoice. Line items carry
// no identity across updates: every invoice update replaces the full set.
type LineItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	InvoiceID   uint            `gorm:"not null;index" json:"invoice_id"`
	ItemDate    *time.Time      `gorm:"type:date" json:"item_date"`
	Activity    string          `gorm:"type:varchar(255)" json:"activity"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"quantity"`
	Rate        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"rate"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"amount"`
}

// TableName keeps the historical table name from the original schema.
func (LineItem) TableName() string {
	return "invoice_line_items"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quotation represents a price proposal sent to a client before billing
type Quotation struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ClientID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"client_id"`
	Total      decimal.Decimal      `gorm:"type:decimal(15,2);not null;default:0" json:"total"`
	ValidUntil time.Time            `gorm:"not null" json:"valid_until"`
	Status     enum.QuotationStatus `gorm:"default:0" json:"status"`
	Notes      *string              `gorm:"type:text" json:"notes,omitempty"`
	BillID     *uuid.UUID           `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`

	Items []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// Converted reports whether a bill was already issued from the quotation
func (q *Quotation) Converted() bool {
	return q.BillID != nil
}

// Recalculate derives every item amount and the quotation total from the items
func (q *Quotation) Recalculate() {
	total := decimal.Zero
	for i := range q.Items {
		q.Items[i].QuotationID = q.ID
		q.Items[i].Position = i
		q.Items[i].Recalculate()
		total = total.Add(q.Items[i].Amount)
	}
	q.Total = total
}

// LineItems returns the quotation items without their quotation linkage
func (q *Quotation) LineItems() []LineItem {
	items := make([]LineItem, len(q.Items))
	for i, item := range q.Items {
		items[i] = item.LineItem
	}
	return items
}

func (q *Quotation) Clone() *Quotation {
	out := *q
	out.Notes = cloneString(q.Notes)
	if q.BillID != nil {
		billID := *q.BillID
		out.BillID = &billID
	}
	out.Items = append([]QuotationItem(nil), q.Items...)
	return &out
}

// QuotationItem is a line of a quotation
type QuotationItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	QuotationID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Position    int       `gorm:"not null;default:0" json:"-"`
	LineItem    `gorm:"embedded"`
}

// BeforeCreate generates a UUID before creating a new quotation item
func (i *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (QuotationItem) TableName() string {
	return "quotation_items"
}

func NewQuotationItems(items []LineItem) []QuotationItem {
	out := make([]QuotationItem, len(items))
	for i, item := range items {
		out[i] = QuotationItem{Position: i, LineItem: item}
	}
	return out
}

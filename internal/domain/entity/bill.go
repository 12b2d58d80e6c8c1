package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill represents an invoice issued to a client
type Bill struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber string          `gorm:"size:50;uniqueIndex;not null" json:"bill_number"`
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	Total      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total"`
	Status     enum.BillStatus `gorm:"default:0" json:"status"`
	DueDate    time.Time       `gorm:"not null" json:"due_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Items []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// Recalculate derives every item amount and the bill total from the items
func (b *Bill) Recalculate() {
	total := decimal.Zero
	for i := range b.Items {
		b.Items[i].BillID = b.ID
		b.Items[i].Position = i
		b.Items[i].Recalculate()
		total = total.Add(b.Items[i].Amount)
	}
	b.Total = total
}

// LineItems returns the bill items without their bill linkage
func (b *Bill) LineItems() []LineItem {
	items := make([]LineItem, len(b.Items))
	for i, item := range b.Items {
		items[i] = item.LineItem
	}
	return items
}

func (b *Bill) Clone() *Bill {
	out := *b
	out.Items = append([]BillItem(nil), b.Items...)
	return &out
}

// BillItem is a line of a bill
type BillItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	BillID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Position int       `gorm:"not null;default:0" json:"-"`
	LineItem `gorm:"embedded"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (BillItem) TableName() string {
	return "bill_items"
}

// NewBillItems wraps plain line items for storage on a bill
func NewBillItems(items []LineItem) []BillItem {
	out := make([]BillItem, len(items))
	for i, item := range items {
		out[i] = BillItem{Position: i, LineItem: item}
	}
	return out
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment records money received against a bill
type Payment struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BillID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"bill_id"`
	Amount         decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method         enum.PaymentMethod `gorm:"not null;default:0" json:"method"`
	Date           time.Time          `gorm:"not null;index" json:"date"`
	Notes          *string            `gorm:"type:text" json:"notes,omitempty"`
	TransactionRef string             `gorm:"size:100;index" json:"transaction_ref"`
	CreatedAt      time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) Clone() *Payment {
	out := *p
	out.Notes = cloneString(p.Notes)
	return &out
}

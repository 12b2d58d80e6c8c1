package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPaymentTerms is the number of days a client has to pay a bill
const DefaultPaymentTerms = 30

// Client represents a billed customer of the business
type Client struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;index" json:"email"`
	Phone        *string   `gorm:"size:50" json:"phone,omitempty"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	PaymentTerms int       `gorm:"not null;default:30" json:"payment_terms"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// Clone returns a copy that shares no pointers with c
func (c *Client) Clone() *Client {
	out := *c
	out.Phone = cloneString(c.Phone)
	out.Address = cloneString(c.Address)
	return &out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

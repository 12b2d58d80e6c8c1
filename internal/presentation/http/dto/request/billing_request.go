package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one line of a bill or quotation
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Email        string  `json:"email" binding:"required"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	PaymentTerms int     `json:"payment_terms"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	PaymentTerms *int    `json:"payment_terms"`
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	ClientID uuid.UUID         `json:"client_id" binding:"required"`
	Items    []LineItemRequest `json:"items" binding:"required"`
	DueDate  *string           `json:"due_date"`
}

// UpdateBillRequest represents a bill update request
type UpdateBillRequest struct {
	Items   []LineItemRequest `json:"items"`
	DueDate *string           `json:"due_date"`
}

// RecordPaymentRequest represents a manual payment
type RecordPaymentRequest struct {
	BillID uuid.UUID          `json:"bill_id" binding:"required"`
	Amount decimal.Decimal    `json:"amount"`
	Method enum.PaymentMethod `json:"method"`
	Date   *string            `json:"date"`
	Notes  *string            `json:"notes"`
}

// CreateQuotationRequest represents a quotation creation request
type CreateQuotationRequest struct {
	ClientID   uuid.UUID         `json:"client_id" binding:"required"`
	Items      []LineItemRequest `json:"items" binding:"required"`
	ValidUntil *string           `json:"valid_until"`
	Notes      *string           `json:"notes"`
}

// UpdateQuotationRequest represents a quotation update request
type UpdateQuotationRequest struct {
	Items      []LineItemRequest `json:"items"`
	ValidUntil *string           `json:"valid_until"`
	Notes      *string           `json:"notes"`
}

// UpdateQuotationStatusRequest moves a quotation to another status
type UpdateQuotationStatusRequest struct {
	Status enum.QuotationStatus `json:"status"`
}

package request

import (
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest represents a service creation request
type CreateServiceRequest struct {
	Name        string               `json:"name" binding:"required,max=255"`
	Description string               `json:"description"`
	Category    enum.ServiceCategory `json:"category"`
	Price       decimal.Decimal      `json:"price"`
	Unit        enum.ServiceUnit     `json:"unit"`
}

// UpdateServiceRequest represents a service update request
type UpdateServiceRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Category    *enum.ServiceCategory `json:"category"`
	Price       *decimal.Decimal      `json:"price"`
	Unit        *enum.ServiceUnit     `json:"unit"`
	IsActive    *bool                 `json:"is_active"`
}

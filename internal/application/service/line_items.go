package service

import (
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineItemInput is one line of a bill or quotation. Amount is derived.
type LineItemInput struct {
	Description string          `json:"description" validate:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	Rate        decimal.Decimal `json:"rate" validate:"gte=0"`
}

func toLineItems(inputs []LineItemInput) []entity.LineItem {
	items := make([]entity.LineItem, len(inputs))
	for i, in := range inputs {
		items[i] = entity.LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
		}
		items[i].Recalculate()
	}
	return items
}

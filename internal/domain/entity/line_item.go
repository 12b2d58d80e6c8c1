package entity

import "github.com/shopspring/decimal"

// LineItem is one priced row of a bill or quotation
type LineItem struct {
	Description string          `gorm:"size:500;not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Rate        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"rate"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
}

// MoneyPlaces is the number of decimal places stored for money columns
const MoneyPlaces = 2

// Recalculate sets Amount to Quantity x Rate rounded to whole cents
func (i *LineItem) Recalculate() {
	i.Amount = i.Quantity.Mul(i.Rate).Round(MoneyPlaces)
}

// HasMoneyScale reports whether d fits a money column without rounding
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}

// SumAmounts adds up the amount of every line item
func SumAmounts(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a payment was received
type PaymentMethod int

const (
	PaymentMethodCash         PaymentMethod = 0
	PaymentMethodBankTransfer PaymentMethod = 1
	PaymentMethodCheck        PaymentMethod = 2
	PaymentMethodCreditCard   PaymentMethod = 3
	PaymentMethodPayPal       PaymentMethod = 4
)

var paymentMethodNames = []string{"Cash", "Bank Transfer", "Check", "Credit Card", "PayPal"}

// PaymentMethods lists every accepted method in display order
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodBankTransfer,
		PaymentMethodCheck,
		PaymentMethodCreditCard,
		PaymentMethodPayPal,
	}
}

func (m PaymentMethod) String() string {
	return nameOf(paymentMethodNames, int(m))
}

func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodPayPal
}

func ParsePaymentMethod(str string) (PaymentMethod, error) {
	i, ok := lookup(paymentMethodNames, str)
	if !ok {
		return PaymentMethodCash, fmt.Errorf("invalid payment method %q", str)
	}
	return PaymentMethod(i), nil
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	if i, ok := scanInt(value); ok {
		*m = PaymentMethod(i)
	}
	return nil
}

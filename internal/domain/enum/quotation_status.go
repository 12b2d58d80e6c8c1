package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// QuotationStatus represents the acceptance workflow of a quotation
type QuotationStatus int

const (
	QuotationStatusDraft    QuotationStatus = 0
	QuotationStatusSent     QuotationStatus = 1
	QuotationStatusAccepted QuotationStatus = 2
	QuotationStatusRejected QuotationStatus = 3
)

var quotationStatusNames = []string{"draft", "sent", "accepted", "rejected"}

func (s QuotationStatus) String() string {
	return nameOf(quotationStatusNames, int(s))
}

func (s QuotationStatus) IsValid() bool {
	return s >= QuotationStatusDraft && s <= QuotationStatusRejected
}

// IsTerminal reports whether no further transition is allowed
func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusAccepted || s == QuotationStatusRejected
}

// CanTransitionTo reports whether the workflow allows moving from s to next
func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	switch s {
	case QuotationStatusDraft:
		return next == QuotationStatusSent
	case QuotationStatusSent:
		return next == QuotationStatusAccepted || next == QuotationStatusRejected
	}
	return false
}

// ParseQuotationStatus converts a status name into a QuotationStatus
func ParseQuotationStatus(str string) (QuotationStatus, error) {
	i, ok := lookup(quotationStatusNames, str)
	if !ok {
		return QuotationStatusDraft, fmt.Errorf("invalid quotation status %q", str)
	}
	return QuotationStatus(i), nil
}

func (s QuotationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuotationStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = QuotationStatus(i)
		return nil
	}
	parsed, err := ParseQuotationStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s QuotationStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuotationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuotationStatusDraft
		return nil
	}
	if i, ok := scanInt(value); ok {
		*s = QuotationStatus(i)
	}
	return nil
}

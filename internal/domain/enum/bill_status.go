package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BillStatus represents the stored status of a bill
type BillStatus int

const (
	BillStatusPending BillStatus = 0
	BillStatusPaid    BillStatus = 1
	BillStatusOverdue BillStatus = 2
)

var billStatusNames = []string{"pending", "paid", "overdue"}

func (s BillStatus) String() string {
	return nameOf(billStatusNames, int(s))
}

func (s BillStatus) IsValid() bool {
	return s >= BillStatusPending && s <= BillStatusOverdue
}

// ParseBillStatus converts a status name into a BillStatus
func ParseBillStatus(str string) (BillStatus, error) {
	i, ok := lookup(billStatusNames, str)
	if !ok {
		return BillStatusPending, fmt.Errorf("invalid bill status %q", str)
	}
	return BillStatus(i), nil
}

func (s BillStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BillStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BillStatus(i)
		return nil
	}
	parsed, err := ParseBillStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s BillStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *BillStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BillStatusPending
		return nil
	}
	if i, ok := scanInt(value); ok {
		*s = BillStatus(i)
	}
	return nil
}

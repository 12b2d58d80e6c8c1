package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ServiceUnit is the billing unit a service price refers to
type ServiceUnit int

const (
	ServiceUnitProject ServiceUnit = 0
	ServiceUnitHour    ServiceUnit = 1
	ServiceUnitDay     ServiceUnit = 2
	ServiceUnitWeek    ServiceUnit = 3
	ServiceUnitMonth   ServiceUnit = 4
	ServiceUnitPiece   ServiceUnit = 5
)

var serviceUnitNames = []string{"project", "hour", "day", "week", "month", "piece"}

func (u ServiceUnit) String() string {
	return nameOf(serviceUnitNames, int(u))
}

func (u ServiceUnit) IsValid() bool {
	return u >= ServiceUnitProject && u <= ServiceUnitPiece
}

func ParseServiceUnit(str string) (ServiceUnit, error) {
	i, ok := lookup(serviceUnitNames, str)
	if !ok {
		return ServiceUnitProject, fmt.Errorf("invalid service unit %q", str)
	}
	return ServiceUnit(i), nil
}

func (u ServiceUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *ServiceUnit) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*u = ServiceUnit(i)
		return nil
	}
	parsed, err := ParseServiceUnit(str)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u ServiceUnit) Value() (driver.Value, error) {
	return int64(u), nil
}

func (u *ServiceUnit) Scan(value interface{}) error {
	if value == nil {
		*u = ServiceUnitProject
		return nil
	}
	if i, ok := scanInt(value); ok {
		*u = ServiceUnit(i)
	}
	return nil
}

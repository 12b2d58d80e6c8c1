package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ServiceCategory groups catalog services
type ServiceCategory int

const (
	ServiceCategoryDesign      ServiceCategory = 0
	ServiceCategoryDevelopment ServiceCategory = 1
	ServiceCategoryMarketing   ServiceCategory = 2
	ServiceCategoryWriting     ServiceCategory = 3
	ServiceCategoryConsulting  ServiceCategory = 4
	ServiceCategoryOther       ServiceCategory = 5
)

var serviceCategoryNames = []string{"Design", "Development", "Marketing", "Writing", "Consulting", "Other"}

func (c ServiceCategory) String() string {
	return nameOf(serviceCategoryNames, int(c))
}

func (c ServiceCategory) IsValid() bool {
	return c >= ServiceCategoryDesign && c <= ServiceCategoryOther
}

func ParseServiceCategory(str string) (ServiceCategory, error) {
	i, ok := lookup(serviceCategoryNames, str)
	if !ok {
		return ServiceCategoryOther, fmt.Errorf("invalid service category %q", str)
	}
	return ServiceCategory(i), nil
}

func (c ServiceCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ServiceCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ServiceCategory(i)
		return nil
	}
	parsed, err := ParseServiceCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ServiceCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ServiceCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ServiceCategoryOther
		return nil
	}
	if i, ok := scanInt(value); ok {
		*c = ServiceCategory(i)
	}
	return nil
}

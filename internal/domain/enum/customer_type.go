package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerType represents the type of customer
type CustomerType string

const (
	CustomerTypeRetail    CustomerType = "retail"
	CustomerTypeWholesale CustomerType = "wholesale"
)

func (t CustomerType) String() string {
	return string(t)
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = CustomerType(str)
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypeRetail
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CustomerType(v)
	case []byte:
		*t = CustomerType(string(v))
	}
	return nil
}

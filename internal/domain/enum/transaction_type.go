package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionType represents the direction of a stock movement
type TransactionType string

const (
	TransactionTypeIn  TransactionType = "in"
	TransactionTypeOut TransactionType = "out"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = TransactionType(str)
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeIn
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = TransactionType(v)
	case []byte:
		*t = TransactionType(string(v))
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ActivityAction represents the kind of mutation recorded in the audit trail
type ActivityAction string

const (
	ActivityActionCreate ActivityAction = "create"
	ActivityActionUpdate ActivityAction = "update"
	ActivityActionDelete ActivityAction = "delete"
)

func (a ActivityAction) String() string {
	return string(a)
}

func (a ActivityAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

func (a *ActivityAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*a = ActivityAction(str)
	return nil
}

func (a ActivityAction) Value() (driver.Value, error) {
	return string(a), nil
}

func (a *ActivityAction) Scan(value interface{}) error {
	if value == nil {
		*a = ActivityActionCreate
		return nil
	}
	switch v := value.(type) {
	case string:
		*a = ActivityAction(v)
	case []byte:
		*a = ActivityAction(string(v))
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod is how an order was paid.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
)

// IsValid reports whether the method is one of the accepted values.
func (p PaymentMethod) IsValid() bool {
	return p == PaymentMethodCash || p == PaymentMethodBankTransfer || p == PaymentMethodCard
}

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = PaymentMethod(str)
	return nil
}

func (p PaymentMethod) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = PaymentMethod(v)
	case []byte:
		*p = PaymentMethod(string(v))
	}
	return nil
}

package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodBankTransfer.IsValid())
	assert.True(t, PaymentMethodCard.IsValid())

	assert.False(t, PaymentMethod("").IsValid())
	assert.False(t, PaymentMethod("cheque").IsValid())
	assert.False(t, PaymentMethod("CASH").IsValid())
}

func TestPaymentMethodScanNilDefaultsToCash(t *testing.T) {
	var p PaymentMethod
	assert.NoError(t, p.Scan(nil))
	assert.Equal(t, PaymentMethodCash, p)
}

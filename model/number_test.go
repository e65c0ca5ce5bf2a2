package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBankAccountNumber(t *testing.T) {
	assert.Equal(t, AccountNumber("000000000001"), BankAccountNumber(1))
	assert.Equal(t, AccountNumber("000000000042"), BankAccountNumber(42))
	assert.Len(t, BankAccountNumber(123456).String(), 12)
}

func TestCreditCardNumber(t *testing.T) {
	assert.Equal(t, AccountNumber("00000000000001"), CreditCardNumber(1))
	assert.Len(t, CreditCardNumber(987).String(), 14)
}

func TestAccountNumber_IsCreditCard(t *testing.T) {
	assert.False(t, BankAccountNumber(7).IsCreditCard())
	assert.True(t, CreditCardNumber(7).IsCreditCard())
}

package model

import "fmt"

// Display identifiers are derived from primary keys by zero-padding,
// with a different width per entity type. The widths double as the
// discriminator between bank accounts and credit cards, so they must
// only ever be applied through the constructors below.
const (
	bankAccountNumberLength = 12
	creditCardNumberLength  = 14
)

// AccountNumber is a fixed-width, zero-padded display identifier used
// as the ledger join key.
type AccountNumber string

// BankAccountNumber derives the account number for a bank account ID.
func BankAccountNumber(id int) AccountNumber {
	return AccountNumber(fmt.Sprintf("%0*d", bankAccountNumberLength, id))
}

// CreditCardNumber derives the account number for a credit card ID.
func CreditCardNumber(id int) AccountNumber {
	return AccountNumber(fmt.Sprintf("%0*d", creditCardNumberLength, id))
}

// IsCreditCard reports whether the number addresses a credit card.
func (n AccountNumber) IsCreditCard() bool {
	return len(n) == creditCardNumberLength
}

func (n AccountNumber) String() string {
	return string(n)
}

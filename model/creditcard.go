package model

// CreditCard belongs to exactly one account. Card names are stored
// lowercase and title-cased for display.
type CreditCard struct {
	ID             int     `json:"id"`
	AccountID      int     `json:"account_id"`
	CreditCardName string  `json:"credit_card_name"`
	CurrentBalance float64 `json:"current_balance"`
	MinimumBalance float64 `json:"minimum_balance"`
}

// CurrencyAccount is a currency sub-account of a credit card.
type CurrencyAccount struct {
	ID       int     `json:"id"`
	CardID   int     `json:"card_id"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}

// CurrencyAccountInfo is a currency sub-account joined with the name of
// the card it belongs to, as shown to the user.
type CurrencyAccountInfo struct {
	CardName string  `json:"card_name"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}

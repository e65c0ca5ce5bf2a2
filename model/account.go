package model

// Account identifies a conversation participant or a synthetic
// counterparty (vendor, recipient, depositor). Session IDs of synthetic
// accounts carry a type prefix, e.g. "vendor_0".
type Account struct {
	ID                int    `json:"id"`
	SessionID         string `json:"session_id"`
	AccountHolderName string `json:"account_holder_name"`
	IsVendor          bool   `json:"is_vendor"`
	Currency          string `json:"currency"`
}

// RecipientRelationship maps an account to a nickname for another
// account, used for "pay so-and-so" lookups.
type RecipientRelationship struct {
	ID                 int    `json:"id"`
	AccountID          int    `json:"account_id"`
	RecipientAccountID int    `json:"recipient_account_id"`
	RecipientNickname  string `json:"recipient_nickname"`
}

package model

import (
	"time"
)

// Transaction is a directed money movement between two account numbers.
// Rows are append-only.
type Transaction struct {
	ID                int       `json:"id"`
	FromAccountNumber string    `json:"from_account_number"`
	ToAccountNumber   string    `json:"to_account_number"`
	Amount            float64   `json:"amount"`
	Timestamp         time.Time `json:"timestamp"`
}

// OfflineTransaction records a cash-style movement between two accounts.
// It references account IDs directly and is not reconciled against balances.
type OfflineTransaction struct {
	ID            int       `json:"id"`
	FromAccountID int       `json:"from_account"`
	ToAccountID   int       `json:"to_account"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}

package repository

import (
	"database/sql"

	"bankbot-actions/logger"
	"bankbot-actions/model"

	"github.com/sirupsen/logrus"
)

// IOfflineTransactionRepository defines the contract for out-of-band
// (cash-style) transaction records.
type IOfflineTransactionRepository interface {
	Create(transaction *model.OfflineTransaction) error
}

type OfflineTransactionRepository struct {
	DB *sql.DB
}

func NewOfflineTransactionRepository(db *sql.DB) *OfflineTransactionRepository {
	return &OfflineTransactionRepository{DB: db}
}

// Create appends an offline transaction row.
func (r *OfflineTransactionRepository) Create(transaction *model.OfflineTransaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account": transaction.FromAccountID,
		"to_account":   transaction.ToAccountID,
		"amount":       transaction.Amount,
	})
	log.Info("Executing query to create a new offline transaction")

	query := `INSERT INTO offline_transactions (from_account, to_account, amount, timestamp)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.DB.QueryRow(query, transaction.FromAccountID, transaction.ToAccountID, transaction.Amount, transaction.Timestamp).Scan(&transaction.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create offline transaction query")
		return err
	}
	return nil
}

package repository

import (
	"database/sql"

	"bankbot-actions/logger"
	"bankbot-actions/model"

	"github.com/sirupsen/logrus"
)

// ICurrencyAccountRepository defines the contract for currency
// sub-account database operations.
type ICurrencyAccountRepository interface {
	Create(account *model.CurrencyAccount) error
	ListByCardID(cardID int) ([]*model.CurrencyAccount, error)
	ExistsForCard(cardID int, currency string) (bool, error)
}

type CurrencyAccountRepository struct {
	DB *sql.DB
}

func NewCurrencyAccountRepository(db *sql.DB) *CurrencyAccountRepository {
	return &CurrencyAccountRepository{DB: db}
}

// Create adds a currency sub-account. Currency codes are stored uppercase.
func (r *CurrencyAccountRepository) Create(account *model.CurrencyAccount) error {
	log := logger.Log.WithFields(logrus.Fields{
		"card_id":  account.CardID,
		"currency": account.Currency,
	})
	log.Info("Executing query to create a new currency account")

	query := `INSERT INTO currency_accounts (card_id, currency, balance) VALUES ($1, UPPER($2), $3) RETURNING id`
	err := r.DB.QueryRow(query, account.CardID, account.Currency, account.Balance).Scan(&account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create currency account query")
		return err
	}
	return nil
}

// ListByCardID retrieves all currency sub-accounts of a credit card.
func (r *CurrencyAccountRepository) ListByCardID(cardID int) ([]*model.CurrencyAccount, error) {
	query := `SELECT id, card_id, currency, balance FROM currency_accounts WHERE card_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, cardID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for currency accounts by card ID")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.CurrencyAccount
	for rows.Next() {
		var acc model.CurrencyAccount
		if err := rows.Scan(&acc.ID, &acc.CardID, &acc.Currency, &acc.Balance); err != nil {
			logger.Log.WithError(err).Error("Failed to scan currency account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

// ExistsForCard checks whether the card already has a sub-account in the
// given currency.
func (r *CurrencyAccountRepository) ExistsForCard(cardID int, currency string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM currency_accounts WHERE card_id = $1 AND currency = UPPER($2))`
	if err := r.DB.QueryRow(query, cardID, currency).Scan(&exists); err != nil {
		logger.Log.WithError(err).Error("Failed to check currency account existence")
		return false, err
	}
	return exists, nil
}

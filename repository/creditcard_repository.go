package repository

import (
	"database/sql"
	"fmt"

	"bankbot-actions/logger"
	"bankbot-actions/model"

	"github.com/sirupsen/logrus"
)

// ICreditCardRepository defines the contract for credit card database operations.
type ICreditCardRepository interface {
	Create(card *model.CreditCard) error
	ListByAccountID(accountID int) ([]*model.CreditCard, error)
	GetByName(accountID int, name string) (*model.CreditCard, error)
	GetForUpdate(tx *sql.Tx, cardID int) (*model.CreditCard, error)
	UpdateBalances(tx *sql.Tx, cardID int, currentBalance, minimumBalance float64) error
}

type CreditCardRepository struct {
	DB *sql.DB
}

func NewCreditCardRepository(db *sql.DB) *CreditCardRepository {
	return &CreditCardRepository{DB: db}
}

// Create adds a new credit card. Card names are stored lowercase.
func (r *CreditCardRepository) Create(card *model.CreditCard) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":       card.AccountID,
		"credit_card_name": card.CreditCardName,
	})
	log.Info("Executing query to create a new credit card")

	query := `INSERT INTO credit_cards (account_id, credit_card_name, current_balance, minimum_balance)
		VALUES ($1, LOWER($2), $3, $4) RETURNING id`
	err := r.DB.QueryRow(query, card.AccountID, card.CreditCardName, card.CurrentBalance, card.MinimumBalance).Scan(&card.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create credit card query")
		return err
	}
	return nil
}

// ListByAccountID retrieves all credit cards belonging to an account.
func (r *CreditCardRepository) ListByAccountID(accountID int) ([]*model.CreditCard, error) {
	query := `SELECT id, account_id, credit_card_name, current_balance, minimum_balance
		FROM credit_cards WHERE account_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, accountID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for credit cards by account ID")
		return nil, err
	}
	defer rows.Close()

	var cards []*model.CreditCard
	for rows.Next() {
		var card model.CreditCard
		if err := rows.Scan(&card.ID, &card.AccountID, &card.CreditCardName, &card.CurrentBalance, &card.MinimumBalance); err != nil {
			logger.Log.WithError(err).Error("Failed to scan credit card row")
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// GetByName retrieves a credit card by its name, case-insensitively.
func (r *CreditCardRepository) GetByName(accountID int, name string) (*model.CreditCard, error) {
	query := `SELECT id, account_id, credit_card_name, current_balance, minimum_balance
		FROM credit_cards WHERE account_id = $1 AND credit_card_name = LOWER($2)`

	var card model.CreditCard
	err := r.DB.QueryRow(query, accountID, name).Scan(&card.ID, &card.AccountID, &card.CreditCardName, &card.CurrentBalance, &card.MinimumBalance)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute get credit card by name query")
		return nil, fmt.Errorf("failed to get credit card: %w", err)
	}
	return &card, nil
}

// GetForUpdate locks the card row within the given transaction.
func (r *CreditCardRepository) GetForUpdate(tx *sql.Tx, cardID int) (*model.CreditCard, error) {
	log := logger.Log.WithField("card_id", cardID)
	log.Info("Executing query to get credit card for update")

	query := `SELECT id, account_id, credit_card_name, current_balance, minimum_balance
		FROM credit_cards WHERE id = $1 FOR UPDATE`

	var card model.CreditCard
	err := tx.QueryRow(query, cardID).Scan(&card.ID, &card.AccountID, &card.CreditCardName, &card.CurrentBalance, &card.MinimumBalance)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		log.WithError(err).Error("Failed to execute get credit card for update query")
		return nil, err
	}
	return &card, nil
}

// UpdateBalances writes both balances of a card within the given transaction.
func (r *CreditCardRepository) UpdateBalances(tx *sql.Tx, cardID int, currentBalance, minimumBalance float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"card_id":         cardID,
		"current_balance": currentBalance,
		"minimum_balance": minimumBalance,
	})
	log.Info("Executing query to update credit card balances")

	query := `UPDATE credit_cards SET current_balance = $1, minimum_balance = $2 WHERE id = $3`
	if _, err := tx.Exec(query, currentBalance, minimumBalance, cardID); err != nil {
		log.WithError(err).Error("Failed to execute update credit card balances query")
		return err
	}
	return nil
}

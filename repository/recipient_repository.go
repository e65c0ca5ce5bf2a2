package repository

import (
	"database/sql"
	"fmt"

	"bankbot-actions/logger"
	"bankbot-actions/model"
)

// IRecipientRepository defines the contract for recipient nickname
// database operations.
type IRecipientRepository interface {
	Create(relationship *model.RecipientRelationship) error
	ListNicknames(accountID int) ([]string, error)
	GetByNickname(accountID int, nickname string) (*model.RecipientRelationship, error)
}

type RecipientRepository struct {
	DB *sql.DB
}

func NewRecipientRepository(db *sql.DB) *RecipientRepository {
	return &RecipientRepository{DB: db}
}

// Create adds a nickname relationship. Nicknames are stored lowercase.
func (r *RecipientRepository) Create(relationship *model.RecipientRelationship) error {
	query := `INSERT INTO recipient_relationships (account_id, recipient_account_id, recipient_nickname)
		VALUES ($1, $2, LOWER($3)) RETURNING id`
	err := r.DB.QueryRow(query, relationship.AccountID, relationship.RecipientAccountID, relationship.RecipientNickname).Scan(&relationship.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create recipient relationship query")
		return err
	}
	return nil
}

// ListNicknames retrieves the recipient nicknames available to an account holder.
func (r *RecipientRepository) ListNicknames(accountID int) ([]string, error) {
	query := `SELECT recipient_nickname FROM recipient_relationships WHERE account_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, accountID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for recipient nicknames")
		return nil, err
	}
	defer rows.Close()

	var nicknames []string
	for rows.Next() {
		var nickname string
		if err := rows.Scan(&nickname); err != nil {
			return nil, err
		}
		nicknames = append(nicknames, nickname)
	}
	return nicknames, rows.Err()
}

// GetByNickname retrieves a recipient relationship by nickname,
// case-insensitively. The first match wins when several exist.
func (r *RecipientRepository) GetByNickname(accountID int, nickname string) (*model.RecipientRelationship, error) {
	query := `SELECT id, account_id, recipient_account_id, recipient_nickname FROM recipient_relationships
		WHERE account_id = $1 AND recipient_nickname = LOWER($2) ORDER BY id LIMIT 1`

	var rel model.RecipientRelationship
	err := r.DB.QueryRow(query, accountID, nickname).Scan(&rel.ID, &rel.AccountID, &rel.RecipientAccountID, &rel.RecipientNickname)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute get recipient by nickname query")
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	return &rel, nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"bankbot-actions/logger"
	"bankbot-actions/model"

	"github.com/lib/pq"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	Create(account *model.Account) error
	GetByID(id int) (*model.Account, error)
	GetBySessionID(sessionID string) (*model.Account, error)
	GetOrCreateBySessionID(sessionID string) (*model.Account, error)
	SessionExists(sessionID string) (bool, error)
	ListBySessionPrefix(prefix string) ([]*model.Account, error)
	GetVendorByName(name string) (*model.Account, error)
	GetByHolderName(name string) (*model.Account, error)
	ListExistingHolderNames(names []string) ([]string, error)
}

// AccountRepository implements IAccountRepository over plain SQL.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// Create adds a new account to the database.
func (r *AccountRepository) Create(account *model.Account) error {
	log := logger.Log.WithField("session_id", account.SessionID)
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (session_id, account_holder_name, is_vendor, currency) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.DB.QueryRow(query, account.SessionID, account.AccountHolderName, account.IsVendor, account.Currency).Scan(&account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// GetByID retrieves an account by its primary key.
func (r *AccountRepository) GetByID(id int) (*model.Account, error) {
	query := `SELECT id, session_id, account_holder_name, is_vendor, currency FROM accounts WHERE id = $1`
	return r.scanOne(r.DB.QueryRow(query, id))
}

// GetBySessionID retrieves the account belonging to a conversation session.
func (r *AccountRepository) GetBySessionID(sessionID string) (*model.Account, error) {
	query := `SELECT id, session_id, account_holder_name, is_vendor, currency FROM accounts WHERE session_id = $1`
	return r.scanOne(r.DB.QueryRow(query, sessionID))
}

// GetOrCreateBySessionID resolves a session to its account, lazily
// provisioning one on first reference. A conversation always gets an
// account.
func (r *AccountRepository) GetOrCreateBySessionID(sessionID string) (*model.Account, error) {
	account, err := r.GetBySessionID(sessionID)
	if err == nil {
		return account, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	logger.Log.WithField("session_id", sessionID).Info("No account for session, creating one")
	account = &model.Account{SessionID: sessionID, Currency: "USD"}
	if err := r.Create(account); err != nil {
		// A concurrent turn may have created the row first.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return r.GetBySessionID(sessionID)
		}
		return nil, err
	}
	return account, nil
}

// SessionExists checks if an account for the session already exists.
func (r *AccountRepository) SessionExists(sessionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE session_id = $1)`
	if err := r.DB.QueryRow(query, sessionID).Scan(&exists); err != nil {
		logger.Log.WithError(err).Error("Failed to check session existence")
		return false, err
	}
	return exists, nil
}

// ListBySessionPrefix retrieves all accounts whose session ID starts with
// the given prefix, e.g. "vendor_" for the shared vendor accounts.
func (r *AccountRepository) ListBySessionPrefix(prefix string) ([]*model.Account, error) {
	query := `SELECT id, session_id, account_holder_name, is_vendor, currency FROM accounts WHERE session_id LIKE $1 ORDER BY id`
	rows, err := r.DB.Query(query, prefix+"%")
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for accounts by prefix")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.SessionID, &acc.AccountHolderName, &acc.IsVendor, &acc.Currency); err != nil {
			logger.Log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

// GetVendorByName retrieves a vendor account by its holder name.
func (r *AccountRepository) GetVendorByName(name string) (*model.Account, error) {
	query := `SELECT id, session_id, account_holder_name, is_vendor, currency FROM accounts
		WHERE session_id LIKE 'vendor_%' AND account_holder_name = LOWER($1)`
	return r.scanOne(r.DB.QueryRow(query, name))
}

// GetByHolderName retrieves the first account with the given holder name.
func (r *AccountRepository) GetByHolderName(name string) (*model.Account, error) {
	query := `SELECT id, session_id, account_holder_name, is_vendor, currency FROM accounts
		WHERE account_holder_name = LOWER($1) ORDER BY id LIMIT 1`
	return r.scanOne(r.DB.QueryRow(query, name))
}

// ListExistingHolderNames returns which of the given holder names already
// have an account row. Used by the demo-data idempotency check.
func (r *AccountRepository) ListExistingHolderNames(names []string) ([]string, error) {
	query := `SELECT account_holder_name FROM accounts WHERE account_holder_name = ANY($1)`
	rows, err := r.DB.Query(query, pq.Array(names))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for existing holder names")
		return nil, err
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		existing = append(existing, name)
	}
	return existing, rows.Err()
}

func (r *AccountRepository) scanOne(row *sql.Row) (*model.Account, error) {
	var acc model.Account
	err := row.Scan(&acc.ID, &acc.SessionID, &acc.AccountHolderName, &acc.IsVendor, &acc.Currency)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to scan account row")
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &acc, nil
}

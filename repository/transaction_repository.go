package repository

import (
	"database/sql"
	"strconv"
	"time"

	"bankbot-actions/logger"
	"bankbot-actions/model"

	"github.com/sirupsen/logrus"
)

// TransactionFilter selects ledger rows by endpoint and time range.
// Empty account numbers and nil bounds are skipped; time bounds are
// inclusive.
type TransactionFilter struct {
	FromAccountNumber model.AccountNumber
	ToAccountNumber   model.AccountNumber
	StartTime         *time.Time
	EndTime           *time.Time
}

// ITransactionRepository defines the contract for ledger database operations.
type ITransactionRepository interface {
	Create(tx *sql.Tx, transaction *model.Transaction) error
	Insert(transaction *model.Transaction) error
	InsertBatch(transactions []*model.Transaction) error
	SumFrom(number model.AccountNumber) (float64, error)
	SumTo(number model.AccountNumber) (float64, error)
	Search(filter TransactionFilter) ([]*model.Transaction, error)
}

type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// Create appends a ledger row within the given transaction.
func (r *TransactionRepository) Create(tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account_number": transaction.FromAccountNumber,
		"to_account_number":   transaction.ToAccountNumber,
		"amount":              transaction.Amount,
	})
	log.Info("Executing query to create a new transaction")

	query := `INSERT INTO transactions (from_account_number, to_account_number, amount, timestamp)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := tx.QueryRow(query, transaction.FromAccountNumber, transaction.ToAccountNumber, transaction.Amount, transaction.Timestamp).Scan(&transaction.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

// Insert appends a ledger row outside any caller-owned transaction.
func (r *TransactionRepository) Insert(transaction *model.Transaction) error {
	query := `INSERT INTO transactions (from_account_number, to_account_number, amount, timestamp)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.DB.QueryRow(query, transaction.FromAccountNumber, transaction.ToAccountNumber, transaction.Amount, transaction.Timestamp).Scan(&transaction.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute insert transaction query")
		return err
	}
	return nil
}

// InsertBatch appends many ledger rows in a single database transaction.
// Used by the demo-data population.
func (r *TransactionRepository) InsertBatch(transactions []*model.Transaction) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO transactions (from_account_number, to_account_number, amount, timestamp)
		VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range transactions {
		if _, err := stmt.Exec(t.FromAccountNumber, t.ToAccountNumber, t.Amount, t.Timestamp); err != nil {
			logger.Log.WithError(err).Error("Failed to insert transaction batch row")
			return err
		}
	}
	return tx.Commit()
}

// SumFrom totals all outgoing amounts for an account number.
func (r *TransactionRepository) SumFrom(number model.AccountNumber) (float64, error) {
	return r.sum(`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE from_account_number = $1`, number)
}

// SumTo totals all incoming amounts for an account number.
func (r *TransactionRepository) SumTo(number model.AccountNumber) (float64, error) {
	return r.sum(`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE to_account_number = $1`, number)
}

func (r *TransactionRepository) sum(query string, number model.AccountNumber) (float64, error) {
	var total float64
	if err := r.DB.QueryRow(query, number).Scan(&total); err != nil {
		logger.Log.WithError(err).Error("Failed to execute transaction sum query")
		return 0, err
	}
	return total, nil
}

// Search retrieves ledger rows matching the filter, oldest first.
func (r *TransactionRepository) Search(filter TransactionFilter) ([]*model.Transaction, error) {
	query := `SELECT id, from_account_number, to_account_number, amount, timestamp FROM transactions`
	var (
		conditions []string
		args       []any
	)

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, condition+" $"+strconv.Itoa(len(args)))
	}

	if filter.FromAccountNumber != "" {
		add("from_account_number =", filter.FromAccountNumber)
	}
	if filter.ToAccountNumber != "" {
		add("to_account_number =", filter.ToAccountNumber)
	}
	if filter.StartTime != nil {
		add("timestamp >=", *filter.StartTime)
	}
	if filter.EndTime != nil {
		add("timestamp <=", *filter.EndTime)
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY timestamp"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute transaction search query")
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.FromAccountNumber, &t.ToAccountNumber, &t.Amount, &t.Timestamp); err != nil {
			logger.Log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}

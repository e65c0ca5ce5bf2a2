package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bankbot-actions/logger"
	"bankbot-actions/model"
	"bankbot-actions/repository"

	"github.com/sirupsen/logrus"
)

var ErrCardNotFound = errors.New("credit card not found")

// ICardService exposes the credit card operations used by the action
// handlers.
type ICardService interface {
	ListCreditCards(ctx context.Context, sessionID string) ([]string, error)
	GetCreditCard(sessionID, name string) (*model.CreditCard, error)
	CreditCardBalance(sessionID, name, balanceType string) (float64, error)
	ListBalanceTypes() []string
	PayOffCreditCard(ctx context.Context, sessionID, name string, amount float64) error
}

// CardService handles credit cards, with a cache-aside card name list
// per session.
type CardService struct {
	db           *sql.DB
	accounts     repository.IAccountRepository
	cards        repository.ICreditCardRepository
	transactions repository.ITransactionRepository
	cache        ICacheClient
}

func NewCardService(
	db *sql.DB,
	accounts repository.IAccountRepository,
	cards repository.ICreditCardRepository,
	transactions repository.ITransactionRepository,
	cache ICacheClient,
) *CardService {
	return &CardService{
		db:           db,
		accounts:     accounts,
		cards:        cards,
		transactions: transactions,
		cache:        cache,
	}
}

func cardListCacheKey(sessionID string) string {
	return fmt.Sprintf("credit_cards:%s", sessionID)
}

// ListCreditCards lists the card names of a session, lowercase. The list
// is cached per session when a cache client is configured.
func (s *CardService) ListCreditCards(ctx context.Context, sessionID string) ([]string, error) {
	cacheKey := cardListCacheKey(sessionID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var names []string
			if err := json.Unmarshal([]byte(cached), &names); err == nil {
				return names, nil
			}
		}
	}

	account, err := s.accounts.GetOrCreateBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cards))
	for _, card := range cards {
		names = append(names, card.CreditCardName)
	}

	if s.cache != nil {
		if data, err := json.Marshal(names); err == nil {
			s.cache.Set(ctx, cacheKey, data, 10*time.Minute)
		}
	}
	return names, nil
}

// GetCreditCard fetches a session's card by name, case-insensitively.
func (s *CardService) GetCreditCard(sessionID, name string) (*model.CreditCard, error) {
	account, err := s.accounts.GetOrCreateBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.GetByName(account.ID, name)
	if err == repository.ErrNotFound {
		return nil, ErrCardNotFound
	}
	return card, err
}

// CreditCardBalance returns a card balance by balance type, e.g.
// "current balance" or "minimum balance".
func (s *CardService) CreditCardBalance(sessionID, name, balanceType string) (float64, error) {
	card, err := s.GetCreditCard(sessionID, name)
	if err != nil {
		return 0, err
	}

	switch strings.Join(strings.Fields(balanceType), "_") {
	case "minimum_balance":
		return card.MinimumBalance, nil
	default:
		return card.CurrentBalance, nil
	}
}

// ListBalanceTypes lists the balance types valid for credit cards.
func (s *CardService) ListBalanceTypes() []string {
	return []string{"current balance", "minimum balance"}
}

// PayOffCreditCard moves the amount from the session's bank account to a
// credit card. The ledger row and both balance updates are committed in
// one database transaction, with the card row locked, so the stored
// balances can never drift from the ledger write. The minimum balance is
// reduced by the paid amount but never below zero.
func (s *CardService) PayOffCreditCard(ctx context.Context, sessionID, name string, amount float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"session_id":       sessionID,
		"credit_card_name": name,
		"amount":           amount,
	})
	log.Info("Starting credit card payoff")

	account, err := s.accounts.GetOrCreateBySessionID(sessionID)
	if err != nil {
		return err
	}
	card, err := s.cards.GetByName(account.ID, name)
	if err == repository.ErrNotFound {
		return ErrCardNotFound
	}
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := s.cards.GetForUpdate(tx, card.ID)
	if err != nil {
		return err
	}

	err = s.transactions.Create(tx, &model.Transaction{
		FromAccountNumber: model.BankAccountNumber(account.ID).String(),
		ToAccountNumber:   model.CreditCardNumber(card.ID).String(),
		Amount:            amount,
		Timestamp:         time.Now(),
	})
	if err != nil {
		return err
	}

	newCurrent := locked.CurrentBalance - amount
	newMinimum := 0.0
	if amount < locked.MinimumBalance {
		newMinimum = locked.MinimumBalance - amount
	}
	if err := s.cards.UpdateBalances(tx, card.ID, newCurrent, newMinimum); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit payoff transaction: %w", err)
	}
	log.Info("Credit card payoff committed")
	return nil
}

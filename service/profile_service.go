package service

import (
	"errors"
	"time"

	"bankbot-actions/logger"
	"bankbot-actions/model"
	"bankbot-actions/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownVendor    = errors.New("unknown vendor")
	ErrUnknownRecipient = errors.New("unknown recipient")
)

// TransactionSearch selects exactly one search mode: spend (default),
// deposit, or vendor-filtered. The modes are not combinable; Deposit wins
// over Vendor when both are set. Time bounds are inclusive.
type TransactionSearch struct {
	StartTime *time.Time
	EndTime   *time.Time
	Deposit   bool
	Vendor    string
}

// IProfileService exposes the per-session profile operations used by the
// action handlers.
type IProfileService interface {
	ResolveAccount(sessionID string) (*model.Account, error)
	AccountBalance(sessionID string) (float64, error)
	Currency(sessionID string) (string, error)
	SearchTransactions(sessionID string, search TransactionSearch) ([]*model.Transaction, error)
	KnownRecipients(sessionID string) ([]string, error)
	RecipientByName(sessionID, nickname string) (*model.Account, error)
	ListVendors() ([]string, error)
	AddVendor(name string) error
	RecordOfflineTransaction(sessionID, toAccountName string, at time.Time, amount float64) error
}

type ProfileService struct {
	accounts     repository.IAccountRepository
	transactions repository.ITransactionRepository
	offline      repository.IOfflineTransactionRepository
	recipients   repository.IRecipientRepository
	cards        repository.ICreditCardRepository
}

func NewProfileService(
	accounts repository.IAccountRepository,
	transactions repository.ITransactionRepository,
	offline repository.IOfflineTransactionRepository,
	recipients repository.IRecipientRepository,
	cards repository.ICreditCardRepository,
) *ProfileService {
	return &ProfileService{
		accounts:     accounts,
		transactions: transactions,
		offline:      offline,
		recipients:   recipients,
		cards:        cards,
	}
}

// ResolveAccount resolves a session to its account, provisioning one
// lazily on first reference.
func (s *ProfileService) ResolveAccount(sessionID string) (*model.Account, error) {
	return s.accounts.GetOrCreateBySessionID(sessionID)
}

// AccountBalance derives the balance of a session's bank account from
// the ledger: incoming minus outgoing. It is recomputed on every call.
func (s *ProfileService) AccountBalance(sessionID string) (float64, error) {
	account, err := s.ResolveAccount(sessionID)
	if err != nil {
		return 0, err
	}

	number := model.BankAccountNumber(account.ID)
	earned, err := s.transactions.SumTo(number)
	if err != nil {
		return 0, err
	}
	spent, err := s.transactions.SumFrom(number)
	if err != nil {
		return 0, err
	}
	return earned - spent, nil
}

// Currency returns the currency of a session's bank account.
func (s *ProfileService) Currency(sessionID string) (string, error) {
	account, err := s.ResolveAccount(sessionID)
	if err != nil {
		return "", err
	}
	return account.Currency, nil
}

// SearchTransactions finds ledger rows for a session within the optional
// time range, in the mode selected by the search flags.
func (s *ProfileService) SearchTransactions(sessionID string, search TransactionSearch) ([]*model.Transaction, error) {
	account, err := s.ResolveAccount(sessionID)
	if err != nil {
		return nil, err
	}
	number := model.BankAccountNumber(account.ID)

	filter := repository.TransactionFilter{
		StartTime: search.StartTime,
		EndTime:   search.EndTime,
	}
	switch {
	case search.Deposit:
		filter.ToAccountNumber = number
	case search.Vendor != "":
		vendor, err := s.accounts.GetVendorByName(search.Vendor)
		if err == repository.ErrNotFound {
			return nil, ErrUnknownVendor
		}
		if err != nil {
			return nil, err
		}
		filter.FromAccountNumber = number
		filter.ToAccountNumber = model.BankAccountNumber(vendor.ID)
	default:
		filter.FromAccountNumber = number
	}

	return s.transactions.Search(filter)
}

// KnownRecipients lists the recipient nicknames available to a session.
func (s *ProfileService) KnownRecipients(sessionID string) ([]string, error) {
	account, err := s.ResolveAccount(sessionID)
	if err != nil {
		return nil, err
	}
	return s.recipients.ListNicknames(account.ID)
}

// RecipientByName resolves a recipient nickname to the recipient's
// account.
func (s *ProfileService) RecipientByName(sessionID, nickname string) (*model.Account, error) {
	account, err := s.ResolveAccount(sessionID)
	if err != nil {
		return nil, err
	}

	relationship, err := s.recipients.GetByNickname(account.ID, nickname)
	if err == repository.ErrNotFound {
		return nil, ErrUnknownRecipient
	}
	if err != nil {
		return nil, err
	}

	recipient, err := s.accounts.GetByID(relationship.RecipientAccountID)
	if err == repository.ErrNotFound {
		return nil, ErrUnknownRecipient
	}
	return recipient, err
}

// ListVendors lists the holder names of the shared vendor accounts.
func (s *ProfileService) ListVendors() ([]string, error) {
	vendors, err := s.accounts.ListBySessionPrefix("vendor_")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(vendors))
	for _, vendor := range vendors {
		names = append(names, vendor.AccountHolderName)
	}
	return names, nil
}

// AddVendor creates a vendor account together with its catch-all credit
// card.
func (s *ProfileService) AddVendor(name string) error {
	vendor := &model.Account{
		SessionID:         name + "_vendor",
		AccountHolderName: name,
		IsVendor:          true,
		Currency:          "USD",
	}
	if err := s.accounts.Create(vendor); err != nil {
		return err
	}

	return s.cards.Create(&model.CreditCard{
		AccountID:      vendor.ID,
		CreditCardName: "credit all",
	})
}

// RecordOfflineTransaction records a cash-style transaction from a
// session's account to a named account at the given time.
func (s *ProfileService) RecordOfflineTransaction(sessionID, toAccountName string, at time.Time, amount float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"to_account": toAccountName,
		"timestamp":  at,
	})
	log.Info("Recording offline transaction")

	from, err := s.accounts.GetBySessionID(sessionID)
	if err != nil {
		return err
	}
	to, err := s.accounts.GetByHolderName(toAccountName)
	if err == repository.ErrNotFound {
		return ErrUnknownRecipient
	}
	if err != nil {
		return err
	}

	return s.offline.Create(&model.OfflineTransaction{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        amount,
		Timestamp:     at,
	})
}

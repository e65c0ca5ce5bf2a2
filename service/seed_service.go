package service

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"bankbot-actions/logger"
	"bankbot-actions/model"
	"bankbot-actions/repository"
)

// generalAccounts are the shared counterparties every conversation can
// reference. They are inserted once, guarded by a name-set check.
var generalAccounts = map[string][]string{
	"recipient": {
		"katy parrow",
		"evan oslo",
		"william baker",
		"karen lancaster",
		"kyle gardner",
		"john jacob",
		"percy donald",
		"lisa macintyre",
	},
	"vendor":    {"target", "starbucks", "amazon"},
	"depositor": {"interest", "employer"},
}

var demoCreditCardNames = []string{"iron bank", "credit all", "gringots", "justice bank"}

// ISeedService populates the profile database with demo data.
type ISeedService interface {
	PopulateProfile(sessionID string) error
}

// SeedService generates the demo profile for new sessions: random
// historical transactions, recipients, credit cards, and one USD
// sub-account per card.
type SeedService struct {
	accounts     repository.IAccountRepository
	cards        repository.ICreditCardRepository
	transactions repository.ITransactionRepository
	recipients   repository.IRecipientRepository
	currencies   repository.ICurrencyAccountRepository
}

func NewSeedService(
	accounts repository.IAccountRepository,
	cards repository.ICreditCardRepository,
	transactions repository.ITransactionRepository,
	recipients repository.IRecipientRepository,
	currencies repository.ICurrencyAccountRepository,
) *SeedService {
	return &SeedService{
		accounts:     accounts,
		cards:        cards,
		transactions: transactions,
		recipients:   recipients,
		currencies:   currencies,
	}
}

// PopulateProfile initializes the database for a conversation session.
// General accounts are inserted only when missing; per-session data is
// generated only for sessions never seen before, so running it twice is
// a no-op.
func (s *SeedService) PopulateProfile(sessionID string) error {
	populated, err := s.generalAccountsPopulated()
	if err != nil {
		return err
	}
	if !populated {
		if err := s.addGeneralAccounts(); err != nil {
			return err
		}
	}

	exists, err := s.accounts.SessionExists(sessionID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	logger.Log.WithField("session_id", sessionID).Info("Populating demo profile for new session")

	account := &model.Account{SessionID: sessionID, Currency: "USD"}
	if err := s.accounts.Create(account); err != nil {
		return err
	}
	if err := s.addRecipients(account); err != nil {
		return err
	}
	if err := s.addTransactions(account); err != nil {
		return err
	}
	return s.addCreditCards(account)
}

// generalAccountsPopulated checks the name-set equality between the
// configured general accounts and the rows already present.
func (s *SeedService) generalAccountsPopulated() (bool, error) {
	var names []string
	for _, group := range generalAccounts {
		names = append(names, group...)
	}

	existing, err := s.accounts.ListExistingHolderNames(names)
	if err != nil {
		return false, err
	}

	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}
	for _, name := range names {
		if !existingSet[name] {
			return false, nil
		}
	}
	return true, nil
}

func (s *SeedService) addGeneralAccounts() error {
	logger.Log.Info("Populating general accounts")
	for prefix, names := range generalAccounts {
		for i, name := range names {
			account := &model.Account{
				SessionID:         prefix + "_" + strconv.Itoa(i),
				AccountHolderName: name,
				IsVendor:          prefix == "vendor",
				Currency:          "USD",
			}
			if err := s.accounts.Create(account); err != nil {
				return err
			}
		}
	}
	return nil
}

// addRecipients links the session to a random sample of at least three
// of the shared recipient accounts.
func (s *SeedService) addRecipients(account *model.Account) error {
	recipients, err := s.accounts.ListBySessionPrefix("recipient_")
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	count := len(recipients)
	if count > 3 {
		count = 3 + rand.IntN(len(recipients)-2)
	}
	rand.Shuffle(len(recipients), func(i, j int) {
		recipients[i], recipients[j] = recipients[j], recipients[i]
	})

	for _, recipient := range recipients[:count] {
		err := s.recipients.Create(&model.RecipientRelationship{
			AccountID:          account.ID,
			RecipientAccountID: recipient.ID,
			RecipientNickname:  recipient.AccountHolderName,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// addTransactions generates the session's random transaction history:
// frequent small spends to each vendor, monthly interest, and biweekly
// salary deposits, dated between 2019-01-01 and now.
func (s *SeedService) addTransactions(account *model.Account) error {
	vendors, err := s.accounts.ListBySessionPrefix("vendor_")
	if err != nil {
		return err
	}
	depositors, err := s.accounts.ListBySessionPrefix("depositor_")
	if err != nil {
		return err
	}

	number := model.BankAccountNumber(account.ID).String()
	startDate := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	days := int(time.Since(startDate).Hours() / 24)
	if days < 1 {
		days = 1
	}

	var batch []*model.Transaction
	for _, vendor := range vendors {
		vendorNumber := model.BankAccountNumber(vendor.ID).String()
		for i := 0; i < days/2; i++ {
			batch = append(batch, &model.Transaction{
				FromAccountNumber: number,
				ToAccountNumber:   vendorNumber,
				Amount:            randAmount(5, 50),
				Timestamp:         startDate.AddDate(0, 0, rand.IntN(days)),
			})
		}
	}

	for _, depositor := range depositors {
		depositorNumber := model.BankAccountNumber(depositor.ID).String()
		count := days / 14
		low, high := 1000.0, 2000.0
		if depositor.AccountHolderName == "interest" {
			count = days / 30
			low, high = 5, 20
		}
		for i := 0; i < count; i++ {
			batch = append(batch, &model.Transaction{
				FromAccountNumber: depositorNumber,
				ToAccountNumber:   number,
				Amount:            randAmount(low, high),
				Timestamp:         startDate.AddDate(0, 0, rand.IntN(days)),
			})
		}
	}

	return s.transactions.InsertBatch(batch)
}

// addCreditCards creates the demo cards and one zero-balance USD
// sub-account per card.
func (s *SeedService) addCreditCards(account *model.Account) error {
	for _, name := range demoCreditCardNames {
		card := &model.CreditCard{
			AccountID:      account.ID,
			CreditCardName: name,
			CurrentBalance: randAmount(200, 2000),
			MinimumBalance: randAmount(20, 100),
		}
		if err := s.cards.Create(card); err != nil {
			return err
		}
		err := s.currencies.Create(&model.CurrencyAccount{
			CardID:   card.ID,
			Currency: "USD",
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func randAmount(low, high float64) float64 {
	return math.Round((low+rand.Float64()*(high-low))*100) / 100
}

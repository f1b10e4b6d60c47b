// Package bankservice composes customers, accounts and the ledger into the
// operations exposed to callers. Every operation maps onto exactly one
// transactional unit of work in the repository layer.
package bankservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/ledger/internal/accountrepo"
	"github.com/go-petr/ledger/internal/accountservice"
	"github.com/go-petr/ledger/internal/customerrepo"
	"github.com/go-petr/ledger/internal/customerservice"
	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/internal/entryrepo"
	"github.com/go-petr/ledger/internal/ledgerservice"
	"github.com/rs/zerolog"
)

// Customers is the customer registry used by the Service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package bankservice
type Customers interface {
	Create(ctx context.Context, name, cpr string) (domain.Customer, error)
	Get(ctx context.Context, cpr string) (domain.Customer, error)
	Rename(ctx context.Context, cpr, newName string) (domain.Customer, error)
}

// Accounts is the account registry used by the Service.
type Accounts interface {
	Create(ctx context.Context, cpr string) (domain.Account, error)
	List(ctx context.Context, cpr string) ([]domain.Account, error)
}

// Ledger posts and reads journal entries.
type Ledger interface {
	Deposit(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error)
	Withdraw(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error)
	Balance(ctx context.Context, cpr, number string) (float64, error)
	History(ctx context.Context, cpr, number string) ([]domain.JournalEntry, error)
	ScanLargeTransactions(ctx context.Context, since time.Time) ([]domain.CustomerEntries, error)
}

// Service is the bank facade.
type Service struct {
	customers Customers
	accounts  Accounts
	ledger    Ledger
}

// New returns the bank facade over the given registries.
func New(c Customers, a Accounts, l Ledger) *Service {
	return &Service{
		customers: c,
		accounts:  a,
		ledger:    l,
	}
}

// NewPGS returns the bank facade backed by postgres repositories sharing db.
func NewPGS(db *sql.DB) *Service {
	return New(
		customerservice.New(customerrepo.NewRepoPGS(db)),
		accountservice.New(accountrepo.NewRepoPGS(db)),
		ledgerservice.New(entryrepo.NewRepoPGS(db)),
	)
}

// CreateCustomer registers a new customer.
func (s *Service) CreateCustomer(ctx context.Context, name, cpr string) (domain.Customer, error) {
	c, err := s.customers.Create(ctx, name, cpr)
	if err != nil {
		return c, err
	}

	zerolog.Ctx(ctx).Info().Int64("customer_id", c.ID).Msg("customer created")

	return c, nil
}

// FindCustomer returns the customer with the given cpr.
func (s *Service) FindCustomer(ctx context.Context, cpr string) (domain.Customer, error) {
	return s.customers.Get(ctx, cpr)
}

// RenameCustomer changes the name of the customer with the given cpr.
func (s *Service) RenameCustomer(ctx context.Context, cpr, newName string) (domain.Customer, error) {
	c, err := s.customers.Rename(ctx, cpr, newName)
	if err != nil {
		return c, err
	}

	zerolog.Ctx(ctx).Info().Int64("customer_id", c.ID).Msg("customer renamed")

	return c, nil
}

// CreateAccount opens an account for the customer with the given cpr.
func (s *Service) CreateAccount(ctx context.Context, cpr string) (domain.Account, error) {
	a, err := s.accounts.Create(ctx, cpr)
	if err != nil {
		return a, err
	}

	zerolog.Ctx(ctx).Info().Int64("customer_id", a.CustomerID).Str("number", a.Number).Msg("account created")

	return a, nil
}

// ListAccounts returns the accounts of the customer with the given cpr.
func (s *Service) ListAccounts(ctx context.Context, cpr string) ([]domain.Account, error) {
	return s.accounts.List(ctx, cpr)
}

// Deposit adds amount to the account.
func (s *Service) Deposit(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error) {
	e, err := s.ledger.Deposit(ctx, cpr, number, text, amount)
	if err != nil {
		return e, err
	}

	zerolog.Ctx(ctx).Info().Int64("entry_id", e.ID).Float64("amount", e.Amount).Msg("deposit posted")

	return e, nil
}

// Withdraw subtracts amount from the account.
func (s *Service) Withdraw(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error) {
	e, err := s.ledger.Withdraw(ctx, cpr, number, text, amount)
	if err != nil {
		return e, err
	}

	zerolog.Ctx(ctx).Info().Int64("entry_id", e.ID).Float64("amount", e.Amount).Msg("withdrawal posted")

	return e, nil
}

// Balance returns the current balance of the account.
func (s *Service) Balance(ctx context.Context, cpr, number string) (float64, error) {
	return s.ledger.Balance(ctx, cpr, number)
}

// History returns the entries of the account ordered by entry time.
func (s *Service) History(ctx context.Context, cpr, number string) ([]domain.JournalEntry, error) {
	return s.ledger.History(ctx, cpr, number)
}

// ScanLargeTransactions returns the large entries since the given time grouped by customer.
func (s *Service) ScanLargeTransactions(ctx context.Context, since time.Time) ([]domain.CustomerEntries, error) {
	return s.ledger.ScanLargeTransactions(ctx, since)
}

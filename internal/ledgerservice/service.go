// Package ledgerservice manages business logic layer of journal entries.
package ledgerservice

import (
	"context"
	"time"

	"github.com/go-petr/ledger/internal/domain"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	Post(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error)
	Balance(ctx context.Context, cpr, number string) (float64, error)
	History(ctx context.Context, cpr, number string) ([]domain.JournalEntry, error)
	ListLarge(ctx context.Context, since time.Time, threshold float64) ([]domain.FlaggedEntry, error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo Repo
}

// New returns ledger service struct to manage entries bussines logic.
func New(er Repo) *Service {
	return &Service{repo: er}
}

// Deposit appends a positive entry to the account.
func (s *Service) Deposit(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error) {
	if err := domain.CheckAmount(amount); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Float64("amount", amount).Send()
		return domain.JournalEntry{}, err
	}

	return s.post(ctx, cpr, number, text, amount)
}

// Withdraw appends a negative entry to the account.
//
// The balance is not checked and may become negative.
func (s *Service) Withdraw(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error) {
	if err := domain.CheckAmount(amount); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Float64("amount", amount).Send()
		return domain.JournalEntry{}, err
	}

	return s.post(ctx, cpr, number, text, -amount)
}

func (s *Service) post(ctx context.Context, cpr, number, text string, signedAmount float64) (domain.JournalEntry, error) {
	if !domain.ValidCPR(cpr) {
		return domain.JournalEntry{}, domain.ErrInvalidCPR
	}

	if err := domain.CheckText(text); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		return domain.JournalEntry{}, err
	}

	return s.repo.Post(ctx, cpr, number, text, signedAmount)
}

// Balance returns the sum of all entries of the account.
func (s *Service) Balance(ctx context.Context, cpr, number string) (float64, error) {
	if !domain.ValidCPR(cpr) {
		return 0, domain.ErrInvalidCPR
	}

	return s.repo.Balance(ctx, cpr, number)
}

// History returns the entries of the account ordered by entry time.
func (s *Service) History(ctx context.Context, cpr, number string) ([]domain.JournalEntry, error) {
	if !domain.ValidCPR(cpr) {
		return nil, domain.ErrInvalidCPR
	}

	return s.repo.History(ctx, cpr, number)
}

// ScanLargeTransactions returns, per customer, every entry made since the given time
// with an amount above domain.LargeTransactionThreshold.
//
// Customers are ordered by their earliest flagged entry. Customers without flagged
// entries are not part of the result.
func (s *Service) ScanLargeTransactions(ctx context.Context, since time.Time) ([]domain.CustomerEntries, error) {
	flagged, err := s.repo.ListLarge(ctx, since, domain.LargeTransactionThreshold)
	if err != nil {
		return nil, err
	}

	return groupByCustomer(flagged), nil
}

func groupByCustomer(flagged []domain.FlaggedEntry) []domain.CustomerEntries {
	groups := []domain.CustomerEntries{}
	index := make(map[int64]int)

	for _, f := range flagged {
		i, ok := index[f.Customer.ID]
		if !ok {
			i = len(groups)
			index[f.Customer.ID] = i
			groups = append(groups, domain.CustomerEntries{Customer: f.Customer})
		}

		groups[i].Entries = append(groups[i].Entries, f.Entry)
	}

	return groups
}

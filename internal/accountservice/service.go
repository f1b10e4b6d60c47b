// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/go-petr/ledger/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, cpr string) (domain.Account, error)
	List(ctx context.Context, cpr string) ([]domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create opens a new account for the customer with the given cpr.
func (s *Service) Create(ctx context.Context, cpr string) (domain.Account, error) {
	if !domain.ValidCPR(cpr) {
		return domain.Account{}, domain.ErrInvalidCPR
	}

	account, err := s.repo.Create(ctx, cpr)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// List returns accounts that are owned by the customer with the given cpr.
func (s *Service) List(ctx context.Context, cpr string) ([]domain.Account, error) {
	if !domain.ValidCPR(cpr) {
		return nil, domain.ErrInvalidCPR
	}

	return s.repo.List(ctx, cpr)
}

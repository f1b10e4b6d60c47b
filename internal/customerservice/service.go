// Package customerservice manages business logic layer of customers.
package customerservice

import (
	"context"

	"github.com/go-petr/ledger/internal/domain"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by customer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package customerservice
type Repo interface {
	Create(ctx context.Context, name, cpr string) (domain.Customer, error)
	GetByCPR(ctx context.Context, cpr string) (domain.Customer, error)
	Rename(ctx context.Context, cpr, name string) (domain.Customer, error)
}

// Service facilitates customer service layer logic.
type Service struct {
	repo Repo
}

// New returns customer service struct to manage customer bussines logic.
func New(cr Repo) *Service {
	return &Service{repo: cr}
}

// Create validates the cpr and persists a new customer.
//
// Uniqueness of the cpr is left to the storage constraint.
func (s *Service) Create(ctx context.Context, name, cpr string) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	c, err := domain.NewCustomer(name, cpr)
	if err != nil {
		l.Info().Err(err).Str("cpr", cpr).Send()
		return domain.Customer{}, err
	}

	return s.repo.Create(ctx, c.Name, c.CPR)
}

// Get returns the customer with the given cpr.
func (s *Service) Get(ctx context.Context, cpr string) (domain.Customer, error) {
	if !domain.ValidCPR(cpr) {
		return domain.Customer{}, domain.ErrInvalidCPR
	}

	return s.repo.GetByCPR(ctx, cpr)
}

// Rename changes the name of the customer with the given cpr.
func (s *Service) Rename(ctx context.Context, cpr, newName string) (domain.Customer, error) {
	if !domain.ValidCPR(cpr) {
		return domain.Customer{}, domain.ErrInvalidCPR
	}

	return s.repo.Rename(ctx, cpr, newName)
}

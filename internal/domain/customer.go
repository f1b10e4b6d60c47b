// Package domain provides definitions of all entities.
package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-petr/ledger/pkg/errorspkg"
)

var (
	// ErrInvalidCPR indicates that the cpr is not exactly 10 digits.
	ErrInvalidCPR = fmt.Errorf("%w: cpr must be 10 digits", errorspkg.ErrValidation)
	// ErrCustomerNotFound indicates that the customer is not found.
	ErrCustomerNotFound = fmt.Errorf("customer %w", errorspkg.ErrNotFound)
	// ErrCPRAlreadyExists indicates that a customer with the given cpr already exists.
	ErrCPRAlreadyExists = fmt.Errorf("%w: cpr already exists", errorspkg.ErrConflict)
)

var cprPattern = regexp.MustCompile(`^\d{10}$`)

// Customer owns accounts. Only Name may change after creation.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CPR       string    `json:"cpr"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidCPR reports whether cpr consists of exactly 10 digits.
func ValidCPR(cpr string) bool {
	return cprPattern.MatchString(cpr)
}

// NewCustomer returns a not yet persisted customer with a validated cpr.
func NewCustomer(name, cpr string) (Customer, error) {
	if !ValidCPR(cpr) {
		return Customer{}, ErrInvalidCPR
	}

	return Customer{Name: name, CPR: cpr}, nil
}

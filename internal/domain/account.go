package domain

import (
	"fmt"
	"time"

	"github.com/go-petr/ledger/pkg/errorspkg"
)

var (
	// ErrAccountNotFound indicates that no account matches both the cpr and the account number.
	ErrAccountNotFound = fmt.Errorf("account %w", errorspkg.ErrNotFound)
	// ErrAccountNumberAlreadyExists indicates that the drawn account number is already taken.
	ErrAccountNumberAlreadyExists = fmt.Errorf("%w: account number already exists", errorspkg.ErrConflict)
	// ErrAccountNumbersExhausted indicates that the sequence value does not fit in an account number.
	ErrAccountNumbersExhausted = fmt.Errorf("%w: account numbers exhausted", errorspkg.ErrConflict)
)

const (
	// AccountNumberDigits is the fixed width of an account number.
	AccountNumberDigits = 9
	// MaxAccountNumber is the largest sequence value that fits in AccountNumberDigits.
	MaxAccountNumber = 999_999_999
)

// Account belongs to exactly one customer for its whole lifetime.
type Account struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Number     string    `json:"number"`
	CreatedAt  time.Time `json:"created_at"`
}

// FormatAccountNumber renders a sequence value as a zero-padded account number.
//
// Values outside 0..MaxAccountNumber return ErrAccountNumbersExhausted.
func FormatAccountNumber(seq int64) (string, error) {
	if seq < 0 || seq > MaxAccountNumber {
		return "", ErrAccountNumbersExhausted
	}

	return fmt.Sprintf("%0*d", AccountNumberDigits, seq), nil
}

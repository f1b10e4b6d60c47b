package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/go-petr/ledger/pkg/errorspkg"
)

var (
	// ErrNegativeAmount indicates negative amount.
	ErrNegativeAmount = fmt.Errorf("%w: negative amount", errorspkg.ErrValidation)
	// ErrInvalidAmount indicates an amount that is not a finite number.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", errorspkg.ErrValidation)
	// ErrEmptyText indicates that the entry text is empty.
	ErrEmptyText = fmt.Errorf("%w: empty text", errorspkg.ErrValidation)
)

const (
	// PennyTolerance is the slack used when comparing amounts against zero.
	PennyTolerance = 0.005
	// LargeTransactionThreshold is the exclusive lower bound of a flagged entry amount.
	LargeTransactionThreshold = 10000.0
)

// JournalEntry is an immutable signed record against one account.
type JournalEntry struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	EntryTime time.Time `json:"entry_time"`
	Text      string    `json:"text"`
	Amount    float64   `json:"amount"` // can be negative or positive
}

// CustomerEntries groups the flagged entries of one customer.
type CustomerEntries struct {
	Customer Customer       `json:"customer"`
	Entries  []JournalEntry `json:"entries"`
}

// CheckAmount validates an unsigned deposit or withdrawal amount.
func CheckAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidAmount
	}

	if amount < -PennyTolerance {
		return ErrNegativeAmount
	}

	return nil
}

// CheckText validates an entry text.
func CheckText(text string) error {
	if text == "" {
		return ErrEmptyText
	}

	return nil
}

// FlaggedEntry pairs an entry above the large transaction threshold with its owner.
type FlaggedEntry struct {
	Customer Customer
	Entry    JournalEntry
}

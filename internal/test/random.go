package test

import (
	"time"

	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/pkg/randompkg"
)

// RandomCustomer returns random customer.
func RandomCustomer() domain.Customer {
	return domain.Customer{
		ID:        randompkg.Intn(1000) + 1,
		Name:      randompkg.Name(),
		CPR:       randompkg.CPR(),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomAccount returns random account owned by the given customer.
func RandomAccount(customerID int64) domain.Account {
	number, err := domain.FormatAccountNumber(randompkg.Intn(1_000_000) + 1)
	if err != nil {
		panic(err)
	}

	return domain.Account{
		ID:         randompkg.Intn(1000) + 1,
		CustomerID: customerID,
		Number:     number,
		CreatedAt:  time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomEntry returns random entry for the given account.
func RandomEntry(accountID int64) domain.JournalEntry {
	return domain.JournalEntry{
		ID:        randompkg.Intn(1000) + 1,
		AccountID: accountID,
		EntryTime: time.Now().Truncate(time.Second).UTC(),
		Text:      randompkg.String(12),
		Amount:    randompkg.MoneyAmountBetween(-1000, 1000),
	}
}

// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/ledger/internal/accountrepo"
	"github.com/go-petr/ledger/internal/customerrepo"
	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/internal/entryrepo"
	"github.com/go-petr/ledger/pkg/dbpkg"
	"github.com/go-petr/ledger/pkg/randompkg"
)

// SeedCustomer creates random Customer inside a test transaction.
func SeedCustomer(t *testing.T, tx dbpkg.SQLInterface) domain.Customer {
	t.Helper()

	name, cpr := randompkg.Name(), randompkg.CPR()

	customer, err := customerrepo.NewTxRepoPGS(tx).Create(context.Background(), name, cpr)
	if err != nil {
		t.Fatalf("customerRepo.Create(context.Background(), %v, %v) returned error: %v", name, cpr, err)
	}

	return customer
}

// SeedAccount creates Account for the customer inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, cpr string) domain.Account {
	t.Helper()

	account, err := accountrepo.NewTxRepoPGS(tx).Create(context.Background(), cpr)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v) returned error: %v", cpr, err)
	}

	return account
}

// SeedEntry creates Entry inside a test transaction.
func SeedEntry(t *testing.T, tx dbpkg.SQLInterface, accountID int64, amount float64) domain.JournalEntry {
	t.Helper()

	text := randompkg.String(12)

	entry, err := entryrepo.NewTxRepoPGS(tx).Insert(context.Background(), accountID, text, amount)
	if err != nil {
		t.Fatalf("entryRepo.Insert(context.Background(), %v, %v, %v) returned error: %v",
			accountID, text, amount, err)
	}

	return entry
}

// SeedEntries creates Entries with random amounts inside a test transaction.
func SeedEntries(t *testing.T, tx dbpkg.SQLInterface, count int, accountID int64) []domain.JournalEntry {
	t.Helper()

	entries := make([]domain.JournalEntry, count)

	for i := range entries {
		entries[i] = SeedEntry(t, tx, accountID, randompkg.MoneyAmountBetween(-1000, 1000))
	}

	return entries
}

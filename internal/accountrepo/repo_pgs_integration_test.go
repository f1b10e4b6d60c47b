//go:build integration

package accountrepo_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/ledger/internal/accountrepo"
	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/internal/integrationtest"
	"github.com/go-petr/ledger/internal/test"
)

func TestRepoPGSIntegration(t *testing.T) {
	config := integrationtest.LoadConfig(t, "../../configs")
	integrationtest.MigrateDB(t, config.DBSource)
	tx := integrationtest.SetupTX(t, config.DBDriver, config.DBSource)

	ctx := context.Background()
	repo := accountrepo.NewTxRepoPGS(tx)
	customer := test.SeedCustomer(t, tx)

	first := test.SeedAccount(t, tx, customer.CPR)
	second := test.SeedAccount(t, tx, customer.CPR)

	require.Len(t, first.Number, domain.AccountNumberDigits)

	n1, err := strconv.ParseInt(first.Number, 10, 64)
	require.NoError(t, err)
	n2, err := strconv.ParseInt(second.Number, 10, 64)
	require.NoError(t, err)
	require.Greater(t, n2, n1)

	got, err := repo.Get(ctx, customer.CPR, second.Number)
	require.NoError(t, err)
	require.Equal(t, second, got)

	accounts, err := repo.List(ctx, customer.CPR)
	require.NoError(t, err)
	require.Equal(t, []domain.Account{first, second}, accounts)

	_, err = repo.Create(ctx, "0000000000")
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/pkg/errorspkg"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var (
	accountColumns  = []string{"id", "customer_id", "number", "created_at"}
	customerColumns = []string{"id", "name", "cpr", "created_at"}
)

func TestCreate(t *testing.T) {
	const cpr = "0123456789"

	now := time.Now().UTC()
	customer := domain.Customer{ID: 11, Name: "Klaus", CPR: cpr, CreatedAt: now}

	expectCustomer := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("FROM customers").
			WithArgs(cpr).
			WillReturnRows(sqlmock.NewRows(customerColumns).
				AddRow(customer.ID, customer.Name, customer.CPR, customer.CreatedAt))
	}
	expectSequence := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("INSERT INTO account_numbers").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	}

	testCases := []struct {
		name      string
		buildMock func(mock sqlmock.Sqlmock)
		want      domain.Account
		wantErr   error
	}{
		{
			name: "OK",
			buildMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectCustomer(mock)
				expectSequence(mock)
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(customer.ID, "000000042").
					WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(1, customer.ID, "000000042", now))
				mock.ExpectCommit()
			},
			want: domain.Account{ID: 1, CustomerID: customer.ID, Number: "000000042", CreatedAt: now},
		},
		{
			name: "ErrCustomerNotFound",
			buildMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("FROM customers").
					WithArgs(cpr).
					WillReturnRows(sqlmock.NewRows(customerColumns))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrCustomerNotFound,
		},
		{
			name: "ConstraintViolation:accounts_number_key",
			buildMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectCustomer(mock)
				expectSequence(mock)
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(customer.ID, "000000042").
					WillReturnError(&pq.Error{Code: "23505", Constraint: "accounts_number_key"})
				mock.ExpectRollback()
			},
			wantErr: domain.ErrAccountNumberAlreadyExists,
		},
		{
			name: "SequenceExhausted",
			buildMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectCustomer(mock)
				mock.ExpectQuery("INSERT INTO account_numbers").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(domain.MaxAccountNumber + 1))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrAccountNumbersExhausted,
		},
		{
			name: "SequenceFails",
			buildMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				expectCustomer(mock)
				mock.ExpectQuery("INSERT INTO account_numbers").
					WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tc.buildMock(mock)

			got, err := NewRepoPGS(db).Create(context.Background(), cpr)
			require.ErrorIs(t, err, tc.wantErr)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Create(ctx, %q) returned unexpected difference (-want +got):\n%s", cpr, diff)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGet(t *testing.T) {
	now := time.Now().UTC()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("0123456789", "000000001").
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(1, 2, "000000001", now))
	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("1234567890", "000000001").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	repo := NewRepoPGS(db)

	got, err := repo.Get(context.Background(), "0123456789", "000000001")
	require.NoError(t, err)
	require.Equal(t, domain.Account{ID: 1, CustomerID: 2, Number: "000000001", CreatedAt: now}, got)

	// The account exists but belongs to another customer.
	_, err = repo.Get(context.Background(), "1234567890", "000000001")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	now := time.Now().UTC()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("0123456789").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(1, 2, "000000001", now).
			AddRow(3, 2, "000000003", now))
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("1234567890").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	repo := NewRepoPGS(db)

	got, err := repo.List(context.Background(), "0123456789")
	require.NoError(t, err)
	require.Equal(t, []domain.Account{
		{ID: 1, CustomerID: 2, Number: "000000001", CreatedAt: now},
		{ID: 3, CustomerID: 2, Number: "000000003", CreatedAt: now},
	}, got)

	got, err = repo.List(context.Background(), "1234567890")
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

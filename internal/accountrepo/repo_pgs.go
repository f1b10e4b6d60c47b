// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/ledger/internal/customerrepo"
	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/internal/sequencerepo"
	"github.com/go-petr/ledger/pkg/dbpkg"
	"github.com/go-petr/ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns account RepoPGS bound to an already started transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns account RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

func scan(s dbpkg.Scanner) (domain.Account, error) {
	var a domain.Account
	err := s.Scan(&a.ID, &a.CustomerID, &a.Number, &a.CreatedAt)
	return a, err
}

// Create opens an account for the customer with the given cpr.
//
// The customer lookup, the sequence draw and the insert share one transaction,
// so a failed insert does not consume the account number.
func (r *RepoPGS) Create(ctx context.Context, cpr string) (domain.Account, error) {
	var result domain.Account

	err := r.inTx(ctx, func(db dbpkg.SQLInterface) error {
		customer, err := customerrepo.NewTxRepoPGS(db).GetByCPR(ctx, cpr)
		if err != nil {
			return err
		}

		seq, err := sequencerepo.NewRepoPGS(db).Next(ctx)
		if err != nil {
			return err
		}

		number, err := domain.FormatAccountNumber(seq)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Int64("seq", seq).Send()
			return err
		}

		result, err = NewTxRepoPGS(db).Insert(ctx, customer.ID, number)

		return err
	})
	if err != nil {
		return domain.Account{}, err
	}

	return result, nil
}

const insertQuery = `
INSERT INTO
    accounts (customer_id, number)
VALUES
    ($1, $2)
RETURNING id, customer_id, number, created_at
`

// Insert stores an account with an already allocated number.
func (r *RepoPGS) Insert(ctx context.Context, customerID int64, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scan(r.db.QueryRowContext(ctx, insertQuery, customerID, number))
	if err != nil {
		l.Error().Err(err).Int64("customer_id", customerID).Str("number", number).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "accounts_customer_id_fkey":
				return domain.Account{}, domain.ErrCustomerNotFound
			case "accounts_number_key":
				return domain.Account{}, domain.ErrAccountNumberAlreadyExists
			}
		}

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	a.id, a.customer_id, a.number, a.created_at
FROM accounts a
JOIN customers c ON c.id = a.customer_id
WHERE c.cpr = $1 AND a.number = $2
`

// Get returns the account with the given number owned by the customer with the given cpr.
func (r *RepoPGS) Get(ctx context.Context, cpr, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scan(r.db.QueryRowContext(ctx, getQuery, cpr, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Str("cpr", cpr).Str("number", number).Msg(domain.ErrAccountNotFound.Error())
			return domain.Account{}, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT
	a.id, a.customer_id, a.number, a.created_at
FROM accounts a
JOIN customers c ON c.id = a.customer_id
WHERE c.cpr = $1
ORDER BY a.id
`

// List returns all accounts of the customer with the given cpr.
func (r *RepoPGS) List(ctx context.Context, cpr string) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, cpr)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func (r *RepoPGS) inTx(ctx context.Context, fn func(db dbpkg.SQLInterface) error) error {
	if r.conn == nil {
		return fn(r.db)
	}

	return dbpkg.RunTx(ctx, r.conn, nil, func(tx *sql.Tx) error {
		return fn(tx)
	})
}

// Package customerrepo manages repository layer of customers.
package customerrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/pkg/dbpkg"
	"github.com/go-petr/ledger/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates customer repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns customer RepoPGS bound to an already started transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns customer RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

func scan(s dbpkg.Scanner) (domain.Customer, error) {
	var c domain.Customer
	err := s.Scan(&c.ID, &c.Name, &c.CPR, &c.CreatedAt)
	return c, err
}

const createQuery = `
INSERT INTO
    customers (name, cpr)
VALUES
    ($1, $2)
RETURNING id, name, cpr, created_at
`

// Create creates the customer and then returns it.
func (r *RepoPGS) Create(ctx context.Context, name, cpr string) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	c, err := scan(r.db.QueryRowContext(ctx, createQuery, name, cpr))
	if err != nil {
		l.Error().Err(err).Str("cpr", cpr).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "customers_cpr_key":
				return domain.Customer{}, domain.ErrCPRAlreadyExists
			case "customers_cpr_check":
				return domain.Customer{}, domain.ErrInvalidCPR
			}
		}

		return domain.Customer{}, errorspkg.ErrInternal
	}

	return c, nil
}

const getByCPRQuery = `
SELECT
	id, name, cpr, created_at
FROM customers
WHERE cpr = $1
`

// GetByCPR returns the customer with the given cpr.
func (r *RepoPGS) GetByCPR(ctx context.Context, cpr string) (domain.Customer, error) {
	return r.get(ctx, getByCPRQuery, cpr)
}

func (r *RepoPGS) get(ctx context.Context, query, cpr string) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	c, err := scan(r.db.QueryRowContext(ctx, query, cpr))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Str("cpr", cpr).Msg(domain.ErrCustomerNotFound.Error())
			return domain.Customer{}, domain.ErrCustomerNotFound
		}

		l.Error().Err(err).Send()

		return domain.Customer{}, errorspkg.ErrInternal
	}

	return c, nil
}

const updateNameQuery = `
UPDATE customers
SET name = $1
WHERE id = $2
RETURNING id, name, cpr, created_at
`

// UpdateName sets the name of the customer with the given id.
func (r *RepoPGS) UpdateName(ctx context.Context, id int64, name string) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	c, err := scan(r.db.QueryRowContext(ctx, updateNameQuery, name, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}

		l.Error().Err(err).Send()

		return domain.Customer{}, errorspkg.ErrInternal
	}

	return c, nil
}

const getForUpdateQuery = getByCPRQuery + "FOR UPDATE\n"

// Rename looks up the customer by cpr and changes its name within one transaction.
func (r *RepoPGS) Rename(ctx context.Context, cpr, name string) (domain.Customer, error) {
	var result domain.Customer

	err := r.inTx(ctx, func(txRepo *RepoPGS) error {
		c, err := txRepo.get(ctx, getForUpdateQuery, cpr)
		if err != nil {
			return err
		}

		result, err = txRepo.UpdateName(ctx, c.ID, name)

		return err
	})
	if err != nil {
		return domain.Customer{}, err
	}

	return result, nil
}

// inTx runs fn in a new transaction, or directly when r is already transaction bound.
func (r *RepoPGS) inTx(ctx context.Context, fn func(txRepo *RepoPGS) error) error {
	if r.conn == nil {
		return fn(r)
	}

	return dbpkg.RunTx(ctx, r.conn, nil, func(tx *sql.Tx) error {
		return fn(NewTxRepoPGS(tx))
	})
}

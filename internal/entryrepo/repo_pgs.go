// Package entryrepo manages repository layer of journal entries.
//
// Entries are append-only: the package offers no update or delete.
package entryrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-petr/ledger/internal/accountrepo"
	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/pkg/dbpkg"
	"github.com/go-petr/ledger/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns entry RepoPGS bound to an already started transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns entry RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const entryColumns = `e.id, e.account_id, e.entry_time, e.text, e.amount`

func scan(s dbpkg.Scanner) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := s.Scan(&e.ID, &e.AccountID, &e.EntryTime, &e.Text, &e.Amount)
	return e, err
}

// Post appends a signed entry to the account matching both cpr and number.
func (r *RepoPGS) Post(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error) {
	var result domain.JournalEntry

	err := r.inTx(ctx, nil, func(db dbpkg.SQLInterface) error {
		account, err := accountrepo.NewTxRepoPGS(db).Get(ctx, cpr, number)
		if err != nil {
			return err
		}

		result, err = NewTxRepoPGS(db).Insert(ctx, account.ID, text, amount)

		return err
	})
	if err != nil {
		return domain.JournalEntry{}, err
	}

	return result, nil
}

const insertQuery = `
INSERT INTO
    entries AS e (account_id, text, amount)
VALUES
    ($1, $2, $3)
RETURNING ` + entryColumns + `
`

// Insert creates the entry and then returns it.
func (r *RepoPGS) Insert(ctx context.Context, accountID int64, text string, amount float64) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	e, err := scan(r.db.QueryRowContext(ctx, insertQuery, accountID, text, amount))
	if err != nil {
		l.Error().Err(err).Int64("account_id", accountID).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "entries_account_id_fkey":
				return domain.JournalEntry{}, domain.ErrAccountNotFound
			case "entries_text_check":
				return domain.JournalEntry{}, domain.ErrEmptyText
			}
		}

		return domain.JournalEntry{}, errorspkg.ErrInternal
	}

	return e, nil
}

const balanceQuery = `
SELECT COALESCE(SUM(e.amount), 0)
FROM entries e
JOIN accounts a ON a.id = e.account_id
JOIN customers c ON c.id = a.customer_id
WHERE c.cpr = $1 AND a.number = $2
`

// Balance returns the sum of the entries of the account matching both cpr and number.
// It is 0 when no entry matches, including when no such account exists.
func (r *RepoPGS) Balance(ctx context.Context, cpr, number string) (float64, error) {
	var balance float64

	if err := r.db.QueryRowContext(ctx, balanceQuery, cpr, number).Scan(&balance); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return balance, nil
}

const historyQuery = `
SELECT ` + entryColumns + `
FROM entries e
JOIN accounts a ON a.id = e.account_id
JOIN customers c ON c.id = a.customer_id
WHERE c.cpr = $1 AND a.number = $2
ORDER BY e.entry_time, e.id
`

// History returns the entries of the account matching both cpr and number ordered by
// entry time, ties broken by id. It is empty when no entry matches.
func (r *RepoPGS) History(ctx context.Context, cpr, number string) ([]domain.JournalEntry, error) {
	return list(ctx, r.db, scan, historyQuery, cpr, number)
}

const listLargeQuery = `
SELECT
	c.id, c.name, c.cpr, c.created_at, ` + entryColumns + `
FROM entries e
JOIN accounts a ON a.id = e.account_id
JOIN customers c ON c.id = a.customer_id
WHERE e.entry_time >= $1 AND e.amount > $2
ORDER BY e.entry_time, e.id
`

// ListLarge returns every entry since the given time with an amount strictly above threshold,
// across all accounts, ordered by entry time.
func (r *RepoPGS) ListLarge(ctx context.Context, since time.Time, threshold float64) ([]domain.FlaggedEntry, error) {
	var items []domain.FlaggedEntry

	err := r.inTx(ctx, dbpkg.ReadOnly, func(db dbpkg.SQLInterface) error {
		var err error

		items, err = list(ctx, db, func(s dbpkg.Scanner) (domain.FlaggedEntry, error) {
			var (
				f domain.FlaggedEntry
				c = &f.Customer
				e = &f.Entry
			)
			err := s.Scan(
				&c.ID, &c.Name, &c.CPR, &c.CreatedAt,
				&e.ID, &e.AccountID, &e.EntryTime, &e.Text, &e.Amount,
			)
			return f, err
		}, listLargeQuery, since, threshold)

		return err
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func list[T any](ctx context.Context, db dbpkg.SQLInterface, scanRow func(dbpkg.Scanner) (T, error), query string, args ...any) ([]T, error) {
	l := zerolog.Ctx(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []T{}

	for rows.Next() {
		item, err := scanRow(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func (r *RepoPGS) inTx(ctx context.Context, opts *sql.TxOptions, fn func(db dbpkg.SQLInterface) error) error {
	if r.conn == nil {
		return fn(r.db)
	}

	return dbpkg.RunTx(ctx, r.conn, opts, func(tx *sql.Tx) error {
		return fn(tx)
	})
}

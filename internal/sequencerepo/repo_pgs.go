// Package sequencerepo issues account number sequence values.
package sequencerepo

import (
	"context"

	"github.com/go-petr/ledger/pkg/dbpkg"
	"github.com/go-petr/ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS draws values from the account_numbers table.
//
// It is meant to run on a transaction handle: a rolled back account creation also
// removes its sequence row, so drawn values are never shared but may leave gaps.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns sequence RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const nextQuery = `
INSERT INTO account_numbers DEFAULT VALUES
RETURNING id
`

// Next persists and returns the next sequence value.
func (r *RepoPGS) Next(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var id int64
	if err := r.db.QueryRowContext(ctx, nextQuery).Scan(&id); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return id, nil
}

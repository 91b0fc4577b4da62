// Package repository holds the parameterized SQL for users, products and
// sales. Every repository works against a PgxExecutor, which the pool
// satisfies in production.
package repository

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/sqlerr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxExecutor is an interface that matches both *pgxpool.Pool/*pgx.Conn and pgx.Tx
type PgxExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// listCap bounds the sales listing.
const listCap = 100

// classify turns constraint violations raised by a write into client errors.
// Anything it does not recognise is returned unchanged.
func classify(err error) error {
	switch {
	case sqlerr.IsUniqueViolation(err):
		switch sqlerr.Constraint(err) {
		case sqlerr.UsersEmailKey:
			return errs.NewConflictError(errs.MsgEmailTaken, err)
		case sqlerr.ProductsSKUKey:
			return errs.NewConflictError(errs.MsgSKUTaken, err)
		default:
			return errs.NewConflictError(errs.MsgDuplicate, err)
		}
	case sqlerr.IsForeignKeyViolation(err):
		// a referenced user or product vanished between the check and the write
		switch sqlerr.Constraint(err) {
		case sqlerr.SalesUserIDFkey:
			return errs.NewNotFoundError(errs.MsgUserNotFound)
		case sqlerr.SalesProductIDFkey:
			return errs.NewNotFoundError(errs.MsgProductNotFound)
		}
	case sqlerr.IsOutOfRange(err):
		// e.g. a sale total beyond NUMERIC(14,2)
		return errs.NewValidationError(errs.MsgValueOutOfRange)
	}
	return err
}

func exists(ctx context.Context, db PgxExecutor, query string, id int64) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, id).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func countSales(ctx context.Context, db PgxExecutor, query string, id int64) (int, error) {
	var n int
	if err := db.QueryRow(ctx, query, id).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Package sqlerr inspects PostgreSQL errors returned through pgx.
//
// Repositories use it to tell constraint violations apart from other
// storage failures without matching on driver message text.
package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the application reacts to.
const (
	UniqueViolation        = "23505"
	ForeignKeyViolation    = "23503"
	CheckViolation         = "23514"
	NumericValueOutOfRange = "22003"
)

// Default PostgreSQL constraint names of the store schema.
const (
	UsersEmailKey      = "users_email_key"
	ProductsSKUKey     = "products_sku_key"
	SalesUserIDFkey    = "sales_user_id_fkey"
	SalesProductIDFkey = "sales_product_id_fkey"
)

// Code returns the SQLSTATE of err, or "" when err is not a server error.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Constraint returns the name of the violated constraint, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}

// IsOutOfRange reports a value the column cannot hold: numeric overflow or a
// failed CHECK constraint.
func IsOutOfRange(err error) bool {
	code := Code(err)
	return code == NumericValueOutOfRange || code == CheckViolation
}

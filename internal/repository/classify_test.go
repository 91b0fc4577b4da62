package repository

import (
	"errors"
	"net/http"
	"testing"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/sqlerr"

	cerrors "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		status  int
		message string
	}{
		{"email taken", &pgconn.PgError{Code: sqlerr.UniqueViolation, ConstraintName: sqlerr.UsersEmailKey}, http.StatusConflict, errs.MsgEmailTaken},
		{"sku taken", &pgconn.PgError{Code: sqlerr.UniqueViolation, ConstraintName: sqlerr.ProductsSKUKey}, http.StatusConflict, errs.MsgSKUTaken},
		{"other unique", &pgconn.PgError{Code: sqlerr.UniqueViolation, ConstraintName: "users_pkey"}, http.StatusConflict, errs.MsgDuplicate},
		{"user vanished", &pgconn.PgError{Code: sqlerr.ForeignKeyViolation, ConstraintName: sqlerr.SalesUserIDFkey}, http.StatusNotFound, errs.MsgUserNotFound},
		{"product vanished", &pgconn.PgError{Code: sqlerr.ForeignKeyViolation, ConstraintName: sqlerr.SalesProductIDFkey}, http.StatusNotFound, errs.MsgProductNotFound},
		{"total overflow", &pgconn.PgError{Code: sqlerr.NumericValueOutOfRange}, http.StatusBadRequest, errs.MsgValueOutOfRange},
		{"check constraint", &pgconn.PgError{Code: sqlerr.CheckViolation, ConstraintName: "sales_quantity_check"}, http.StatusBadRequest, errs.MsgValueOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(cerrors.Wrap(tt.pgErr, "insert sale"))
			e, ok := errs.As(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, tt.message, e.Message)
		})
	}
}

func TestClassify_Unrecognised(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := classify(cerrors.Wrap(cause, "insert user"))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, errs.Status(err))
}

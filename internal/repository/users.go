package repository

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
	"fsanano/store-api/internal/sqlerr"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, created_at`

type UserRepository struct {
	db PgxExecutor
}

func NewUserRepository(db PgxExecutor) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	return u, err
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query users")
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan users")
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.NewNotFoundError(errs.MsgUserNotFound)
		}
		return model.User{}, errors.Wrapf(err, "get user %d", id)
	}
	return u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, errors.Wrapf(err, "check user %d", id)
	}
	return found, nil
}

func (r *UserRepository) Create(ctx context.Context, in model.UserInput) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING `+userColumns,
		in.Name.Value, in.Email.Value,
	))
	if err != nil {
		return model.User{}, classify(errors.Wrap(err, "insert user"))
	}
	return u, nil
}

// Update writes the supplied fields only; absent fields bind NULL and keep
// their stored value.
func (r *UserRepository) Update(ctx context.Context, id int64, in model.UserInput) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users
		SET name = COALESCE($2, name),
			email = COALESCE($3, email)
		WHERE id = $1
		RETURNING `+userColumns,
		id, in.Name.Ptr(), in.Email.Ptr(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.NewNotFoundError(errs.MsgUserNotFound)
		}
		return model.User{}, classify(errors.Wrapf(err, "update user %d", id))
	}
	return u, nil
}

// Delete refuses while sales reference the user.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.CountSales(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.NewBlockedDeleteError(errs.MsgUserHasSales, n)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if sqlerr.IsForeignKeyViolation(err) {
			// a sale was inserted after the count
			if n, cerr := r.CountSales(ctx, id); cerr == nil {
				return errs.NewBlockedDeleteError(errs.MsgUserHasSales, n)
			}
		}
		return errors.Wrapf(err, "delete user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError(errs.MsgUserNotFound)
	}
	return nil
}

// CountSales returns how many sales reference the user.
func (r *UserRepository) CountSales(ctx context.Context, id int64) (int, error) {
	n, err := countSales(ctx, r.db, `SELECT COUNT(*) FROM sales WHERE user_id = $1`, id)
	if err != nil {
		return 0, errors.Wrapf(err, "count sales of user %d", id)
	}
	return n, nil
}

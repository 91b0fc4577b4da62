package repository

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
)

// Sales are always read joined with their user and product. Writes go
// through a CTE named s so that they return the same shape as reads.
const (
	saleColumns = `s.id, s.user_id, s.product_id, u.name, u.email, p.sku, p.name,
		s.quantity, s.unit_price, s.total, s.created_at`
	saleJoins = ` JOIN users u ON u.id = s.user_id JOIN products p ON p.id = s.product_id`
)

type SaleRepository struct {
	db PgxExecutor
}

func NewSaleRepository(db PgxExecutor) *SaleRepository {
	return &SaleRepository{db: db}
}

func scanSale(row pgx.Row) (model.Sale, error) {
	var s model.Sale
	err := row.Scan(
		&s.ID, &s.UserID, &s.ProductID, &s.UserName, &s.UserEmail, &s.SKU, &s.ProductName,
		&s.Quantity, &s.UnitPrice, &s.Total, &s.CreatedAt,
	)
	return s, err
}

// List returns the most recent sales, newest first.
func (r *SaleRepository) List(ctx context.Context) ([]model.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales s`+saleJoins+` ORDER BY s.id DESC LIMIT $1`,
		listCap,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query sales")
	}
	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan sales")
	}
	return sales, nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id int64) (model.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales s`+saleJoins+` WHERE s.id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Sale{}, errs.NewNotFoundError(errs.MsgSaleNotFound)
		}
		return model.Sale{}, errors.Wrapf(err, "get sale %d", id)
	}
	return s, nil
}

func (r *SaleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, id)
	if err != nil {
		return false, errors.Wrapf(err, "check sale %d", id)
	}
	return found, nil
}

// Create inserts a sale. Without a unit price the product's price at the
// moment of insertion is used.
func (r *SaleRepository) Create(ctx context.Context, in model.SaleInput) (model.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx,
		`WITH s AS (
			INSERT INTO sales (user_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, COALESCE($4::numeric, (SELECT price FROM products WHERE id = $2)))
			RETURNING *
		)
		SELECT `+saleColumns+` FROM s`+saleJoins,
		in.UserID.Value, in.ProductID.Value, in.Quantity.Value, in.UnitPrice.Ptr(),
	))
	if err != nil {
		return model.Sale{}, classify(errors.Wrap(err, "insert sale"))
	}
	return s, nil
}

// Update writes the supplied fields only; total is recomputed by the
// database.
func (r *SaleRepository) Update(ctx context.Context, id int64, in model.SaleInput) (model.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx,
		`WITH s AS (
			UPDATE sales
			SET user_id = COALESCE($2, user_id),
				product_id = COALESCE($3, product_id),
				quantity = COALESCE($4, quantity),
				unit_price = COALESCE($5::numeric, unit_price)
			WHERE id = $1
			RETURNING *
		)
		SELECT `+saleColumns+` FROM s`+saleJoins,
		id, in.UserID.Ptr(), in.ProductID.Ptr(), in.Quantity.Ptr(), in.UnitPrice.Ptr(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Sale{}, errs.NewNotFoundError(errs.MsgSaleNotFound)
		}
		return model.Sale{}, classify(errors.Wrapf(err, "update sale %d", id))
	}
	return s, nil
}

func (r *SaleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return errors.Wrapf(err, "delete sale %d", id)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError(errs.MsgSaleNotFound)
	}
	return nil
}

package repository

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
	"fsanano/store-api/internal/sqlerr"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, sku, name, price, created_at`

type ProductRepository struct {
	db PgxExecutor
}

func NewProductRepository(db PgxExecutor) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.CreatedAt)
	return p, err
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan products")
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, errs.NewNotFoundError(errs.MsgProductNotFound)
		}
		return model.Product{}, errors.Wrapf(err, "get product %d", id)
	}
	return p, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id)
	if err != nil {
		return false, errors.Wrapf(err, "check product %d", id)
	}
	return found, nil
}

func (r *ProductRepository) Create(ctx context.Context, in model.ProductInput) (model.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`INSERT INTO products (sku, name, price) VALUES ($1, $2, $3) RETURNING `+productColumns,
		in.SKU.Value, in.Name.Value, in.Price.Value,
	))
	if err != nil {
		return model.Product{}, classify(errors.Wrap(err, "insert product"))
	}
	return p, nil
}

// Update writes the supplied fields only. sku is nullable, so whether it was
// supplied travels as its own flag: a supplied nil clears it.
func (r *ProductRepository) Update(ctx context.Context, id int64, in model.ProductInput) (model.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`UPDATE products
		SET sku = CASE WHEN $2::boolean THEN $3::text ELSE sku END,
			name = COALESCE($4, name),
			price = COALESCE($5::numeric, price)
		WHERE id = $1
		RETURNING `+productColumns,
		id, in.SKU.Set, in.SKU.Value, in.Name.Ptr(), in.Price.Ptr(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, errs.NewNotFoundError(errs.MsgProductNotFound)
		}
		return model.Product{}, classify(errors.Wrapf(err, "update product %d", id))
	}
	return p, nil
}

// Delete refuses while sales reference the product.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.CountSales(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errs.NewBlockedDeleteError(errs.MsgProductHasSales, n)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if sqlerr.IsForeignKeyViolation(err) {
			if n, cerr := r.CountSales(ctx, id); cerr == nil {
				return errs.NewBlockedDeleteError(errs.MsgProductHasSales, n)
			}
		}
		return errors.Wrapf(err, "delete product %d", id)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError(errs.MsgProductNotFound)
	}
	return nil
}

func (r *ProductRepository) CountSales(ctx context.Context, id int64) (int, error) {
	n, err := countSales(ctx, r.db, `SELECT COUNT(*) FROM sales WHERE product_id = $1`, id)
	if err != nil {
		return 0, errors.Wrapf(err, "count sales of product %d", id)
	}
	return n, nil
}

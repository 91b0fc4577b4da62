// Package service orchestrates the checks that run between validation and
// the write: target existence, empty updates and referenced rows.
package service

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, in model.UserInput) (model.User, error)
	Update(ctx context.Context, id int64, in model.UserInput) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, in model.ProductInput) (model.Product, error)
	Update(ctx context.Context, id int64, in model.ProductInput) (model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type SaleRepository interface {
	List(ctx context.Context) ([]model.Sale, error)
	GetByID(ctx context.Context, id int64) (model.Sale, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, in model.SaleInput) (model.Sale, error)
	Update(ctx context.Context, id int64, in model.SaleInput) (model.Sale, error)
	Delete(ctx context.Context, id int64) error
}

type existsFunc func(ctx context.Context, id int64) (bool, error)

// mustExist returns a not-found error carrying message when id is absent.
func mustExist(ctx context.Context, exists existsFunc, id int64, message string) error {
	found, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewNotFoundError(message)
	}
	return nil
}

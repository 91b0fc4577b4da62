package service

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
)

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in model.ProductInput) (model.Product, error) {
	return s.repo.Create(ctx, in)
}

func (s *ProductService) Update(ctx context.Context, id int64, in model.ProductInput) (model.Product, error) {
	if err := mustExist(ctx, s.repo.Exists, id, errs.MsgProductNotFound); err != nil {
		return model.Product{}, err
	}
	if in.Empty() {
		return model.Product{}, errs.NewValidationError(errs.MsgNothingToSave)
	}
	return s.repo.Update(ctx, id, in)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := mustExist(ctx, s.repo.Exists, id, errs.MsgProductNotFound); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

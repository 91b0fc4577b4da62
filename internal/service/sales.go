package service

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
)

// SaleService checks that the user and product a sale points at exist before
// writing it.
type SaleService struct {
	sales    SaleRepository
	users    UserRepository
	products ProductRepository
}

func NewSaleService(sales SaleRepository, users UserRepository, products ProductRepository) *SaleService {
	return &SaleService{sales: sales, users: users, products: products}
}

func (s *SaleService) List(ctx context.Context) ([]model.Sale, error) {
	return s.sales.List(ctx)
}

func (s *SaleService) Get(ctx context.Context, id int64) (model.Sale, error) {
	return s.sales.GetByID(ctx, id)
}

func (s *SaleService) Create(ctx context.Context, in model.SaleInput) (model.Sale, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return model.Sale{}, err
	}
	return s.sales.Create(ctx, in)
}

func (s *SaleService) Update(ctx context.Context, id int64, in model.SaleInput) (model.Sale, error) {
	if err := mustExist(ctx, s.sales.Exists, id, errs.MsgSaleNotFound); err != nil {
		return model.Sale{}, err
	}
	if in.Empty() {
		return model.Sale{}, errs.NewValidationError(errs.MsgNothingToSave)
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return model.Sale{}, err
	}
	return s.sales.Update(ctx, id, in)
}

func (s *SaleService) Delete(ctx context.Context, id int64) error {
	if err := mustExist(ctx, s.sales.Exists, id, errs.MsgSaleNotFound); err != nil {
		return err
	}
	return s.sales.Delete(ctx, id)
}

// checkReferences verifies only the references present in the input.
func (s *SaleService) checkReferences(ctx context.Context, in model.SaleInput) error {
	if in.UserID.Set {
		if err := mustExist(ctx, s.users.Exists, in.UserID.Value, errs.MsgUserNotFound); err != nil {
			return err
		}
	}
	if in.ProductID.Set {
		if err := mustExist(ctx, s.products.Exists, in.ProductID.Value, errs.MsgProductNotFound); err != nil {
			return err
		}
	}
	return nil
}

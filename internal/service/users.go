package service

import (
	"context"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in model.UserInput) (model.User, error) {
	return s.repo.Create(ctx, in)
}

func (s *UserService) Update(ctx context.Context, id int64, in model.UserInput) (model.User, error) {
	if err := mustExist(ctx, s.repo.Exists, id, errs.MsgUserNotFound); err != nil {
		return model.User{}, err
	}
	if in.Empty() {
		return model.User{}, errs.NewValidationError(errs.MsgNothingToSave)
	}
	return s.repo.Update(ctx, id, in)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := mustExist(ctx, s.repo.Exists, id, errs.MsgUserNotFound); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

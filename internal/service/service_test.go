package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
	"fsanano/store-api/internal/repository"
	"fsanano/store-api/internal/service"
	"fsanano/store-api/internal/service/servicetest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ service.UserRepository    = (*repository.UserRepository)(nil)
	_ service.ProductRepository = (*repository.ProductRepository)(nil)
	_ service.SaleRepository    = (*repository.SaleRepository)(nil)

	_ service.UserRepository    = (*servicetest.UserRepo)(nil)
	_ service.ProductRepository = (*servicetest.ProductRepo)(nil)
	_ service.SaleRepository    = (*servicetest.SaleRepo)(nil)
)

type services struct {
	store    *servicetest.Store
	users    *service.UserService
	products *service.ProductService
	sales    *service.SaleService
}

func newServices() services {
	store := servicetest.NewStore()
	return services{
		store:    store,
		users:    service.NewUserService(store.Users()),
		products: service.NewProductService(store.Products()),
		sales:    service.NewSaleService(store.Sales(), store.Users(), store.Products()),
	}
}

func requireStatus(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok, "expected *errs.Error, got %T", err)
	assert.Equal(t, status, e.Status)
	assert.Equal(t, message, e.Message)
}

func seed(t *testing.T, s services) (model.User, model.Product) {
	t.Helper()
	ctx := context.Background()
	u, err := s.users.Create(ctx, model.UserInput{Name: model.Some("Ana"), Email: model.Some("ana@x.com")})
	require.NoError(t, err)
	p, err := s.products.Create(ctx, model.ProductInput{
		SKU:   model.Some[*string](nil),
		Name:  model.Some("Widget"),
		Price: model.Some(decimal.RequireFromString("10.00")),
	})
	require.NoError(t, err)
	return u, p
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	u, _ := seed(t, s)

	t.Run("missing target is checked before the empty input", func(t *testing.T) {
		_, err := s.users.Update(ctx, 99, model.UserInput{})
		requireStatus(t, err, http.StatusNotFound, errs.MsgUserNotFound)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := s.users.Update(ctx, u.ID, model.UserInput{})
		requireStatus(t, err, http.StatusBadRequest, errs.MsgNothingToSave)
	})

	t.Run("partial", func(t *testing.T) {
		got, err := s.users.Update(ctx, u.ID, model.UserInput{Email: model.Some("ana@y.com")})
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Name)
		assert.Equal(t, "ana@y.com", got.Email)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	u, p := seed(t, s)

	requireStatus(t, s.users.Delete(ctx, 42), http.StatusNotFound, errs.MsgUserNotFound)

	_, err := s.sales.Create(ctx, model.SaleInput{
		UserID:    model.Some(u.ID),
		ProductID: model.Some(p.ID),
		Quantity:  model.Some(1),
	})
	require.NoError(t, err)

	err = s.users.Delete(ctx, u.ID)
	requireStatus(t, err, http.StatusConflict, errs.MsgUserHasSales)
	e, _ := errs.As(err)
	require.NotNil(t, e.SalesCount)
	assert.Equal(t, 1, *e.SalesCount)
}

func TestProductService_DeleteWithoutSales(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	_, p := seed(t, s)

	require.NoError(t, s.products.Delete(ctx, p.ID))
	_, err := s.products.Get(ctx, p.ID)
	requireStatus(t, err, http.StatusNotFound, errs.MsgProductNotFound)
}

func TestSaleService_Create(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	u, p := seed(t, s)

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.sales.Create(ctx, model.SaleInput{
			UserID:    model.Some(int64(99)),
			ProductID: model.Some(p.ID),
			Quantity:  model.Some(1),
		})
		requireStatus(t, err, http.StatusNotFound, errs.MsgUserNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := s.sales.Create(ctx, model.SaleInput{
			UserID:    model.Some(u.ID),
			ProductID: model.Some(int64(99)),
			Quantity:  model.Some(1),
		})
		requireStatus(t, err, http.StatusNotFound, errs.MsgProductNotFound)
	})

	t.Run("default unit price", func(t *testing.T) {
		sale, err := s.sales.Create(ctx, model.SaleInput{
			UserID:    model.Some(u.ID),
			ProductID: model.Some(p.ID),
			Quantity:  model.Some(3),
		})
		require.NoError(t, err)
		assert.Equal(t, "10", sale.UnitPrice.String())
		assert.Equal(t, "30", sale.Total.String())
	})
}

func TestSaleService_Update(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	u, p := seed(t, s)

	sale, err := s.sales.Create(ctx, model.SaleInput{
		UserID:    model.Some(u.ID),
		ProductID: model.Some(p.ID),
		Quantity:  model.Some(2),
	})
	require.NoError(t, err)

	_, err = s.sales.Update(ctx, sale.ID, model.SaleInput{})
	requireStatus(t, err, http.StatusBadRequest, errs.MsgNothingToSave)

	_, err = s.sales.Update(ctx, sale.ID, model.SaleInput{ProductID: model.Some(int64(7))})
	requireStatus(t, err, http.StatusNotFound, errs.MsgProductNotFound)

	got, err := s.sales.Update(ctx, sale.ID, model.SaleInput{UnitPrice: model.Some(decimal.RequireFromString("2.5"))})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, "5", got.Total.String())
}

func TestService_StorageFailurePassesThrough(t *testing.T) {
	s := newServices()
	boom := errors.New("connection refused")
	s.store.Fail = boom

	_, err := s.users.List(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, http.StatusInternalServerError, errs.Status(err))

	err = s.sales.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

// Package servicetest provides an in-memory store whose repositories behave
// like the PostgreSQL ones: unique email and sku, blocked deletes, default
// unit price and computed totals.
package servicetest

import (
	"context"
	"slices"
	"sync"
	"time"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"

	"github.com/shopspring/decimal"
)

type Store struct {
	mu sync.Mutex

	users    map[int64]model.User
	products map[int64]model.Product
	sales    map[int64]model.Sale
	lastID   map[string]int64

	// Fail, when set, is returned by every repository call.
	Fail error
}

func NewStore() *Store {
	return &Store{
		users:    map[int64]model.User{},
		products: map[int64]model.Product{},
		sales:    map[int64]model.Sale{},
		lastID:   map[string]int64{},
	}
}

func (s *Store) Users() *UserRepo       { return &UserRepo{s} }
func (s *Store) Products() *ProductRepo { return &ProductRepo{s} }
func (s *Store) Sales() *SaleRepo       { return &SaleRepo{s} }

func (s *Store) nextID(table string) int64 {
	s.lastID[table]++
	return s.lastID[table]
}

func (s *Store) countSales(match func(model.Sale) bool) int {
	n := 0
	for _, sale := range s.sales {
		if match(sale) {
			n++
		}
	}
	return n
}

func sortedValues[T any](m map[int64]T, desc bool) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	if desc {
		slices.Reverse(ids)
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

type UserRepo struct{ s *Store }

func (r *UserRepo) List(_ context.Context) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedValues(r.s.users, false), nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.User{}, r.s.Fail
	}
	u, ok := r.s.users[id]
	if !ok {
		return model.User{}, errs.NewNotFoundError(errs.MsgUserNotFound)
	}
	return u, nil
}

func (r *UserRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return false, r.s.Fail
	}
	_, ok := r.s.users[id]
	return ok, nil
}

func (r *UserRepo) emailTaken(email string, except int64) bool {
	for id, u := range r.s.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (r *UserRepo) Create(_ context.Context, in model.UserInput) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.User{}, r.s.Fail
	}
	if r.emailTaken(in.Email.Value, 0) {
		return model.User{}, errs.NewConflictError(errs.MsgEmailTaken, nil)
	}
	u := model.User{
		ID:        r.s.nextID("users"),
		Name:      in.Name.Value,
		Email:     in.Email.Value,
		CreatedAt: time.Now(),
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepo) Update(_ context.Context, id int64, in model.UserInput) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.User{}, r.s.Fail
	}
	u, ok := r.s.users[id]
	if !ok {
		return model.User{}, errs.NewNotFoundError(errs.MsgUserNotFound)
	}
	if in.Email.Set && r.emailTaken(in.Email.Value, id) {
		return model.User{}, errs.NewConflictError(errs.MsgEmailTaken, nil)
	}
	if in.Name.Set {
		u.Name = in.Name.Value
	}
	if in.Email.Set {
		u.Email = in.Email.Value
	}
	r.s.users[id] = u
	return u, nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if n := r.s.countSales(func(s model.Sale) bool { return s.UserID == id }); n > 0 {
		return errs.NewBlockedDeleteError(errs.MsgUserHasSales, n)
	}
	if _, ok := r.s.users[id]; !ok {
		return errs.NewNotFoundError(errs.MsgUserNotFound)
	}
	delete(r.s.users, id)
	return nil
}

type ProductRepo struct{ s *Store }

func (r *ProductRepo) List(_ context.Context) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedValues(r.s.products, false), nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.Product{}, r.s.Fail
	}
	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, errs.NewNotFoundError(errs.MsgProductNotFound)
	}
	return p, nil
}

func (r *ProductRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return false, r.s.Fail
	}
	_, ok := r.s.products[id]
	return ok, nil
}

func (r *ProductRepo) skuTaken(sku *string, except int64) bool {
	if sku == nil {
		return false
	}
	for id, p := range r.s.products {
		if id != except && p.SKU != nil && *p.SKU == *sku {
			return true
		}
	}
	return false
}

func (r *ProductRepo) Create(_ context.Context, in model.ProductInput) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.Product{}, r.s.Fail
	}
	if r.skuTaken(in.SKU.Value, 0) {
		return model.Product{}, errs.NewConflictError(errs.MsgSKUTaken, nil)
	}
	p := model.Product{
		ID:        r.s.nextID("products"),
		SKU:       in.SKU.Value,
		Name:      in.Name.Value,
		Price:     in.Price.Value,
		CreatedAt: time.Now(),
	}
	r.s.products[p.ID] = p
	return p, nil
}

func (r *ProductRepo) Update(_ context.Context, id int64, in model.ProductInput) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.Product{}, r.s.Fail
	}
	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, errs.NewNotFoundError(errs.MsgProductNotFound)
	}
	if in.SKU.Set && r.skuTaken(in.SKU.Value, id) {
		return model.Product{}, errs.NewConflictError(errs.MsgSKUTaken, nil)
	}
	if in.SKU.Set {
		p.SKU = in.SKU.Value
	}
	if in.Name.Set {
		p.Name = in.Name.Value
	}
	if in.Price.Set {
		p.Price = in.Price.Value
	}
	r.s.products[id] = p
	return p, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if n := r.s.countSales(func(s model.Sale) bool { return s.ProductID == id }); n > 0 {
		return errs.NewBlockedDeleteError(errs.MsgProductHasSales, n)
	}
	if _, ok := r.s.products[id]; !ok {
		return errs.NewNotFoundError(errs.MsgProductNotFound)
	}
	delete(r.s.products, id)
	return nil
}

type SaleRepo struct{ s *Store }

// join fills the user and product columns the way the SQL join does.
func (r *SaleRepo) join(sale model.Sale) model.Sale {
	u := r.s.users[sale.UserID]
	p := r.s.products[sale.ProductID]
	sale.UserName, sale.UserEmail = u.Name, u.Email
	sale.SKU, sale.ProductName = p.SKU, p.Name
	sale.Total = sale.UnitPrice.Mul(decimal.NewFromInt(int64(sale.Quantity)))
	return sale
}

func (r *SaleRepo) List(_ context.Context) ([]model.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	all := sortedValues(r.s.sales, true)
	if len(all) > 100 {
		all = all[:100]
	}
	for i := range all {
		all[i] = r.join(all[i])
	}
	return all, nil
}

func (r *SaleRepo) GetByID(_ context.Context, id int64) (model.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.Sale{}, r.s.Fail
	}
	sale, ok := r.s.sales[id]
	if !ok {
		return model.Sale{}, errs.NewNotFoundError(errs.MsgSaleNotFound)
	}
	return r.join(sale), nil
}

func (r *SaleRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return false, r.s.Fail
	}
	_, ok := r.s.sales[id]
	return ok, nil
}

func (r *SaleRepo) checkRefs(userID, productID int64) error {
	if _, ok := r.s.users[userID]; !ok {
		return errs.NewNotFoundError(errs.MsgUserNotFound)
	}
	if _, ok := r.s.products[productID]; !ok {
		return errs.NewNotFoundError(errs.MsgProductNotFound)
	}
	return nil
}

func (r *SaleRepo) Create(_ context.Context, in model.SaleInput) (model.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.Sale{}, r.s.Fail
	}
	if err := r.checkRefs(in.UserID.Value, in.ProductID.Value); err != nil {
		return model.Sale{}, err
	}
	price := r.s.products[in.ProductID.Value].Price
	if in.UnitPrice.Set {
		price = in.UnitPrice.Value
	}
	sale := model.Sale{
		ID:        r.s.nextID("sales"),
		UserID:    in.UserID.Value,
		ProductID: in.ProductID.Value,
		Quantity:  in.Quantity.Value,
		UnitPrice: price,
		CreatedAt: time.Now(),
	}
	r.s.sales[sale.ID] = sale
	return r.join(sale), nil
}

func (r *SaleRepo) Update(_ context.Context, id int64, in model.SaleInput) (model.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return model.Sale{}, r.s.Fail
	}
	sale, ok := r.s.sales[id]
	if !ok {
		return model.Sale{}, errs.NewNotFoundError(errs.MsgSaleNotFound)
	}
	if in.UserID.Set {
		sale.UserID = in.UserID.Value
	}
	if in.ProductID.Set {
		sale.ProductID = in.ProductID.Value
	}
	if in.Quantity.Set {
		sale.Quantity = in.Quantity.Value
	}
	if in.UnitPrice.Set {
		sale.UnitPrice = in.UnitPrice.Value
	}
	if err := r.checkRefs(sale.UserID, sale.ProductID); err != nil {
		return model.Sale{}, err
	}
	r.s.sales[id] = sale
	return r.join(sale), nil
}

func (r *SaleRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	if _, ok := r.s.sales[id]; !ok {
		return errs.NewNotFoundError(errs.MsgSaleNotFound)
	}
	delete(r.s.sales, id)
	return nil
}

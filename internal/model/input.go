package model

import "github.com/shopspring/decimal"

// Optional is a value that is either present or absent. Absent fields of an
// input keep their stored value on update.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Ptr returns a pointer to the value, or nil when absent. Repositories bind
// it directly as a statement argument so that absent means SQL NULL.
func (o Optional[T]) Ptr() *T {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

type UserInput struct {
	Name  Optional[string]
	Email Optional[string]
}

func (in UserInput) Empty() bool {
	return !in.Name.Set && !in.Email.Set
}

// ProductInput carries a normalised product write. SKU.Value is nil when the
// caller sent a blank sku, which clears it.
type ProductInput struct {
	SKU   Optional[*string]
	Name  Optional[string]
	Price Optional[decimal.Decimal]
}

func (in ProductInput) Empty() bool {
	return !in.SKU.Set && !in.Name.Set && !in.Price.Set
}

type SaleInput struct {
	UserID    Optional[int64]
	ProductID Optional[int64]
	Quantity  Optional[int]
	UnitPrice Optional[decimal.Decimal]
}

func (in SaleInput) Empty() bool {
	return !in.UserID.Set && !in.ProductID.Set && !in.Quantity.Set && !in.UnitPrice.Set
}

// Package validation checks request input per entity and operation.
//
// Create validators require every mandatory field. Update validators treat
// all fields as optional but apply the same rules to whatever is supplied.
// Nothing here touches storage.
package validation

import (
	"strings"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const minSKULength = 3

// Money columns are NUMERIC(12,2).
const moneyScale = 2

var maxMoney = decimal.New(1, 10)

var validate = validator.New()

func UserCreate(p Payload) (model.UserInput, error) {
	var in model.UserInput

	name, ok := p.String("name")
	if !ok || name == "" {
		return in, errs.NewValidationError(errs.MsgUserNameRequired)
	}
	in.Name = model.Some(name)

	email, ok := p.String("email")
	if !ok || email == "" {
		return in, errs.NewValidationError(errs.MsgEmailRequired)
	}
	if !isEmail(email) {
		return in, errs.NewValidationError(errs.MsgEmailInvalid)
	}
	in.Email = model.Some(strings.ToLower(email))

	return in, nil
}

func UserUpdate(p Payload) (model.UserInput, error) {
	var in model.UserInput

	if p.Has("name") {
		name, ok := p.String("name")
		if !ok || name == "" {
			return in, errs.NewValidationError(errs.MsgUserNameEmpty)
		}
		in.Name = model.Some(name)
	}

	if p.Has("email") {
		email, ok := p.String("email")
		if !ok || email == "" {
			return in, errs.NewValidationError(errs.MsgEmailEmpty)
		}
		if !isEmail(email) {
			return in, errs.NewValidationError(errs.MsgEmailInvalid)
		}
		in.Email = model.Some(strings.ToLower(email))
	}

	return in, nil
}

func ProductCreate(p Payload) (model.ProductInput, error) {
	var in model.ProductInput

	name, ok := p.String("name")
	if !ok || name == "" {
		return in, errs.NewValidationError(errs.MsgProductNameRequired)
	}
	in.Name = model.Some(name)

	price, err := money(p, "price", errs.MsgPriceInvalid)
	if err != nil {
		return in, err
	}
	in.Price = model.Some(price)

	sku, err := productSKU(p)
	if err != nil {
		return in, err
	}
	// a product created without sku stores NULL
	if !sku.Set {
		sku = model.Some[*string](nil)
	}
	in.SKU = sku

	return in, nil
}

func ProductUpdate(p Payload) (model.ProductInput, error) {
	var in model.ProductInput

	if p.Has("name") {
		name, ok := p.String("name")
		if !ok || name == "" {
			return in, errs.NewValidationError(errs.MsgProductNameEmpty)
		}
		in.Name = model.Some(name)
	}

	if p.Has("price") {
		price, err := money(p, "price", errs.MsgPriceInvalid)
		if err != nil {
			return in, err
		}
		in.Price = model.Some(price)
	}

	sku, err := productSKU(p)
	if err != nil {
		return in, err
	}
	in.SKU = sku

	return in, nil
}

// productSKU normalises the optional sku: blank means NULL, otherwise it must
// be at least minSKULength characters after trimming.
func productSKU(p Payload) (model.Optional[*string], error) {
	if !p.Has("sku") {
		return model.Optional[*string]{}, nil
	}

	sku, ok := p.String("sku")
	if !ok {
		return model.Optional[*string]{}, errs.NewValidationError(errs.MsgSKUTooShort)
	}
	if sku == "" {
		return model.Some[*string](nil), nil
	}
	if len([]rune(sku)) < minSKULength {
		return model.Optional[*string]{}, errs.NewValidationError(errs.MsgSKUTooShort)
	}
	return model.Some(&sku), nil
}

func SaleCreate(p Payload) (model.SaleInput, error) {
	var in model.SaleInput

	userID, ok := p.PositiveInt("user_id")
	if !ok {
		return in, errs.NewValidationError(errs.MsgInvalidUserID)
	}
	in.UserID = model.Some(userID)

	productID, ok := p.PositiveInt("product_id")
	if !ok {
		return in, errs.NewValidationError(errs.MsgInvalidProductID)
	}
	in.ProductID = model.Some(productID)

	quantity, ok := p.PositiveInt("quantity")
	if !ok {
		return in, errs.NewValidationError(errs.MsgQuantityInvalid)
	}
	in.Quantity = model.Some(int(quantity))

	if p.Has("unit_price") {
		price, err := money(p, "unit_price", errs.MsgUnitPriceInvalid)
		if err != nil {
			return in, err
		}
		in.UnitPrice = model.Some(price)
	}

	return in, nil
}

func SaleUpdate(p Payload) (model.SaleInput, error) {
	var in model.SaleInput

	if p.Has("user_id") {
		userID, ok := p.PositiveInt("user_id")
		if !ok {
			return in, errs.NewValidationError(errs.MsgInvalidUserID)
		}
		in.UserID = model.Some(userID)
	}

	if p.Has("product_id") {
		productID, ok := p.PositiveInt("product_id")
		if !ok {
			return in, errs.NewValidationError(errs.MsgInvalidProductID)
		}
		in.ProductID = model.Some(productID)
	}

	if p.Has("quantity") {
		quantity, ok := p.PositiveInt("quantity")
		if !ok {
			return in, errs.NewValidationError(errs.MsgQuantityInvalid)
		}
		in.Quantity = model.Some(int(quantity))
	}

	if p.Has("unit_price") {
		price, err := money(p, "unit_price", errs.MsgUnitPriceInvalid)
		if err != nil {
			return in, err
		}
		in.UnitPrice = model.Some(price)
	}

	return in, nil
}

// money reads a non-negative amount rounded to cents. invalid is reported for
// anything that is not such a number.
func money(p Payload, key, invalid string) (decimal.Decimal, error) {
	amount, ok := p.Number(key)
	if !ok || amount.IsNegative() {
		return decimal.Decimal{}, errs.NewValidationError(invalid)
	}
	amount = amount.Round(moneyScale)
	if amount.GreaterThanOrEqual(maxMoney) {
		return decimal.Decimal{}, errs.NewValidationError(errs.MsgAmountTooLarge)
	}
	return amount, nil
}

func isEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

package validation

import (
	"net/http"
	"strings"
	"testing"

	"fsanano/store-api/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, body string) Payload {
	t.Helper()
	p, err := DecodePayload(strings.NewReader(body))
	require.NoError(t, err)
	return p
}

func assertValidation(t *testing.T, err error, message string) {
	t.Helper()
	e, ok := errs.As(err)
	require.True(t, ok, "expected *errs.Error, got %v", err)
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, message, e.Message)
}

func TestDecodePayload(t *testing.T) {
	p, err := DecodePayload(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p)

	p, err = DecodePayload(strings.NewReader("null"))
	require.NoError(t, err)
	assert.Empty(t, p)

	for _, body := range []string{`{"name":`, `[1,2]`, `"text"`, `{"name":"a"} garbage`, `{"a":1}{"b":2}`} {
		_, err := DecodePayload(strings.NewReader(body))
		assertValidation(t, err, errs.MsgInvalidBody)
	}
}

func TestPayloadAccessors(t *testing.T) {
	p := payload(t, `{"a":null,"b":" x ","c":"12.50","d":7,"e":"seven","f":3.0,"g":2.5,"h":-1}`)

	assert.False(t, p.Has("a"))
	assert.False(t, p.Has("missing"))

	s, ok := p.String("b")
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	_, ok = p.String("d")
	assert.False(t, ok, "numbers are not strings")

	n, ok := p.Number("c")
	assert.True(t, ok)
	assert.Equal(t, "12.5", n.String())
	_, ok = p.Number("e")
	assert.False(t, ok)

	i, ok := p.PositiveInt("d")
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)
	i, ok = p.PositiveInt("f")
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)
	_, ok = p.PositiveInt("g")
	assert.False(t, ok)
	_, ok = p.PositiveInt("h")
	assert.False(t, ok)
}

func TestNumberBounds(t *testing.T) {
	p := payload(t, `{
		"huge": 1e1000000000,
		"tiny": 1e-1000000000,
		"huge_text": "1e1000000000",
		"long": 1234567890123456789012345678901234567890123,
		"edge": 1e20
	}`)

	for _, key := range []string{"huge", "tiny", "huge_text", "long"} {
		t.Run(key, func(t *testing.T) {
			_, ok := p.Number(key)
			assert.False(t, ok)
			_, ok = p.PositiveInt(key)
			assert.False(t, ok)
		})
	}

	_, ok := p.Number("edge")
	assert.True(t, ok)
	_, ok = p.PositiveInt("edge")
	assert.False(t, ok, "beyond INTEGER")
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42", errs.MsgInvalidSaleID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1e3", "99999999999"} {
		_, err := ParseID(raw, errs.MsgInvalidSaleID)
		assertValidation(t, err, errs.MsgInvalidSaleID)
	}
}

func TestUserCreate(t *testing.T) {
	in, err := UserCreate(payload(t, `{"name":" Ana ","email":" ANA@x.com "}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana", in.Name.Value)
	assert.Equal(t, "ana@x.com", in.Email.Value)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"email":"a@x.com"}`, errs.MsgUserNameRequired},
		{"blank name", `{"name":"   ","email":"a@x.com"}`, errs.MsgUserNameRequired},
		{"missing email", `{"name":"Ana"}`, errs.MsgEmailRequired},
		{"bad email", `{"name":"Ana","email":"ana@"}`, errs.MsgEmailInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UserCreate(payload(t, tt.body))
			assertValidation(t, err, tt.message)
		})
	}
}

func TestUserUpdate(t *testing.T) {
	in, err := UserUpdate(payload(t, `{}`))
	require.NoError(t, err)
	assert.True(t, in.Empty())

	in, err = UserUpdate(payload(t, `{"email":"B@X.COM","name":null}`))
	require.NoError(t, err)
	assert.False(t, in.Name.Set)
	assert.Equal(t, "b@x.com", in.Email.Value)

	_, err = UserUpdate(payload(t, `{"name":""}`))
	assertValidation(t, err, errs.MsgUserNameEmpty)

	_, err = UserUpdate(payload(t, `{"email":" "}`))
	assertValidation(t, err, errs.MsgEmailEmpty)
}

func TestProductCreate(t *testing.T) {
	in, err := ProductCreate(payload(t, `{"name":"Widget","price":"0"}`))
	require.NoError(t, err)
	assert.True(t, in.SKU.Set)
	assert.Nil(t, in.SKU.Value, "absent sku is stored as NULL")
	assert.True(t, in.Price.Value.IsZero())

	in, err = ProductCreate(payload(t, `{"name":"Widget","price":"9999999999.99"}`))
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", in.Price.Value.String())

	in, err = ProductCreate(payload(t, `{"name":"Widget","price":10.005}`))
	require.NoError(t, err)
	assert.Equal(t, "10.01", in.Price.Value.String(), "prices are rounded to cents")

	in, err = ProductCreate(payload(t, `{"name":"Widget","price":9.99,"sku":" AB-1 "}`))
	require.NoError(t, err)
	require.NotNil(t, in.SKU.Value)
	assert.Equal(t, "AB-1", *in.SKU.Value)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"price":1}`, errs.MsgProductNameRequired},
		{"missing price", `{"name":"Widget"}`, errs.MsgPriceInvalid},
		{"negative price", `{"name":"Widget","price":-1}`, errs.MsgPriceInvalid},
		{"text price", `{"name":"Widget","price":"cheap"}`, errs.MsgPriceInvalid},
		{"short sku", `{"name":"Widget","price":1,"sku":" ab "}`, errs.MsgSKUTooShort},
		{"price too large", `{"name":"Widget","price":1e10}`, errs.MsgAmountTooLarge},
		{"price rounds past the limit", `{"name":"Widget","price":"9999999999.999"}`, errs.MsgAmountTooLarge},
		{"price with huge exponent", `{"name":"Widget","price":1e1000000000}`, errs.MsgPriceInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProductCreate(payload(t, tt.body))
			assertValidation(t, err, tt.message)
		})
	}
}

func TestProductUpdate(t *testing.T) {
	in, err := ProductUpdate(payload(t, `{"price":5}`))
	require.NoError(t, err)
	assert.False(t, in.SKU.Set)
	assert.False(t, in.Name.Set)
	assert.True(t, in.Price.Set)

	in, err = ProductUpdate(payload(t, `{"sku":""}`))
	require.NoError(t, err)
	assert.True(t, in.SKU.Set)
	assert.Nil(t, in.SKU.Value, "blank sku clears it")

	_, err = ProductUpdate(payload(t, `{"name":" "}`))
	assertValidation(t, err, errs.MsgProductNameEmpty)
}

func TestSaleCreate(t *testing.T) {
	in, err := SaleCreate(payload(t, `{"user_id":1,"product_id":"2","quantity":3}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), in.UserID.Value)
	assert.Equal(t, int64(2), in.ProductID.Value)
	assert.Equal(t, 3, in.Quantity.Value)
	assert.False(t, in.UnitPrice.Set)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing user", `{"product_id":1,"quantity":1}`, errs.MsgInvalidUserID},
		{"zero product", `{"user_id":1,"product_id":0,"quantity":1}`, errs.MsgInvalidProductID},
		{"zero quantity", `{"user_id":1,"product_id":1,"quantity":0}`, errs.MsgQuantityInvalid},
		{"negative unit price", `{"user_id":1,"product_id":1,"quantity":1,"unit_price":-0.01}`, errs.MsgUnitPriceInvalid},
		{"quantity with huge exponent", `{"user_id":1,"product_id":1,"quantity":1e1000000000}`, errs.MsgQuantityInvalid},
		{"quantity with tiny exponent", `{"user_id":1,"product_id":1,"quantity":1e-1000000000}`, errs.MsgQuantityInvalid},
		{"quantity beyond integer", `{"user_id":1,"product_id":1,"quantity":2147483648}`, errs.MsgQuantityInvalid},
		{"unit price with huge exponent", `{"user_id":1,"product_id":1,"quantity":1,"unit_price":1e1000000000}`, errs.MsgUnitPriceInvalid},
		{"unit price too large", `{"user_id":1,"product_id":1,"quantity":1,"unit_price":"12345678901"}`, errs.MsgAmountTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SaleCreate(payload(t, tt.body))
			assertValidation(t, err, tt.message)
		})
	}
}

func TestSaleUpdate(t *testing.T) {
	in, err := SaleUpdate(payload(t, `{"unit_price":"0"}`))
	require.NoError(t, err)
	assert.True(t, in.UnitPrice.Set)
	assert.False(t, in.Quantity.Set)

	_, err = SaleUpdate(payload(t, `{"quantity":"abc"}`))
	assertValidation(t, err, errs.MsgQuantityInvalid)

	_, err = SaleUpdate(payload(t, `{"user_id":-4}`))
	assertValidation(t, err, errs.MsgInvalidUserID)
}

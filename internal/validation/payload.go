package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"fsanano/store-api/internal/errs"

	"github.com/shopspring/decimal"
)

// Payload is a decoded JSON object body, kept raw so that validators can tell
// an absent field from a present one and report type errors per field.
type Payload map[string]json.RawMessage

// DecodePayload reads a JSON object from r. An empty body is an empty payload.
func DecodePayload(r io.Reader) (Payload, error) {
	p := Payload{}
	if r == nil {
		return p, nil
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Payload{}, nil
		}
		return nil, errs.NewValidationError(errs.MsgInvalidBody)
	}
	// exactly one JSON value per body
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errs.NewValidationError(errs.MsgInvalidBody)
	}
	if p == nil {
		// body was the literal null
		p = Payload{}
	}
	return p, nil
}

// Has reports whether key is present with a non-null value.
func (p Payload) Has(key string) bool {
	raw, ok := p[key]
	if !ok {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// String returns the trimmed string under key. ok is false when the value is
// absent or not a JSON string.
func (p Payload) String(key string) (string, bool) {
	if !p.Has(key) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(p[key], &s); err != nil {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Number returns the value under key as a decimal. JSON numbers and numeric
// strings are both accepted. Values longer than maxNumberLength or with an
// exponent beyond maxExponent are rejected before any arithmetic runs on them.
func (p Payload) Number(key string) (decimal.Decimal, bool) {
	if !p.Has(key) {
		return decimal.Decimal{}, false
	}

	text := string(bytes.TrimSpace(p[key]))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(p[key], &s); err != nil {
			return decimal.Decimal{}, false
		}
		text = strings.TrimSpace(s)
	}

	if len(text) > maxNumberLength {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil || d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
		return decimal.Decimal{}, false
	}
	return d, true
}

// PositiveInt returns the value under key when it is an integral number
// greater than zero.
func (p Payload) PositiveInt(key string) (int64, bool) {
	d, ok := p.Number(key)
	if !ok || !d.IsInteger() || !d.IsPositive() {
		return 0, false
	}
	if d.GreaterThan(decimal.NewFromInt(maxInt32)) {
		return 0, false
	}
	return d.IntPart(), true
}

// ParseID parses a path identifier. Anything that is not a positive integer
// yields a validation error carrying message.
func ParseID(raw, message string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || id <= 0 {
		return 0, errs.NewValidationError(message)
	}
	return id, nil
}

const (
	// ids and quantities are stored as INTEGER columns
	maxInt32 = 1<<31 - 1

	maxNumberLength = 40
	maxExponent     = 20
)

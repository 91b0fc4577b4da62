package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID        int64           `json:"id"`
	SKU       *string         `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// Sale is returned joined with the names of its user and product.
type Sale struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	ProductID   int64           `json:"product_id"`
	UserName    string          `json:"user_name"`
	UserEmail   string          `json:"user_email"`
	SKU         *string         `json:"sku"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

package domain

import "github.com/shopspring/decimal"

// Drink is a stocked drink type within a house. PricePerUnit is kept as a
// decimal because the server serialises money fields as strings and repeated
// float additions would drift.
type Drink struct {
	ID                int64           `json:"id"`
	House             int64           `json:"house"`
	Name              string          `json:"name"`
	PricePerUnit      decimal.Decimal `json:"price_per_unit"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	CurrentStock      int             `json:"current_stock"`
	IsLowStock        bool            `json:"is_low_stock"`
}

// LowStock reports whether the drink is at or below its threshold. The
// server sends the same derivation as is_low_stock; this recomputes it for
// locally modified copies.
func (d Drink) LowStock() bool {
	return d.CurrentStock <= d.LowStockThreshold
}

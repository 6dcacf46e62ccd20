package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// House is a shared household. The server enforces the member limit; the
// client treats Members as read-only.
type House struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	Members    []User    `json:"members"`
	DrinkTypes []Drink   `json:"drink_types"`
}

// DrinkShare is one drink line inside a member's debt breakdown.
type DrinkShare struct {
	DrinkName string          `json:"drink_type__name"`
	Quantity  int             `json:"quantity"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// MemberDebt is the per-member ledger entry computed server-side.
type MemberDebt struct {
	UserID         int64           `json:"user_id"`
	UserName       string          `json:"user_name"`
	TotalOwed      decimal.Decimal `json:"total_owed"`
	DrinkBreakdown []DrinkShare    `json:"drink_breakdown"`
}

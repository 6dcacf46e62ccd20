package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumption is one logged drink withdrawal. Records are immutable once
// fetched; the server owns them and computes Cost at creation time.
type Consumption struct {
	ID        int64           `json:"id"`
	House     int64           `json:"house"`
	UserID    int64           `json:"user"`
	UserName  string          `json:"user_name"`
	DrinkID   int64           `json:"drink_type"`
	DrinkName string          `json:"drink_name"`
	Quantity  int             `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	Timestamp time.Time       `json:"timestamp"`
}

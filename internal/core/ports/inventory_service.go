package ports

import (
	"context"

	"github.com/hausbar/drinkwise/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDrinkInput carries the fields for stocking a new drink type.
type CreateDrinkInput struct {
	House             int64           `json:"house" validate:"required,gt=0"`
	Name              string          `json:"name" validate:"required,max=50"`
	PricePerUnit      decimal.Decimal `json:"price_per_unit"`
	LowStockThreshold int             `json:"low_stock_threshold" validate:"gte=0"`
	CurrentStock      int             `json:"current_stock" validate:"gte=0"`
}

// UpdateDrinkInput is a partial update; nil fields are left untouched
// (PATCH semantics, omitted from the JSON body).
type UpdateDrinkInput struct {
	Name              *string          `json:"name,omitempty" validate:"omitempty,max=50"`
	PricePerUnit      *decimal.Decimal `json:"price_per_unit,omitempty"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty" validate:"omitempty,gte=0"`
	CurrentStock      *int             `json:"current_stock,omitempty" validate:"omitempty,gte=0"`
}

// LogConsumptionInput records a withdrawal. Cost is computed server-side.
type LogConsumptionInput struct {
	House    int64 `json:"house" validate:"required,gt=0"`
	DrinkID  int64 `json:"drink_type" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

// InventoryService exposes drink and consumption operations.
type InventoryService interface {
	Drinks(ctx context.Context) ([]domain.Drink, error)
	CreateDrink(ctx context.Context, input CreateDrinkInput) (*domain.Drink, error)
	UpdateDrink(ctx context.Context, drinkID int64, input UpdateDrinkInput) (*domain.Drink, error)
	DeleteDrink(ctx context.Context, drinkID int64) error
	// Restock adds quantity units of stock and returns the updated drink.
	Restock(ctx context.Context, drinkID int64, quantity int) (*domain.Drink, error)
	// LogConsumption posts a withdrawal; the server decrements stock and
	// prices the record.
	LogConsumption(ctx context.Context, input LogConsumptionInput) (*domain.Consumption, error)
	// RecentConsumptions returns the latest records across the caller's
	// houses (server caps the result at 50).
	RecentConsumptions(ctx context.Context) ([]domain.Consumption, error)
}

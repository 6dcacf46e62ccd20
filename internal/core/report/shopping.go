package report

import (
	"github.com/shopspring/decimal"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// DefaultRestockBatch is the quantity added on top of the threshold gap per
// suggestion, matching the typical crate size.
const DefaultRestockBatch = 6

// ReplenishmentLine is one advisory shopping-list entry. Derived, never
// persisted.
type ReplenishmentLine struct {
	DrinkID        int64
	Name           string
	CurrentStock   int
	NeededQuantity int
	EstimatedCost  decimal.Decimal
}

// ShoppingEstimate is the full advisory shopping list with its decimal
// grand total.
type ShoppingEstimate struct {
	Lines     []ReplenishmentLine
	TotalCost decimal.Decimal
}

// EstimateReplenishment computes what to buy for every drink at or below
// its low-stock threshold: needed = threshold - stock + batch, costed at
// price_per_unit. Drinks above threshold are excluded entirely rather than
// listed with zero need. A batch <= 0 falls back to DefaultRestockBatch.
// Stock is never mutated; the estimate is advisory.
func EstimateReplenishment(drinks []domain.Drink, batch int) ShoppingEstimate {
	if batch <= 0 {
		batch = DefaultRestockBatch
	}

	estimate := ShoppingEstimate{}
	for _, d := range drinks {
		if !d.LowStock() {
			continue
		}
		needed := d.LowStockThreshold - d.CurrentStock + batch
		cost := d.PricePerUnit.Mul(decimal.NewFromInt(int64(needed)))
		estimate.Lines = append(estimate.Lines, ReplenishmentLine{
			DrinkID:        d.ID,
			Name:           d.Name,
			CurrentStock:   d.CurrentStock,
			NeededQuantity: needed,
			EstimatedCost:  cost,
		})
		estimate.TotalCost = estimate.TotalCost.Add(cost)
	}
	return estimate
}

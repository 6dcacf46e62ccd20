package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

func drink(id int64, name string, stock, threshold int, price string) domain.Drink {
	return domain.Drink{
		ID:                id,
		Name:              name,
		CurrentStock:      stock,
		LowStockThreshold: threshold,
		PricePerUnit:      decimal.RequireFromString(price),
	}
}

func TestEstimateReplenishment_BelowThreshold(t *testing.T) {
	drinks := []domain.Drink{drink(1, "Pils", 2, 6, "2.50")}

	estimate := EstimateReplenishment(drinks, 6)

	require.Len(t, estimate.Lines, 1)
	line := estimate.Lines[0]
	assert.Equal(t, 10, line.NeededQuantity)
	assert.Equal(t, "25.00", line.EstimatedCost.StringFixed(2))
	assert.Equal(t, "25.00", estimate.TotalCost.StringFixed(2))
}

func TestEstimateReplenishment_AboveThresholdExcludedEntirely(t *testing.T) {
	drinks := []domain.Drink{drink(1, "Mate", 10, 6, "1.20")}

	estimate := EstimateReplenishment(drinks, 6)

	assert.Empty(t, estimate.Lines)
	assert.Equal(t, "0.00", estimate.TotalCost.StringFixed(2))
}

func TestEstimateReplenishment_AtThresholdIncluded(t *testing.T) {
	drinks := []domain.Drink{drink(1, "Cola", 6, 6, "1.00")}

	estimate := EstimateReplenishment(drinks, 6)

	require.Len(t, estimate.Lines, 1)
	assert.Equal(t, 6, estimate.Lines[0].NeededQuantity)
}

func TestEstimateReplenishment_DefaultBatch(t *testing.T) {
	drinks := []domain.Drink{drink(1, "Pils", 2, 6, "2.50")}

	estimate := EstimateReplenishment(drinks, 0)

	require.Len(t, estimate.Lines, 1)
	assert.Equal(t, 10, estimate.Lines[0].NeededQuantity)
}

func TestEstimateReplenishment_TotalsAcrossDrinks(t *testing.T) {
	drinks := []domain.Drink{
		drink(1, "Pils", 2, 6, "2.50"),   // needed 10 → 25.00
		drink(2, "Mate", 10, 6, "1.20"),  // excluded
		drink(3, "Water", 0, 3, "0.75"),  // needed 9 → 6.75
	}

	estimate := EstimateReplenishment(drinks, 6)

	require.Len(t, estimate.Lines, 2)
	assert.Equal(t, "31.75", estimate.TotalCost.StringFixed(2))
}

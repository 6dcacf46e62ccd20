// Package report holds the derived views the client computes locally from
// data it has already fetched: time-windowed consumption summaries and the
// shopping-list replenishment estimate. Everything here is pure; no network
// and no mutation of the inputs.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// FilterByWindow returns the records whose timestamps fall inside the
// window relative to now. The result is a fresh slice preserving the input
// order; the input is never modified.
func FilterByWindow(records []domain.Consumption, window domain.TimeWindow, now time.Time) []domain.Consumption {
	filtered := make([]domain.Consumption, 0, len(records))
	for _, r := range records {
		if window.Contains(r.Timestamp, now) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ConsumptionSummary aggregates a record sequence. TotalCost is a decimal
// sum; rounding to two places is a presentation concern.
type ConsumptionSummary struct {
	Count         int
	TotalQuantity int
	TotalCost     decimal.Decimal
}

// Summarize computes count, quantity and cost totals over records.
func Summarize(records []domain.Consumption) ConsumptionSummary {
	summary := ConsumptionSummary{Count: len(records)}
	for _, r := range records {
		summary.TotalQuantity += r.Quantity
		summary.TotalCost = summary.TotalCost.Add(r.Cost)
	}
	return summary
}

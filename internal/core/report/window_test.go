package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

func record(id int64, ts time.Time, quantity int, cost string) domain.Consumption {
	return domain.Consumption{
		ID:        id,
		Quantity:  quantity,
		Cost:      decimal.RequireFromString(cost),
		Timestamp: ts,
	}
}

func TestFilterByWindow_Today(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	records := []domain.Consumption{
		record(1, now.Add(-time.Hour), 1, "1.50"),
		record(2, now.Add(-25*time.Hour), 2, "3.00"),
	}

	filtered := FilterByWindow(records, domain.WindowToday, now)

	require.Len(t, filtered, 1)
	assert.EqualValues(t, 1, filtered[0].ID)
}

func TestFilterByWindow_TodayUsesCalendarDateNotElapsedTime(t *testing.T) {
	// 00:30: a record from one hour ago is yesterday even though it is
	// well within 24h.
	now := time.Date(2026, 8, 29, 0, 30, 0, 0, time.UTC)
	records := []domain.Consumption{record(1, now.Add(-time.Hour), 1, "1.00")}

	assert.Empty(t, FilterByWindow(records, domain.WindowToday, now))
}

func TestFilterByWindow_Last7Days(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	records := []domain.Consumption{
		record(1, now.Add(-6*24*time.Hour), 1, "1.00"),
		record(2, now.Add(-8*24*time.Hour), 1, "1.00"),
		record(3, now, 1, "1.00"),
	}

	filtered := FilterByWindow(records, domain.WindowLast7Days, now)

	require.Len(t, filtered, 2)
	assert.EqualValues(t, 1, filtered[0].ID)
	assert.EqualValues(t, 3, filtered[1].ID, "input order must be preserved")
}

func TestFilterByWindow_Idempotent(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	records := []domain.Consumption{
		record(1, now.Add(-time.Hour), 1, "1.00"),
		record(2, now.Add(-10*24*time.Hour), 1, "1.00"),
		record(3, now.Add(-3*24*time.Hour), 1, "1.00"),
	}

	once := FilterByWindow(records, domain.WindowLast7Days, now)
	twice := FilterByWindow(once, domain.WindowLast7Days, now)

	assert.Equal(t, once, twice)
}

func TestFilterByWindow_AllIsIdentityAndDoesNotMutate(t *testing.T) {
	now := time.Now()
	records := []domain.Consumption{
		record(2, now.Add(-time.Hour), 1, "1.00"),
		record(1, now.Add(-50*24*time.Hour), 1, "1.00"),
	}

	filtered := FilterByWindow(records, domain.WindowAll, now)

	assert.Equal(t, records, filtered)
	filtered[0].ID = 99
	assert.EqualValues(t, 2, records[0].ID, "filtering must not alias the input")
}

func TestParseTimeWindow_UnknownFallsBackToAll(t *testing.T) {
	assert.Equal(t, domain.WindowAll, domain.ParseTimeWindow("yesterday"))
	assert.Equal(t, domain.WindowToday, domain.ParseTimeWindow("today"))
}

func TestSummarize_DecimalSumsDoNotDrift(t *testing.T) {
	now := time.Now()
	records := make([]domain.Consumption, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, record(int64(i), now, 1, "0.10"))
	}

	summary := Summarize(records)

	assert.Equal(t, 10, summary.Count)
	assert.Equal(t, 10, summary.TotalQuantity)
	assert.Equal(t, "1.00", summary.TotalCost.StringFixed(2))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.TotalQuantity)
	assert.Equal(t, "0.00", summary.TotalCost.StringFixed(2))
}

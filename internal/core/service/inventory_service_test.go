package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausbar/drinkwise/internal/core/domain"
	"github.com/hausbar/drinkwise/internal/core/ports"
)

func TestInventoryService_Restock_RejectsNonPositiveQuantity(t *testing.T) {
	api := &stubRequester{}
	svc := NewInventoryService(api, zerolog.Nop())

	for _, quantity := range []int{0, -3} {
		_, err := svc.Restock(context.Background(), 1, quantity)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, api.calls)
}

func TestInventoryService_Restock_PostsQuantity(t *testing.T) {
	api := &stubRequester{fn: func(call ports.Call, out any) error {
		respondJSON(t, out, domain.Drink{ID: 4, Name: "Pils", CurrentStock: 18})
		return nil
	}}
	svc := NewInventoryService(api, zerolog.Nop())

	drink, err := svc.Restock(context.Background(), 4, 6)

	require.NoError(t, err)
	assert.Equal(t, 18, drink.CurrentStock)
	require.Len(t, api.calls, 1)
	assert.Equal(t, http.MethodPost, api.calls[0].Method)
	assert.Equal(t, "/drinks/4/restock/", api.calls[0].Path)
	assert.Equal(t, map[string]int{"quantity": 6}, api.calls[0].Body)
}

func TestInventoryService_LogConsumption_ValidatesBeforeDispatch(t *testing.T) {
	api := &stubRequester{}
	svc := NewInventoryService(api, zerolog.Nop())

	_, err := svc.LogConsumption(context.Background(), ports.LogConsumptionInput{House: 1, DrinkID: 2, Quantity: 0})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, api.calls)
}

func TestInventoryService_LogConsumption_ReturnsPricedRecord(t *testing.T) {
	api := &stubRequester{fn: func(call ports.Call, out any) error {
		respondJSON(t, out, map[string]any{
			"id": 11, "house": 1, "drink_type": 2, "drink_name": "Mate",
			"quantity": 2, "cost": "2.40",
		})
		return nil
	}}
	svc := NewInventoryService(api, zerolog.Nop())

	record, err := svc.LogConsumption(context.Background(), ports.LogConsumptionInput{House: 1, DrinkID: 2, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, "2.40", record.Cost.StringFixed(2))
	require.Len(t, api.calls, 1)
	assert.Equal(t, "/consumptions/", api.calls[0].Path)
	assert.False(t, api.calls[0].SkipAuth)
}

func TestInventoryService_CreateDrink_RejectsNegativePrice(t *testing.T) {
	api := &stubRequester{}
	svc := NewInventoryService(api, zerolog.Nop())

	_, err := svc.CreateDrink(context.Background(), ports.CreateDrinkInput{
		House:        1,
		Name:         "Pils",
		PricePerUnit: decimal.RequireFromString("-1.50"),
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, api.calls)
}

func TestInventoryService_UpdateDrink_PatchesOnlyProvidedFields(t *testing.T) {
	api := &stubRequester{fn: func(call ports.Call, out any) error {
		respondJSON(t, out, domain.Drink{ID: 4, Name: "Helles"})
		return nil
	}}
	svc := NewInventoryService(api, zerolog.Nop())

	name := "Helles"
	drink, err := svc.UpdateDrink(context.Background(), 4, ports.UpdateDrinkInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Helles", drink.Name)
	require.Len(t, api.calls, 1)
	assert.Equal(t, http.MethodPatch, api.calls[0].Method)
	assert.Equal(t, "/drinks/4/", api.calls[0].Path)

	input, ok := api.calls[0].Body.(ports.UpdateDrinkInput)
	require.True(t, ok)
	assert.Nil(t, input.PricePerUnit)
	assert.Nil(t, input.LowStockThreshold)
}

func TestInventoryService_DeleteDrink(t *testing.T) {
	api := &stubRequester{}
	svc := NewInventoryService(api, zerolog.Nop())

	require.NoError(t, svc.DeleteDrink(context.Background(), 9))
	require.Len(t, api.calls, 1)
	assert.Equal(t, http.MethodDelete, api.calls[0].Method)
	assert.Equal(t, "/drinks/9/", api.calls[0].Path)
}

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hausbar/drinkwise/internal/core/domain"
	"github.com/hausbar/drinkwise/internal/core/ports"
)

// InventoryService implements ports.InventoryService: drink CRUD, restock
// and consumption logging. All mutation semantics live server-side; the
// client validates structure only.
type InventoryService struct {
	api    ports.Requester
	logger zerolog.Logger
}

func NewInventoryService(api ports.Requester, logger zerolog.Logger) *InventoryService {
	return &InventoryService{api: api, logger: logger}
}

func (s *InventoryService) Drinks(ctx context.Context) ([]domain.Drink, error) {
	var drinks []domain.Drink
	err := s.api.Do(ctx, ports.Call{Method: http.MethodGet, Path: "/drinks/"}, &drinks)
	return drinks, err
}

func (s *InventoryService) CreateDrink(ctx context.Context, input ports.CreateDrinkInput) (*domain.Drink, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if input.PricePerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: price_per_unit must not be negative", domain.ErrInvalidInput)
	}

	var drink domain.Drink
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodPost,
		Path:   "/drinks/",
		Body:   input,
	}, &drink)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("drink_id", drink.ID).Str("name", drink.Name).Msg("drink created")
	return &drink, nil
}

func (s *InventoryService) UpdateDrink(ctx context.Context, drinkID int64, input ports.UpdateDrinkInput) (*domain.Drink, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if input.PricePerUnit != nil && input.PricePerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: price_per_unit must not be negative", domain.ErrInvalidInput)
	}

	var drink domain.Drink
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/drinks/%d/", drinkID),
		Body:   input,
	}, &drink)
	if err != nil {
		return nil, err
	}
	return &drink, nil
}

func (s *InventoryService) DeleteDrink(ctx context.Context, drinkID int64) error {
	return s.api.Do(ctx, ports.Call{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/drinks/%d/", drinkID),
	}, nil)
}

func (s *InventoryService) Restock(ctx context.Context, drinkID int64, quantity int) (*domain.Drink, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	var drink domain.Drink
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/drinks/%d/restock/", drinkID),
		Body:   map[string]int{"quantity": quantity},
	}, &drink)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("drink_id", drinkID).Int("quantity", quantity).Msg("drink restocked")
	return &drink, nil
}

func (s *InventoryService) LogConsumption(ctx context.Context, input ports.LogConsumptionInput) (*domain.Consumption, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var record domain.Consumption
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodPost,
		Path:   "/consumptions/",
		Body:   input,
	}, &record)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("drink_id", input.DrinkID).
		Int("quantity", input.Quantity).
		Msg("consumption logged")
	return &record, nil
}

func (s *InventoryService) RecentConsumptions(ctx context.Context) ([]domain.Consumption, error) {
	var records []domain.Consumption
	err := s.api.Do(ctx, ports.Call{Method: http.MethodGet, Path: "/consumptions/recent/"}, &records)
	return records, err
}

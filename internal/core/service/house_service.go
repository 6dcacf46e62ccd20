package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/hausbar/drinkwise/internal/core/domain"
	"github.com/hausbar/drinkwise/internal/core/ports"
)

// minSearchLength mirrors the server-side guard: shorter queries would
// return an empty list anyway, so they never leave the client.
const minSearchLength = 2

// HouseService implements ports.HouseService as thin typed wrappers over
// the request pipeline.
type HouseService struct {
	api    ports.Requester
	logger zerolog.Logger
}

func NewHouseService(api ports.Requester, logger zerolog.Logger) *HouseService {
	return &HouseService{api: api, logger: logger}
}

func (s *HouseService) List(ctx context.Context) ([]domain.House, error) {
	var houses []domain.House
	err := s.api.Do(ctx, ports.Call{Method: http.MethodGet, Path: "/houses/"}, &houses)
	return houses, err
}

func (s *HouseService) Create(ctx context.Context, input ports.CreateHouseInput) (*domain.House, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var house domain.House
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodPost,
		Path:   "/houses/",
		Body:   input,
	}, &house)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("house_id", house.ID).Str("name", house.Name).Msg("house created")
	return &house, nil
}

func (s *HouseService) UpdateMembers(ctx context.Context, houseID int64, input ports.UpdateMembersInput) (*domain.House, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var house domain.House
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/houses/%d/", houseID),
		Body:   input,
	}, &house)
	if err != nil {
		return nil, err
	}
	return &house, nil
}

func (s *HouseService) MemberDebts(ctx context.Context, houseID int64) ([]domain.MemberDebt, error) {
	var debts []domain.MemberDebt
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/houses/%d/member_debts/", houseID),
	}, &debts)
	return debts, err
}

func (s *HouseService) ShoppingList(ctx context.Context, houseID int64) ([]domain.Drink, error) {
	var drinks []domain.Drink
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/houses/%d/shopping_list/", houseID),
	}, &drinks)
	return drinks, err
}

func (s *HouseService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	if utf8.RuneCountInString(query) < minSearchLength {
		return nil, nil
	}

	var users []domain.User
	err := s.api.Do(ctx, ports.Call{
		Method: http.MethodGet,
		Path:   "/users/search/",
		Query:  url.Values{"q": []string{query}},
	}, &users)
	return users, err
}

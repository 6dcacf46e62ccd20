package ports

import (
	"context"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// CreateHouseInput carries the fields for creating a house.
type CreateHouseInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateMembersInput replaces a house's member set. The server enforces the
// business rule (max 4 members); the client only checks structure.
type UpdateMembersInput struct {
	MemberIDs []int64 `json:"member_ids" validate:"required,min=1"`
}

// HouseService exposes the house-level operations.
type HouseService interface {
	List(ctx context.Context) ([]domain.House, error)
	Create(ctx context.Context, input CreateHouseInput) (*domain.House, error)
	// UpdateMembers patches the member list (invite/remove flows).
	UpdateMembers(ctx context.Context, houseID int64, input UpdateMembersInput) (*domain.House, error)
	// MemberDebts returns the server-computed per-member ledger.
	MemberDebts(ctx context.Context, houseID int64) ([]domain.MemberDebt, error)
	// ShoppingList returns the drinks at or below their low-stock threshold.
	ShoppingList(ctx context.Context, houseID int64) ([]domain.Drink, error)
	// SearchUsers finds users by username fragment; queries shorter than two
	// runes return an empty result without a network call.
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}

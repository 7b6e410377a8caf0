package repository

import (
	"context"

	"favorites-conformance/internal/reference/domain/model"
)

// SpotRepository defines the interface for spot storage.
// Create assigns IDs that strictly increase over the lifetime of the store.
type SpotRepository interface {
	Create(ctx context.Context, spot *model.Spot) (*model.Spot, error)
	List(ctx context.Context) ([]*model.Spot, error)
	Reset(ctx context.Context) error
}

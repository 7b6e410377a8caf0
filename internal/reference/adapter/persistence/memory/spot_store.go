package memory

import (
	"context"
	"sync"

	"favorites-conformance/internal/reference/domain/model"
	"favorites-conformance/internal/reference/domain/repository"
)

// SpotStore is an in-memory SpotRepository. IDs are assigned under the lock,
// so they strictly increase even under concurrent creates.
type SpotStore struct {
	mu     sync.RWMutex
	spots  []*model.Spot
	nextID int64
}

// NewSpotStore creates an empty spot store.
func NewSpotStore() *SpotStore {
	return &SpotStore{nextID: 1}
}

// Create stores the spot and assigns the next ID.
func (s *SpotStore) Create(ctx context.Context, spot *model.Spot) (*model.Spot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *spot
	stored.ID = s.nextID
	s.nextID++
	s.spots = append(s.spots, &stored)

	return &stored, nil
}

// List returns all spots in creation order.
func (s *SpotStore) List(ctx context.Context) ([]*model.Spot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Spot, len(s.spots))
	copy(out, s.spots)
	return out, nil
}

// Reset drops all spots. The ID counter keeps running so IDs never repeat
// within the lifetime of the store.
func (s *SpotStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spots = nil
	return nil
}

// Ensure SpotStore implements SpotRepository
var _ repository.SpotRepository = (*SpotStore)(nil)

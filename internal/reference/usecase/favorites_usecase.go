package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"favorites-conformance/internal/reference/domain/model"
	"favorites-conformance/internal/reference/domain/repository"
	"favorites-conformance/internal/shared/errors"
	"favorites-conformance/internal/shared/timestamp"

	"go.uber.org/zap"
)

// FavoritesUsecaseInterface defines the contract for favorite spot use cases.
type FavoritesUsecaseInterface interface {
	CreateSpot(ctx context.Context, req CreateSpotRequest) (*model.Spot, error)
	ListSpots(ctx context.Context) ([]*model.Spot, error)
}

// CreateSpotRequest carries the raw form fields of a creation request.
// Every field is a pointer: nil means the key was absent from the form,
// which is different from a key submitted with an empty value.
type CreateSpotRequest struct {
	Title *string
	Lat   *string
	Lon   *string
	Color *string
}

// FavoritesUsecase implements spot validation and creation.
type FavoritesUsecase struct {
	spots  repository.SpotRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewFavoritesUsecase creates a new instance of FavoritesUsecase.
func NewFavoritesUsecase(spots repository.SpotRepository, log *zap.Logger) *FavoritesUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FavoritesUsecase{
		spots:  spots,
		logger: log,
		now:    time.Now,
	}
}

// WithClock overrides the usecase clock. Tests use this to pin created_at.
func (uc *FavoritesUsecase) WithClock(now func() time.Time) *FavoritesUsecase {
	uc.now = now
	return uc
}

// CreateSpot validates the request and stores a new spot.
func (uc *FavoritesUsecase) CreateSpot(ctx context.Context, req CreateSpotRequest) (*model.Spot, error) {
	ve := errors.NewValidationErrors()

	title := uc.validateTitle(req.Title, ve)
	lat := uc.validateCoordinate(req.Lat, "lat", model.MinLat, model.MaxLat, ve)
	lon := uc.validateCoordinate(req.Lon, "lon", model.MinLon, model.MaxLon, ve)
	color := uc.validateColor(req.Color, ve)

	if ve.HasErrors() {
		return nil, ve.ToAppError()
	}

	spot := &model.Spot{
		Title:     title,
		Lat:       lat,
		Lon:       lon,
		Color:     color,
		CreatedAt: timestamp.FromTime(uc.now(), true),
	}

	created, err := uc.spots.Create(ctx, spot)
	if err != nil {
		return nil, fmt.Errorf("failed to create spot: %w", err)
	}

	uc.logger.Debug("spot created",
		zap.Int64("id", created.ID),
		zap.Float64("lat", created.Lat),
		zap.Float64("lon", created.Lon),
	)
	return created, nil
}

// ListSpots returns all stored spots in creation order.
func (uc *FavoritesUsecase) ListSpots(ctx context.Context) ([]*model.Spot, error) {
	return uc.spots.List(ctx)
}

// validateTitle enforces presence, trimmed length 1..999 runes, and the
// accepted alphabet. The stored title is the value exactly as received.
func (uc *FavoritesUsecase) validateTitle(title *string, ve *errors.ValidationErrors) string {
	if title == nil {
		ve.Add("title", "title is required", nil)
		return ""
	}

	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		ve.Add("title", "title cannot be empty or whitespace-only", *title)
		return ""
	}

	if n := utf8.RuneCountInString(trimmed); n > model.MaxTitleLen {
		ve.Add("title", fmt.Sprintf("title cannot exceed %d characters", model.MaxTitleLen), n)
		return ""
	}

	for _, r := range *title {
		if !model.IsTitleChar(r) {
			ve.Add("title", fmt.Sprintf("title contains unsupported character %q", r), *title)
			return ""
		}
	}

	return *title
}

// validateCoordinate enforces presence, finiteness, and the closed interval
// [min, max]. Zero is a valid coordinate, never "missing".
func (uc *FavoritesUsecase) validateCoordinate(raw *string, field string, min, max float64, ve *errors.ValidationErrors) float64 {
	if raw == nil {
		ve.Add(field, field+" is required", nil)
		return 0
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		ve.Add(field, field+" must be a number", *raw)
		return 0
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		ve.Add(field, field+" must be finite", *raw)
		return 0
	}

	if v < min || v > max {
		ve.Add(field, fmt.Sprintf("%s must be between %g and %g", field, min, max), v)
		return 0
	}

	return v
}

// validateColor enforces the closed, case-sensitive color set. An absent key
// yields a null color; a present key must match exactly.
func (uc *FavoritesUsecase) validateColor(color *string, ve *errors.ValidationErrors) *string {
	if color == nil {
		return nil
	}

	if !model.IsAllowedColor(*color) {
		ve.Add("color", fmt.Sprintf("color must be one of %v", model.AllowedColors()), *color)
		return nil
	}

	c := *color
	return &c
}

// Ensure FavoritesUsecase implements FavoritesUsecaseInterface
var _ FavoritesUsecaseInterface = (*FavoritesUsecase)(nil)

package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"favorites-conformance/internal/reference/adapter/persistence/memory"
	"favorites-conformance/internal/reference/usecase"
	"favorites-conformance/internal/shared/errors"
	"favorites-conformance/internal/shared/timestamp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func newFavoritesUC(t *testing.T) *usecase.FavoritesUsecase {
	t.Helper()
	return usecase.NewFavoritesUsecase(memory.NewSpotStore(), nil)
}

func validRequest() usecase.CreateSpotRequest {
	return usecase.CreateSpotRequest{
		Title: strPtr("Lighthouse viewpoint"),
		Lat:   strPtr("59.437"),
		Lon:   strPtr("24.7536"),
	}
}

func TestCreateSpot_Valid(t *testing.T) {
	uc := newFavoritesUC(t)

	spot, err := uc.CreateSpot(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), spot.ID)
	assert.Equal(t, "Lighthouse viewpoint", spot.Title)
	assert.Equal(t, 59.437, spot.Lat)
	assert.Equal(t, 24.7536, spot.Lon)
	assert.Nil(t, spot.Color)
	assert.True(t, timestamp.IsValid(spot.CreatedAt.String()))
}

func TestCreateSpot_CreatedAtUsesMillisLayout(t *testing.T) {
	uc := newFavoritesUC(t)
	fixed := time.Date(2024, 5, 20, 12, 34, 56, 789_000_000, time.FixedZone("", 3*60*60))
	uc.WithClock(func() time.Time { return fixed })

	spot, err := uc.CreateSpot(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "2024-05-20T12:34:56.789+03:00", spot.CreatedAt.String())
}

func TestCreateSpot_TitleValidation(t *testing.T) {
	testCases := []struct {
		name  string
		title *string
		valid bool
	}{
		{"missing", nil, false},
		{"empty", strPtr(""), false},
		{"whitespace only", strPtr("   "), false},
		{"single character", strPtr("a"), true},
		{"max length", strPtr(strings.Repeat("x", 999)), true},
		{"over max length", strPtr(strings.Repeat("x", 1000)), false},
		{"cjk ideographs", strPtr("北京のスポット"), false},
		{"emoji", strPtr("beach \U0001F3D6"), false},
		{"printable ascii", strPtr("Pier #3 (north), est. 1932!"), true},
		{"control character", strPtr("line\nbreak"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newFavoritesUC(t)
			req := validRequest()
			req.Title = tc.title

			spot, err := uc.CreateSpot(context.Background(), req)

			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, *tc.title, spot.Title)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
			}
		})
	}
}

func TestCreateSpot_CoordinateValidation(t *testing.T) {
	testCases := []struct {
		name  string
		lat   *string
		lon   *string
		valid bool
	}{
		{"lat missing", nil, strPtr("0"), false},
		{"lon missing", strPtr("0"), nil, false},
		{"origin is valid", strPtr("0"), strPtr("0"), true},
		{"lat south boundary", strPtr("-90"), strPtr("0"), true},
		{"lat north boundary", strPtr("90"), strPtr("0"), true},
		{"lon west boundary", strPtr("0"), strPtr("-180"), true},
		{"lon east boundary", strPtr("0"), strPtr("180"), true},
		{"lat past north", strPtr("90.0001"), strPtr("0"), false},
		{"lat past south", strPtr("-90.0001"), strPtr("0"), false},
		{"lon past east", strPtr("0"), strPtr("180.0001"), false},
		{"lon past west", strPtr("0"), strPtr("-180.0001"), false},
		{"lat NaN", strPtr("NaN"), strPtr("0"), false},
		{"lat Infinity", strPtr("Infinity"), strPtr("0"), false},
		{"lon -Infinity", strPtr("0"), strPtr("-Infinity"), false},
		{"lat not a number", strPtr("north"), strPtr("0"), false},
		{"lat empty", strPtr(""), strPtr("0"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newFavoritesUC(t)
			req := validRequest()
			req.Lat = tc.lat
			req.Lon = tc.lon

			_, err := uc.CreateSpot(context.Background(), req)

			if tc.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
			}
		})
	}
}

func TestCreateSpot_ColorValidation(t *testing.T) {
	testCases := []struct {
		name  string
		color *string
		valid bool
	}{
		{"absent color stays null", nil, true},
		{"BLUE", strPtr("BLUE"), true},
		{"GREEN", strPtr("GREEN"), true},
		{"RED", strPtr("RED"), true},
		{"YELLOW", strPtr("YELLOW"), true},
		{"empty value", strPtr(""), false},
		{"lowercase", strPtr("red"), false},
		{"mixed case", strPtr("Red"), false},
		{"hex", strPtr("#FF0000"), false},
		{"functional notation", strPtr("rgb(255,0,0)"), false},
		{"outside the set", strPtr("PURPLE"), false},
		{"surrounding whitespace", strPtr(" RED "), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newFavoritesUC(t)
			req := validRequest()
			req.Color = tc.color

			spot, err := uc.CreateSpot(context.Background(), req)

			if !tc.valid {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
				return
			}

			require.NoError(t, err)
			if tc.color == nil {
				assert.Nil(t, spot.Color)
			} else {
				require.NotNil(t, spot.Color)
				assert.Equal(t, *tc.color, *spot.Color)
			}
		})
	}
}

func TestCreateSpot_IDsStrictlyIncrease(t *testing.T) {
	uc := newFavoritesUC(t)
	ctx := context.Background()

	first, err := uc.CreateSpot(ctx, validRequest())
	require.NoError(t, err)
	second, err := uc.CreateSpot(ctx, validRequest())
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestCreateSpot_InvalidRequestAssignsNoID(t *testing.T) {
	store := memory.NewSpotStore()
	uc := usecase.NewFavoritesUsecase(store, nil)
	ctx := context.Background()

	req := validRequest()
	req.Lat = strPtr("91")
	_, err := uc.CreateSpot(ctx, req)
	require.Error(t, err)

	spot, err := uc.CreateSpot(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), spot.ID, "a rejected request must not consume an id")
}

func TestListSpots_ReturnsCreationOrder(t *testing.T) {
	uc := newFavoritesUC(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		req := validRequest()
		req.Title = strPtr(title)
		_, err := uc.CreateSpot(ctx, req)
		require.NoError(t, err)
	}

	spots, err := uc.ListSpots(ctx)
	require.NoError(t, err)
	require.Len(t, spots, 3)
	assert.Equal(t, "first", spots[0].Title)
	assert.Equal(t, "third", spots[2].Title)
}

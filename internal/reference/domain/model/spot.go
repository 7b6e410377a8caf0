package model

import (
	"favorites-conformance/internal/shared/timestamp"
)

// Validation bounds for spot creation.
const (
	MinLat = -90.0
	MaxLat = 90.0
	MinLon = -180.0
	MaxLon = 180.0

	// Title length limits, counted in runes after trimming.
	MinTitleLen = 1
	MaxTitleLen = 999
)

// allowedColors is the closed set of color tokens. Matching is case-sensitive:
// lowercase variants are rejected.
var allowedColors = map[string]struct{}{
	"BLUE":   {},
	"GREEN":  {},
	"RED":    {},
	"YELLOW": {},
}

// IsAllowedColor reports whether c is one of the accepted color tokens.
func IsAllowedColor(c string) bool {
	_, ok := allowedColors[c]
	return ok
}

// AllowedColors returns the accepted color tokens for diagnostics.
func AllowedColors() []string {
	return []string{"BLUE", "GREEN", "RED", "YELLOW"}
}

// IsTitleChar reports whether r belongs to the accepted title alphabet,
// printable ASCII. CJK ideographs, emoji, and control characters fall
// outside it.
func IsTitleChar(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// Spot represents a stored favorite spot.
type Spot struct {
	ID        int64               `json:"id"`
	Title     string              `json:"title"`
	Lat       float64             `json:"lat"`
	Lon       float64             `json:"lon"`
	Color     *string             `json:"color"`
	CreatedAt timestamp.Timestamp `json:"created_at"`
}

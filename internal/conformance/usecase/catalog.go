package usecase

import (
	"strings"

	"favorites-conformance/internal/conformance/domain/model"
)

// validTitle, validLat, and validLon are the well-formed baseline used by
// scenarios probing a single field.
const (
	validTitle = "Lighthouse viewpoint"
	validLat   = "59.437"
	validLon   = "24.7536"
)

// form builds a presence-aware creation request. Empty strings stand for
// "send this key with an empty value"; use the omit* helpers for absence.
func form(title, lat, lon string) model.SpotRequest {
	return model.SpotRequest{
		Title: model.StringPtr(title),
		Lat:   model.StringPtr(lat),
		Lon:   model.StringPtr(lon),
	}
}

func formWithColor(title, lat, lon, color string) model.SpotRequest {
	req := form(title, lat, lon)
	req.Color = model.StringPtr(color)
	return req
}

func echoCoords(title string, lat, lon float64) *model.EchoExpectation {
	return &model.EchoExpectation{
		Title:       model.StringPtr(title),
		Lat:         model.Float64Ptr(lat),
		Lon:         model.Float64Ptr(lon),
		ColorIsNull: true,
	}
}

// BuiltinCatalog returns the full scenario catalog for the documented
// favorites contract. Scenario names are unique and stable; reports and the
// --filter flag key off them.
func BuiltinCatalog() []model.Scenario {
	scenarios := []model.Scenario{
		{
			Name:    "create-valid-spot",
			Summary: "valid title/lat/lon with a fresh session creates a spot",
			Auth:    model.AuthSession,
			Form:    form(validTitle, validLat, validLon),
			Expect: model.Expectation{
				Status: 200,
				Echo:   echoCoords(validTitle, 59.437, 24.7536),
			},
		},
		{
			Name:    "no-credential",
			Summary: "a request without any credential is unauthorized",
			Auth:    model.AuthNone,
			Form:    form(validTitle, validLat, validLon),
			Expect:  model.Expectation{Status: 401},
		},
		{
			Name:    "expired-credential",
			Summary: "a credential reused after the expiry window is unauthorized",
			Auth:    model.AuthExpired,
			Form:    form(validTitle, validLat, validLon),
			Expect:  model.Expectation{Status: 401},
			Notes:   []string{"waits out the target's session TTL with a real wall-clock delay"},
		},

		// Title presence and emptiness.
		{
			Name:    "title-missing",
			Summary: "omitting the title key is rejected",
			Auth:    model.AuthSession,
			Form:    model.SpotRequest{Lat: model.StringPtr(validLat), Lon: model.StringPtr(validLon)},
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "title-empty",
			Summary: "an empty title is rejected",
			Auth:    model.AuthSession,
			Form:    form("", validLat, validLon),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "title-whitespace-only",
			Summary: "a whitespace-only title is rejected",
			Auth:    model.AuthSession,
			Form:    form("   ", validLat, validLon),
			Expect:  model.Expectation{Status: 400},
		},

		// Coordinate presence.
		{
			Name:    "lat-missing",
			Summary: "omitting the lat key is rejected",
			Auth:    model.AuthSession,
			Form:    model.SpotRequest{Title: model.StringPtr(validTitle), Lon: model.StringPtr(validLon)},
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "lon-missing",
			Summary: "omitting the lon key is rejected",
			Auth:    model.AuthSession,
			Form:    model.SpotRequest{Title: model.StringPtr(validTitle), Lat: model.StringPtr(validLat)},
			Expect:  model.Expectation{Status: 400},
		},

		// Coordinate boundaries, inclusive.
		{
			Name:    "lat-boundary-south",
			Summary: "lat exactly -90 is accepted",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "-90", validLon),
			Expect:  model.Expectation{Status: 200, Echo: echoCoords(validTitle, -90, 24.7536)},
		},
		{
			Name:    "lat-boundary-north",
			Summary: "lat exactly 90 is accepted",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "90", validLon),
			Expect:  model.Expectation{Status: 200, Echo: echoCoords(validTitle, 90, 24.7536)},
		},
		{
			Name:    "lon-boundary-west",
			Summary: "lon exactly -180 is accepted",
			Auth:    model.AuthSession,
			Form:    form(validTitle, validLat, "-180"),
			Expect:  model.Expectation{Status: 200, Echo: echoCoords(validTitle, 59.437, -180)},
		},
		{
			Name:    "lon-boundary-east",
			Summary: "lon exactly 180 is accepted",
			Auth:    model.AuthSession,
			Form:    form(validTitle, validLat, "180"),
			Expect:  model.Expectation{Status: 200, Echo: echoCoords(validTitle, 59.437, 180)},
		},
		{
			Name:    "origin-coordinates",
			Summary: "lat 0 and lon 0 are valid coordinates, not missing values",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "0", "0"),
			Expect:  model.Expectation{Status: 200, Echo: echoCoords(validTitle, 0, 0)},
		},

		// Just past the boundaries.
		{
			Name:    "lat-past-north",
			Summary: "lat just above 90 is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "90.0001", validLon),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "lat-past-south",
			Summary: "lat just below -90 is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "-90.0001", validLon),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "lon-past-east",
			Summary: "lon just above 180 is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, validLat, "180.0001"),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "lon-past-west",
			Summary: "lon just below -180 is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, validLat, "-180.0001"),
			Expect:  model.Expectation{Status: 400},
		},

		// Non-finite coordinates.
		{
			Name:    "lat-nan",
			Summary: "lat NaN is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "NaN", validLon),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "lat-infinity",
			Summary: "lat Infinity is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "Infinity", validLon),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "lon-negative-infinity",
			Summary: "lon -Infinity is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, validLat, "-Infinity"),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "lat-not-a-number",
			Summary: "a non-numeric lat is rejected",
			Auth:    model.AuthSession,
			Form:    form(validTitle, "north", validLon),
			Expect:  model.Expectation{Status: 400},
		},

		// Title length.
		{
			Name:    "title-length-one",
			Summary: "a single-character title is accepted",
			Auth:    model.AuthSession,
			Form:    form("a", validLat, validLon),
			Expect:  model.Expectation{Status: 200, Echo: echoCoords("a", 59.437, 24.7536)},
		},
		{
			Name:    "title-length-max",
			Summary: "a 999-character title is accepted and echoed verbatim",
			Auth:    model.AuthSession,
			Form:    form(strings.Repeat("x", 999), validLat, validLon),
			Expect:  model.Expectation{Status: 200, Echo: echoCoords(strings.Repeat("x", 999), 59.437, 24.7536)},
		},
		{
			Name:    "title-length-over-max",
			Summary: "a 1000-character title is rejected",
			Auth:    model.AuthSession,
			Form:    form(strings.Repeat("x", 1000), validLat, validLon),
			Expect:  model.Expectation{Status: 400},
		},

		// Title alphabet.
		{
			Name:    "title-cjk",
			Summary: "CJK ideographs fall outside the accepted alphabet",
			Auth:    model.AuthSession,
			Form:    form("北京のスポット", validLat, validLon),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "title-emoji",
			Summary: "emoji fall outside the accepted alphabet",
			Auth:    model.AuthSession,
			Form:    form("beach \U0001F3D6", validLat, validLon),
			Expect:  model.Expectation{Status: 400},
		},

		// Accepted colors, exact case.
		colorAccepted("BLUE"),
		colorAccepted("GREEN"),
		colorAccepted("RED"),
		colorAccepted("YELLOW"),

		// Rejected colors.
		{
			Name:    "color-empty",
			Summary: "a color key with an empty value is rejected",
			Auth:    model.AuthSession,
			Form:    formWithColor(validTitle, validLat, validLon, ""),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "color-lowercase",
			Summary: "a lowercase color token is rejected",
			Auth:    model.AuthSession,
			Form:    formWithColor(validTitle, validLat, validLon, "red"),
			Expect:  model.Expectation{Status: 400},
			Notes: []string{
				"the original remote service is believed to accept lowercase colors; " +
					"that behavior is documented as a suspected defect, and the contract " +
					"expectation stays strict-uppercase",
			},
		},
		{
			Name:    "color-hex",
			Summary: "a hex color value is rejected",
			Auth:    model.AuthSession,
			Form:    formWithColor(validTitle, validLat, validLon, "#FF0000"),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "color-functional",
			Summary: "a functional-notation color value is rejected",
			Auth:    model.AuthSession,
			Form:    formWithColor(validTitle, validLat, validLon, "rgb(255,0,0)"),
			Expect:  model.Expectation{Status: 400},
		},
		{
			Name:    "color-unknown-token",
			Summary: "an uppercase token outside the color set is rejected",
			Auth:    model.AuthSession,
			Form:    formWithColor(validTitle, validLat, validLon, "PURPLE"),
			Expect:  model.Expectation{Status: 400},
		},

		// ID monotonicity.
		{
			Name:    "ids-strictly-increase",
			Summary: "two sequential creations in one session yield strictly increasing ids",
			Auth:    model.AuthSession,
			Form:    form(validTitle, validLat, validLon),
			Submits: 2,
			Expect: model.Expectation{
				Status:              200,
				IDsStrictlyIncrease: true,
			},
		},

		// Transport-encoding artifacts, reproduced deliberately via raw
		// bodies. These probe the wire format, not the service's validator.
		{
			Name:    "raw-plus-decodes-to-space",
			Summary: "a literal '+' in a raw form body reaches the service as a space",
			Auth:    model.AuthSession,
			RawForm: "title=one+two&lat=10&lon=20",
			Expect: model.Expectation{
				Status: 200,
				Echo:   echoCoords("one two", 10, 20),
			},
			Notes: []string{"transport-encoding artifact, not a service behavior"},
		},
		{
			Name:    "raw-ampersand-truncates",
			Summary: "a literal '&' in a raw form body truncates the title",
			Auth:    model.AuthSession,
			RawForm: "title=left&right&lat=10&lon=20",
			Expect: model.Expectation{
				Status: 200,
				Echo:   echoCoords("left", 10, 20),
			},
			Notes: []string{"transport-encoding artifact, not a service behavior"},
		},
	}

	return scenarios
}

// colorAccepted builds the acceptance scenario for one color token.
func colorAccepted(color string) model.Scenario {
	return model.Scenario{
		Name:    "color-" + strings.ToLower(color),
		Summary: "color " + color + " is accepted and echoed",
		Auth:    model.AuthSession,
		Form:    formWithColor(validTitle, validLat, validLon, color),
		Expect: model.Expectation{
			Status: 200,
			Echo: &model.EchoExpectation{
				Title: model.StringPtr(validTitle),
				Lat:   model.Float64Ptr(59.437),
				Lon:   model.Float64Ptr(24.7536),
				Color: model.StringPtr(color),
			},
		},
	}
}

// FilterScenarios returns the scenarios whose names contain substr.
func FilterScenarios(scenarios []model.Scenario, substr string) []model.Scenario {
	if substr == "" {
		return scenarios
	}
	out := make([]model.Scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		if strings.Contains(sc.Name, substr) {
			out = append(out, sc)
		}
	}
	return out
}

// SkipExpiry removes the wall-clock expiry scenarios from the set.
func SkipExpiry(scenarios []model.Scenario) []model.Scenario {
	out := make([]model.Scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		if sc.AuthOrDefault() != model.AuthExpired {
			out = append(out, sc)
		}
	}
	return out
}

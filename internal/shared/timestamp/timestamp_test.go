package timestamp

import (
	"encoding/json"
	"testing"
	"time"

	"favorites-conformance/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"seconds precision with positive offset", "2024-05-20T12:34:56+03:00", true},
		{"seconds precision with negative offset", "2024-05-20T12:34:56-05:30", true},
		{"seconds precision with zero offset", "2024-05-20T12:34:56+00:00", true},
		{"millisecond precision", "2024-05-20T12:34:56.123+03:00", true},
		{"millisecond precision with zero millis", "2024-05-20T12:34:56.000-08:00", true},
		{"maximum real offset", "2024-05-20T12:34:56+14:00", true},

		{"empty string", "", false},
		{"zulu suffix", "2024-05-20T12:34:56Z", false},
		{"zulu suffix with millis", "2024-05-20T12:34:56.123Z", false},
		{"missing offset", "2024-05-20T12:34:56", false},
		{"space instead of T", "2024-05-20 12:34:56+03:00", false},
		{"lowercase t separator", "2024-05-20t12:34:56+03:00", false},
		{"one fractional digit", "2024-05-20T12:34:56.1+03:00", false},
		{"two fractional digits", "2024-05-20T12:34:56.12+03:00", false},
		{"four fractional digits", "2024-05-20T12:34:56.1234+03:00", false},
		{"dot with no digits", "2024-05-20T12:34:56.+03:00", false},
		{"comma fraction separator", "2024-05-20T12:34:56,123+03:00", false},
		{"offset without colon", "2024-05-20T12:34:56+0300", false},
		{"offset with single digit hour", "2024-05-20T12:34:56+3:00", false},
		{"offset hours only", "2024-05-20T12:34:56+03", false},
		{"date only", "2024-05-20", false},
		{"time only", "12:34:56+03:00", false},
		{"trailing garbage", "2024-05-20T12:34:56+03:00x", false},
		{"leading whitespace", " 2024-05-20T12:34:56+03:00", false},
		{"trailing whitespace", "2024-05-20T12:34:56+03:00 ", false},
		{"not a date", "yesterday", false},

		{"month out of range", "2024-13-20T12:34:56+03:00", false},
		{"day out of range", "2024-05-32T12:34:56+03:00", false},
		{"day invalid for month", "2024-02-30T12:34:56+03:00", false},
		{"hour out of range", "2024-05-20T24:34:56+03:00", false},
		{"minute out of range", "2024-05-20T12:60:56+03:00", false},
		{"second out of range", "2024-05-20T12:34:61+03:00", false},
		{"offset hour too large", "2024-05-20T12:34:56+15:00", false},
		{"offset just past maximum", "2024-05-20T12:34:56+14:01", false},
		{"offset minutes out of range", "2024-05-20T12:34:56+05:60", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValid(tc.input), "input %q", tc.input)
		})
	}
}

func TestParse_RoundTripsWithIsValid(t *testing.T) {
	inputs := []string{
		"2024-05-20T12:34:56+03:00",
		"2024-05-20T12:34:56.123-05:30",
		"2024-05-20T12:34:56Z",
		"2024-05-20T12:34:56",
		"",
		"garbage",
		"2024-05-20T12:34:56.12+03:00",
	}
	for _, s := range inputs {
		_, err := Parse(s)
		assert.Equal(t, IsValid(s), err == nil, "input %q", s)

		// Purity: a second call must agree with the first.
		_, err2 := Parse(s)
		assert.Equal(t, err == nil, err2 == nil, "input %q", s)
	}
}

func TestParse_PreservesOffset(t *testing.T) {
	ts, err := Parse("2024-05-20T12:34:56+03:00")
	require.NoError(t, err)
	assert.Equal(t, 3*3600, ts.OffsetSeconds())
	assert.Equal(t, 12, ts.Time().Hour())
	assert.False(t, ts.HasMillis())

	ts, err = Parse("2024-05-20T12:34:56.500-05:30")
	require.NoError(t, err)
	assert.Equal(t, -(5*3600 + 30*60), ts.OffsetSeconds())
	assert.True(t, ts.HasMillis())
	assert.Equal(t, 500*int(time.Millisecond), ts.Time().Nanosecond())
}

func TestParse_StringRendersOriginalLayout(t *testing.T) {
	for _, s := range []string{
		"2024-05-20T12:34:56+03:00",
		"2024-05-20T12:34:56-05:30",
		"2024-05-20T12:34:56.123+03:00",
		"2024-05-20T12:34:56.000+00:00",
	} {
		ts, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, ts.String())
	}
}

func TestParse_InvalidCarriesSentinel(t *testing.T) {
	_, err := Parse("2024-05-20T12:34:56Z")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidTimestamp)
	assert.True(t, errors.IsValidation(err))
}

func TestTimestamp_Equal(t *testing.T) {
	a := MustParse("2024-05-20T12:34:56+03:00")
	b := MustParse("2024-05-20T09:34:56+00:00")
	c := MustParse("2024-05-20T09:34:57+00:00")

	assert.True(t, a.Equal(b), "same instant written with different offsets")
	assert.False(t, a.Equal(c))
}

func TestTimestamp_IsZero(t *testing.T) {
	var zero Timestamp
	assert.True(t, zero.IsZero())
	assert.False(t, MustParse("2024-05-20T12:34:56+03:00").IsZero())
}

func TestFromTime_RoundTrips(t *testing.T) {
	loc := time.FixedZone("", 2*3600)
	instant := time.Date(2024, 5, 20, 12, 34, 56, 789123456, loc)

	withMillis := FromTime(instant, true)
	assert.Equal(t, "2024-05-20T12:34:56.789+02:00", withMillis.String())
	reparsed, err := Parse(withMillis.String())
	require.NoError(t, err)
	assert.True(t, withMillis.Equal(reparsed))

	secondsOnly := FromTime(instant, false)
	assert.Equal(t, "2024-05-20T12:34:56+02:00", secondsOnly.String())
	reparsed, err = Parse(secondsOnly.String())
	require.NoError(t, err)
	assert.True(t, secondsOnly.Equal(reparsed))
}

func TestFormatHelpers(t *testing.T) {
	loc := time.FixedZone("", -7*3600)
	instant := time.Date(2024, 5, 20, 12, 34, 56, 123000000, loc)

	assert.Equal(t, "2024-05-20T12:34:56-07:00", Format(instant))
	assert.Equal(t, "2024-05-20T12:34:56.123-07:00", FormatMillis(instant))
	assert.True(t, IsValid(Format(instant)))
	assert.True(t, IsValid(FormatMillis(instant)))
}

func TestTimestamp_JSON(t *testing.T) {
	ts := MustParse("2024-05-20T12:34:56.123+03:00")

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-20T12:34:56.123+03:00"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, ts.Equal(decoded))

	var rejected Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"2024-05-20T12:34:56Z"`), &rejected))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &rejected))
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-a-timestamp") })
}

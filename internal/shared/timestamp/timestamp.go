package timestamp

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"

	"favorites-conformance/internal/shared/errors"
)

// Accepted layouts. The contract is two exact shapes: seconds precision and
// millisecond precision, both with a signed hour:minute UTC offset. A bare
// `Z`, a missing offset, or any other fractional digit count is invalid.
const (
	LayoutSeconds = "2006-01-02T15:04:05-07:00"
	LayoutMillis  = "2006-01-02T15:04:05.000-07:00"
)

// Offsets beyond +/-14:00 do not exist on any real timezone.
const maxOffsetMinutes = 14 * 60

var (
	// Shape: 2024-05-20T12:34:56+03:00
	secondsShapeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}([+-])(\d{2}):(\d{2})$`)

	// Shape: 2024-05-20T12:34:56.123+03:00
	millisShapeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}([+-])(\d{2}):(\d{2})$`)
)

// Timestamp is an immutable offset-aware instant restricted to the two
// accepted layouts. The offset carried by the input string is preserved,
// never normalized to UTC.
type Timestamp struct {
	t         time.Time
	hasMillis bool
}

// Parse validates s against the two accepted layouts and returns the parsed
// value. The shape check runs before time.Parse because time.Parse accepts
// fractional seconds the layout does not declare.
func Parse(s string) (Timestamp, error) {
	layout, hasMillis, offHH, offMM, ok := matchShape(s)
	if !ok {
		return Timestamp{}, errors.NewValidationError("timestamp does not match an accepted layout").
			WithCause(errors.ErrInvalidTimestamp).
			WithDetail("value", s)
	}

	if offMM > 59 || offHH*60+offMM > maxOffsetMinutes {
		return Timestamp{}, errors.NewValidationError("timestamp offset out of range").
			WithCause(errors.ErrInvalidTimestamp).
			WithDetail("value", s)
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return Timestamp{}, errors.NewValidationError("timestamp component out of range").
			WithCause(errors.ErrInvalidTimestamp).
			WithDetail("value", s)
	}

	return Timestamp{t: t, hasMillis: hasMillis}, nil
}

// IsValid reports whether s parses under one of the two accepted layouts.
// Empty input is invalid.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// MustParse parses s and panics on failure. Intended for fixtures.
func MustParse(s string) Timestamp {
	ts, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromTime builds a Timestamp from t, truncated to the precision the chosen
// layout can render, so that String round-trips through Parse exactly.
func FromTime(t time.Time, withMillis bool) Timestamp {
	if withMillis {
		t = t.Truncate(time.Millisecond)
	} else {
		t = t.Truncate(time.Second)
	}
	return Timestamp{t: t, hasMillis: withMillis}
}

// Format renders t in the seconds-precision layout.
func Format(t time.Time) string {
	return t.Format(LayoutSeconds)
}

// FormatMillis renders t in the millisecond-precision layout.
func FormatMillis(t time.Time) string {
	return t.Format(LayoutMillis)
}

// matchShape reports which accepted layout s has, plus the offset digits for
// the semantic range check.
func matchShape(s string) (layout string, hasMillis bool, offHH, offMM int, ok bool) {
	if m := secondsShapeRegex.FindStringSubmatch(s); m != nil {
		offHH, offMM = atoiDigits(m[2]), atoiDigits(m[3])
		return LayoutSeconds, false, offHH, offMM, true
	}
	if m := millisShapeRegex.FindStringSubmatch(s); m != nil {
		offHH, offMM = atoiDigits(m[2]), atoiDigits(m[3])
		return LayoutMillis, true, offHH, offMM, true
	}
	return "", false, 0, 0, false
}

// atoiDigits converts a digits-only capture group.
func atoiDigits(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Time returns the instant with its original offset attached.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// OffsetSeconds returns the UTC offset of the original representation in
// seconds east of UTC.
func (ts Timestamp) OffsetSeconds() int {
	_, offset := ts.t.Zone()
	return offset
}

// HasMillis reports whether the value carries millisecond precision.
func (ts Timestamp) HasMillis() bool {
	return ts.hasMillis
}

// IsZero reports whether the value is the zero Timestamp.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// Equal reports whether two timestamps denote the same instant, regardless
// of the offsets they were written with.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t)
}

// String renders the value in the layout it was parsed with.
func (ts Timestamp) String() string {
	if ts.hasMillis {
		return ts.t.Format(LayoutMillis)
	}
	return ts.t.Format(LayoutSeconds)
}

// MarshalJSON renders the value as a JSON string in its layout.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON parses a JSON string under the two accepted layouts.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

package model

import "strconv"

// SpotRequest carries the form fields of a creation request. Every field is a
// pointer: nil omits the key from the form entirely, while a pointer to an
// empty string submits the key with an empty value. Coordinates are strings
// so malformed and non-finite probes ("NaN", "abc") can be sent verbatim.
type SpotRequest struct {
	Title *string `yaml:"title" json:"title,omitempty"`
	Lat   *string `yaml:"lat" json:"lat,omitempty"`
	Lon   *string `yaml:"lon" json:"lon,omitempty"`
	Color *string `yaml:"color" json:"color,omitempty"`
}

// SpotResponse is the decoded success body. All fields are pointers so that
// an absent or null field is distinguishable from a zero value.
type SpotResponse struct {
	ID        *int64   `json:"id"`
	Title     *string  `json:"title"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Color     *string  `json:"color"`
	CreatedAt *string  `json:"created_at"`
}

// String renders a compact diagnostic form of the response.
func (r *SpotResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	id := "null"
	if r.ID != nil {
		id = strconv.FormatInt(*r.ID, 10)
	}
	title := "null"
	if r.Title != nil {
		title = *r.Title
	}
	return "spot{id=" + id + " title=" + title + "}"
}

// StringPtr returns a pointer to s. Scenario builders use it for presence-
// aware form fields.
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 {
	return &f
}

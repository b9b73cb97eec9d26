package video

import "strings"

// Rating is the content rating of a video.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingL     Rating = "L"
	RatingAge10 Rating = "AGE_10"
	RatingAge12 Rating = "AGE_12"
	RatingAge14 Rating = "AGE_14"
	RatingAge16 Rating = "AGE_16"
	RatingAge18 Rating = "AGE_18"
)

var ratings = []struct {
	rating Rating
	label  string
}{
	{RatingER, "ER"},
	{RatingL, "L"},
	{RatingAge10, "10"},
	{RatingAge12, "12"},
	{RatingAge14, "14"},
	{RatingAge16, "16"},
	{RatingAge18, "18"},
}

// RatingOf maps a raw value to a Rating. Both the constant name ("AGE_18")
// and the short label ("18") are accepted, ignoring case.
func RatingOf(raw string) (Rating, bool) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	for _, r := range ratings {
		if value == string(r.rating) || value == r.label {
			return r.rating, true
		}
	}
	return "", false
}

// Label returns the short label shown to viewers.
func (r Rating) Label() string {
	for _, candidate := range ratings {
		if candidate.rating == r {
			return candidate.label
		}
	}
	return ""
}

func (r Rating) String() string {
	return string(r)
}

// Package srs implements the spaced-repetition scheduler: an SM-2 style review
// calculator and the due-card ranking used to order a study session.
package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/and161185/flashrecall/internal/errs"
)

// Rating is the user's assessment of recall for a single review.
type Rating int

const (
	Again Rating = iota + 1 // Failed to recall; a lapse.
	Hard                    // Recalled with serious difficulty.
	Good                    // Recalled with some hesitation.
	Easy                    // Recalled effortlessly.
)

var (
	ratingNames  = [...]string{Again: "Again", Hard: "Hard", Good: "Good", Easy: "Easy"}
	ratingByName = map[string]Rating{
		"again": Again,
		"hard":  Hard,
		"good":  Good,
		"easy":  Easy,
	}
)

var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// IsValid reports whether r is one of Again, Hard, Good, Easy.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

// String returns the rating name, or "Rating(n)" for invalid values.
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ValidateRating returns an error wrapping errs.ErrInvalidRating when r is outside 1..4.
func ValidateRating(r Rating) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: must be between 1 and 4 (got %d)", errs.ErrInvalidRating, int(r))
	}
	return nil
}

// ParseRating accepts a name ("good", case-insensitive) or a number ("3").
func ParseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	if r, ok := ratingByName[strings.ToLower(s)]; ok {
		return r, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidRating, s)
	}
	r := Rating(n)
	if err := ValidateRating(r); err != nil {
		return 0, err
	}
	return r, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if err := ValidateRating(r); err != nil {
		return nil, err
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON encodes the rating as its name.
func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts either a name string or a bare number.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return r.UnmarshalText([]byte(s))
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRating, data)
	}
	if err := ValidateRating(Rating(n)); err != nil {
		return err
	}
	*r = Rating(n)
	return nil
}

package dashboard

import (
	"slices"
)

const (
	// MinRating and MaxRating bound the rating slider.
	MinRating = 0.0
	MaxRating = 10.0
)

// RatingRange is an inclusive rating interval.
type RatingRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// FullRange returns the default interval covering every valid rating.
func FullRange() RatingRange {
	return RatingRange{Low: MinRating, High: MaxRating}
}

// Contains reports whether v lies within the interval, bounds included.
func (r RatingRange) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// Criteria is a snapshot of the user's filter selection. Build a new value
// for every interaction; it has no setters.
type Criteria struct {
	years  map[int]struct{}
	genres map[string]struct{}
	rating RatingRange
}

// NewCriteria builds a Criteria value. Nil or empty years/genres mean "all".
func NewCriteria(years []int, genres []string, rating RatingRange) Criteria {
	c := Criteria{rating: rating}
	if len(years) > 0 {
		c.years = make(map[int]struct{}, len(years))
		for _, y := range years {
			c.years[y] = struct{}{}
		}
	}
	if len(genres) > 0 {
		c.genres = make(map[string]struct{}, len(genres))
		for _, g := range genres {
			c.genres[g] = struct{}{}
		}
	}
	return c
}

// AllMovies returns criteria with no year or genre constraint and the full
// rating range.
func AllMovies() Criteria {
	return NewCriteria(nil, nil, FullRange())
}

// Years returns the selected years in ascending order.
func (c Criteria) Years() []int {
	out := make([]int, 0, len(c.years))
	for y := range c.years {
		out = append(out, y)
	}
	slices.Sort(out)
	return out
}

// Genres returns the selected genre cells in ascending order.
func (c Criteria) Genres() []string {
	out := make([]string, 0, len(c.genres))
	for g := range c.genres {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// Rating returns the selected rating interval.
func (c Criteria) Rating() RatingRange {
	return c.rating
}

// HasYear reports whether year passes the year constraint.
func (c Criteria) HasYear(year int) bool {
	if len(c.years) == 0 {
		return true
	}
	_, ok := c.years[year]
	return ok
}

// HasGenre reports whether a raw genre cell passes the genre constraint.
// The comparison is against the whole cell, not individual genre tokens.
func (c Criteria) HasGenre(cell string) bool {
	if len(c.genres) == 0 {
		return true
	}
	_, ok := c.genres[cell]
	return ok
}

package dashboard

import "github.com/Clark-Hu/movies-dashboard/internal/domain"

// Predicate decides whether a row is kept.
type Predicate func(domain.Movie) bool

// YearPredicate keeps rows whose year is selected.
func YearPredicate(c Criteria) Predicate {
	return func(m domain.Movie) bool { return c.HasYear(m.Year) }
}

// GenrePredicate keeps rows whose raw genre cell is selected.
func GenrePredicate(c Criteria) Predicate {
	return func(m domain.Movie) bool { return c.HasGenre(m.Genre) }
}

// RatingPredicate keeps rows whose rating lies in the selected interval.
// Rows without a rating never pass.
func RatingPredicate(c Criteria) Predicate {
	return func(m domain.Movie) bool {
		return m.HasRating() && c.rating.Contains(*m.Rating)
	}
}

// Filter returns the rows of table matching all of c's constraints. The
// result is a new slice; an empty result is valid.
func Filter(table Table, c Criteria) Table {
	return Where(table, YearPredicate(c), GenrePredicate(c), RatingPredicate(c))
}

// Where keeps the rows that satisfy every predicate, preserving order.
func Where(table Table, preds ...Predicate) Table {
	out := make(Table, 0, len(table))
rows:
	for _, m := range table {
		for _, p := range preds {
			if !p(m) {
				continue rows
			}
		}
		out = append(out, m)
	}
	return out
}

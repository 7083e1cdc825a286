// Package dashboard filters the movies table and computes the KPIs and
// aggregate series shown on the dashboard. Every function here is pure: the
// input table is never modified and results depend only on the arguments.
package dashboard

import "github.com/Clark-Hu/movies-dashboard/internal/domain"

// Table is the in-memory movies table. It is treated as read-only once loaded.
type Table []domain.Movie

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t)
}

// ratings returns the present rating values in table order.
func (t Table) ratings() []float64 {
	values := make([]float64, 0, len(t))
	for _, m := range t {
		if m.Rating != nil {
			values = append(values, *m.Rating)
		}
	}
	return values
}

package dashboard

import (
	"cmp"
	"slices"

	"github.com/Clark-Hu/movies-dashboard/internal/domain"
)

// Group is one partition produced by GroupBy.
type Group[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// GroupBy partitions table by key and reduces each partition. The key
// function drops a row by returning false; the reducer drops a group the
// same way. Groups come back in ascending key order.
func GroupBy[K cmp.Ordered, V any](
	table Table,
	key func(domain.Movie) (K, bool),
	reduce func(Table) (V, bool),
) []Group[K, V] {
	parts := make(map[K]Table)
	for _, m := range table {
		k, ok := key(m)
		if !ok {
			continue
		}
		parts[k] = append(parts[k], m)
	}

	groups := make([]Group[K, V], 0, len(parts))
	for k, rows := range parts {
		v, ok := reduce(rows)
		if !ok {
			continue
		}
		groups = append(groups, Group[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(groups, func(a, b Group[K, V]) int { return cmp.Compare(a.Key, b.Key) })
	return groups
}

// mode returns the most frequent key; ties go to the lowest key.
func mode[K cmp.Ordered](table Table, key func(domain.Movie) (K, bool)) (K, bool) {
	groups := GroupBy(table, key, countRows)
	var (
		best  K
		count int
	)
	// groups are in ascending key order, so a strict comparison keeps the
	// lowest key among equal counts.
	for _, g := range groups {
		if g.Value > count {
			best, count = g.Key, g.Value
		}
	}
	return best, count > 0
}

func countRows(rows Table) (int, bool) {
	return len(rows), len(rows) > 0
}

func meanRating(rows Table) (float64, bool) {
	return mean(rows.ratings())
}

func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

func byYear(m domain.Movie) (int, bool) {
	return m.Year, true
}

func byCertificate(m domain.Movie) (string, bool) {
	if m.Certificate == nil {
		return "", false
	}
	return *m.Certificate, true
}

func byGenreCell(m domain.Movie) (string, bool) {
	return m.Genre, m.HasGenre()
}

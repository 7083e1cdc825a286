package dashboard

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// NotAvailable is displayed for a KPI that has no input data.
const NotAvailable = "N/A"

// KPISet holds the headline figures for a filtered table. Pointer fields are
// nil when the table has no data for that figure.
type KPISet struct {
	AverageRating    *float64 `json:"averageRating"`
	TotalMovies      int      `json:"totalMovies"`
	TopYear          *int     `json:"topYear"`
	TotalVotes       int64    `json:"totalVotes"`
	ShortestDuration *float64 `json:"shortestDuration"`
	LongestDuration  *float64 `json:"longestDuration"`
	TopGenre         *string  `json:"topGenre"`
}

// Metric is a labelled display value.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ComputeKPIs computes every KPI independently. It never fails; figures with
// no input are left nil.
func ComputeKPIs(table Table) KPISet {
	kpis := KPISet{
		TotalMovies: table.Len(),
		TotalVotes:  totalVotes(table),
	}
	if avg, ok := mean(table.ratings()); ok {
		rounded := roundTo2(avg)
		kpis.AverageRating = &rounded
	}
	if year, ok := mode(table, byYear); ok {
		kpis.TopYear = &year
	}
	if genre, ok := mode(table, byGenreCell); ok {
		kpis.TopGenre = &genre
	}
	kpis.ShortestDuration, kpis.LongestDuration = durationBounds(table)
	return kpis
}

// Metrics renders the KPIs in dashboard order, substituting NotAvailable for
// missing figures.
func (k KPISet) Metrics() []Metric {
	return []Metric{
		{Label: "Average Rating", Value: formatFloat(k.AverageRating)},
		{Label: "Total Movies", Value: strconv.Itoa(k.TotalMovies)},
		{Label: "Year with Most Movies", Value: formatInt(k.TopYear)},
		{Label: "Total Votes", Value: strconv.FormatInt(k.TotalVotes, 10)},
		{Label: "Shortest Time Duration", Value: formatFloat(k.ShortestDuration)},
		{Label: "Longest Time Duration", Value: formatFloat(k.LongestDuration)},
		{Label: "Most Popular Genre", Value: formatString(k.TopGenre)},
	}
}

func totalVotes(table Table) int64 {
	var total int64
	for _, m := range table {
		total += m.Votes
	}
	return total
}

func durationBounds(table Table) (shortest, longest *float64) {
	for _, m := range table {
		if m.Duration == nil {
			continue
		}
		d := *m.Duration
		if shortest == nil || d < *shortest {
			shortest = &d
		}
		if longest == nil || d > *longest {
			longest = &d
		}
	}
	return shortest, longest
}

// roundTo2 rounds half away from zero on the decimal value, so 2.675 becomes
// 2.68 rather than the binary-float 2.67.
func roundTo2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}

func formatFloat(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}

func formatString(v *string) string {
	if v == nil {
		return NotAvailable
	}
	return *v
}

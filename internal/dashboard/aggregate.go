package dashboard

import (
	"cmp"
	"slices"
	"strings"
)

const (
	// TopCertificates caps the certificate ranking.
	TopCertificates = 10
	// HistogramBuckets is the number of equal-width rating buckets.
	HistogramBuckets = 30
)

// CertificateRating is the mean rating of one certificate.
type CertificateRating struct {
	Certificate   string  `json:"certificate"`
	AverageRating float64 `json:"averageRating"`
}

// Bucket is one histogram bin covering [Lower, Upper); the last bin also
// includes Upper.
type Bucket struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// GenreCount is how many rows mention a single genre token.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// YearCount is the number of rows released in a year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// YearRating is the mean rating of a year's releases.
type YearRating struct {
	Year          int     `json:"year"`
	AverageRating float64 `json:"averageRating"`
}

// YearRatingPoint is one row projected onto (Year, Rating).
type YearRatingPoint struct {
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// AggregateSet holds the derived series for a filtered table. An empty slice
// means "no data" for that chart.
type AggregateSet struct {
	CertificateRatings []CertificateRating `json:"certificateRatings"`
	RatingHistogram    []Bucket            `json:"ratingHistogram"`
	GenrePopularity    []GenreCount        `json:"genrePopularity"`
	YearlyCounts       []YearCount         `json:"yearlyCounts"`
	YearlyRatings      []YearRating        `json:"yearlyRatings"`
	YearRatingPoints   []YearRatingPoint   `json:"yearRatingPoints"`
}

// ComputeAggregates derives every series from table.
func ComputeAggregates(table Table) AggregateSet {
	return AggregateSet{
		CertificateRatings: CertificateRatings(table),
		RatingHistogram:    RatingHistogram(table, HistogramBuckets),
		GenrePopularity:    GenrePopularity(table),
		YearlyCounts:       YearlyCounts(table),
		YearlyRatings:      YearlyRatings(table),
		YearRatingPoints:   YearRatingPoints(table),
	}
}

// CertificateRatings ranks certificates by mean rating, highest first, and
// keeps the top TopCertificates. Equal means are ordered by certificate.
func CertificateRatings(table Table) []CertificateRating {
	groups := GroupBy(table, byCertificate, meanRating)
	slices.SortStableFunc(groups, func(a, b Group[string, float64]) int {
		return cmp.Compare(b.Value, a.Value)
	})
	if len(groups) > TopCertificates {
		groups = groups[:TopCertificates]
	}

	out := make([]CertificateRating, 0, len(groups))
	for _, g := range groups {
		out = append(out, CertificateRating{Certificate: g.Key, AverageRating: g.Value})
	}
	return out
}

// RatingHistogram splits the observed rating range into n equal-width
// buckets and counts the ratings in each. A single distinct rating v is
// binned over [v-0.5, v+0.5].
func RatingHistogram(table Table, n int) []Bucket {
	ratings := table.ratings()
	if len(ratings) == 0 || n <= 0 {
		return []Bucket{}
	}

	lo, hi := slices.Min(ratings), slices.Max(ratings)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(n)

	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i].Lower = lo + float64(i)*width
		buckets[i].Upper = lo + float64(i+1)*width
	}
	buckets[n-1].Upper = hi

	for _, r := range ratings {
		idx := int((r - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		buckets[idx].Count++
	}
	return buckets
}

// GenrePopularity counts genre tokens across all rows. A cell such as
// "Action, Comedy" adds one to both "Action" and "Comedy". The result is
// ordered by count, highest first, then by genre.
func GenrePopularity(table Table) []GenreCount {
	counts := make(map[string]int)
	for _, m := range table {
		for _, token := range GenreTokens(m.Genre) {
			counts[token]++
		}
	}

	out := make([]GenreCount, 0, len(counts))
	for genre, count := range counts {
		out = append(out, GenreCount{Genre: genre, Count: count})
	}
	slices.SortFunc(out, func(a, b GenreCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Genre, b.Genre)
	})
	return out
}

// GenreTokens splits a genre cell on commas and trims each label. Empty
// labels are dropped.
func GenreTokens(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// YearlyCounts counts rows per year in ascending year order.
func YearlyCounts(table Table) []YearCount {
	groups := GroupBy(table, byYear, countRows)
	out := make([]YearCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, YearCount{Year: g.Key, Count: g.Value})
	}
	return out
}

// YearlyRatings averages ratings per year in ascending year order. Years
// without any rating are left out.
func YearlyRatings(table Table) []YearRating {
	groups := GroupBy(table, byYear, meanRating)
	out := make([]YearRating, 0, len(groups))
	for _, g := range groups {
		out = append(out, YearRating{Year: g.Key, AverageRating: g.Value})
	}
	return out
}

// YearRatingPoints projects every rated row onto (Year, Rating).
func YearRatingPoints(table Table) []YearRatingPoint {
	out := make([]YearRatingPoint, 0, len(table))
	for _, m := range table {
		if m.Rating == nil {
			continue
		}
		out = append(out, YearRatingPoint{Year: m.Year, Rating: *m.Rating})
	}
	return out
}


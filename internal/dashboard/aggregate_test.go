package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clark-Hu/movies-dashboard/internal/domain"
)

func TestComputeAggregates_Sample(t *testing.T) {
	aggs := ComputeAggregates(Filter(sampleTable(), AllMovies()))

	assert.Equal(t, []YearRating{{Year: 2001, AverageRating: 8.0}, {Year: 2003, AverageRating: 5.0}}, aggs.YearlyRatings)
	assert.Equal(t, []YearCount{{Year: 2001, Count: 2}, {Year: 2003, Count: 1}}, aggs.YearlyCounts)
	assert.Equal(t, []CertificateRating{
		{Certificate: "R", AverageRating: 9.0},
		{Certificate: "PG", AverageRating: 6.0},
	}, aggs.CertificateRatings)
	assert.Equal(t, []GenreCount{
		{Genre: "Action", Count: 2},
		{Genre: "Comedy", Count: 2},
		{Genre: "Drama", Count: 1},
	}, aggs.GenrePopularity)
	assert.Len(t, aggs.YearRatingPoints, 3)
	assert.Len(t, aggs.RatingHistogram, HistogramBuckets)
}

func TestComputeAggregates_Empty(t *testing.T) {
	aggs := ComputeAggregates(Table{})

	assert.Empty(t, aggs.CertificateRatings)
	assert.Empty(t, aggs.RatingHistogram)
	assert.Empty(t, aggs.GenrePopularity)
	assert.Empty(t, aggs.YearlyCounts)
	assert.Empty(t, aggs.YearlyRatings)
	assert.Empty(t, aggs.YearRatingPoints)
}

func TestGenrePopularity_TokenCounts(t *testing.T) {
	got := GenrePopularity(Table{movie(2000, "Action, Comedy", nil)})
	assert.ElementsMatch(t, []GenreCount{{Genre: "Action", Count: 1}, {Genre: "Comedy", Count: 1}}, got)
}

func TestGenreTokens(t *testing.T) {
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, GenreTokens(" Action,Comedy ,  Drama"))
	assert.Equal(t, []string{"Crime"}, GenreTokens("Crime, ,"))
	assert.Nil(t, GenreTokens(""))
}

func TestCertificateRatings_TopTen(t *testing.T) {
	var table Table
	for i := 0; i < 12; i++ {
		cert := fmt.Sprintf("C%02d", i)
		table = append(table, domain.Movie{Year: 2000, Certificate: str(cert), Rating: f64(float64(i) / 2)})
	}
	table = append(table, movie(2000, "Drama", f64(10)))

	got := CertificateRatings(table)
	require.Len(t, got, TopCertificates)
	assert.Equal(t, "C11", got[0].Certificate)
	assert.Equal(t, 5.5, got[0].AverageRating)
	assert.Equal(t, "C02", got[9].Certificate)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].AverageRating, got[i].AverageRating)
	}
}

func TestCertificateRatings_TiesOrderedByCertificate(t *testing.T) {
	table := Table{
		{Certificate: str("UA"), Rating: f64(7)},
		{Certificate: str("A"), Rating: f64(7)},
		{Certificate: str("U"), Rating: f64(8)},
		{Certificate: str("PG"), Rating: nil},
	}
	got := CertificateRatings(table)
	assert.Equal(t, []CertificateRating{
		{Certificate: "U", AverageRating: 8},
		{Certificate: "A", AverageRating: 7},
		{Certificate: "UA", AverageRating: 7},
	}, got)
}

func TestRatingHistogram(t *testing.T) {
	table := Table{
		movie(2000, "", f64(1.0)),
		movie(2000, "", f64(4.0)),
		movie(2000, "", f64(4.0)),
		movie(2000, "", f64(10.0)),
		movie(2000, "", nil),
	}
	got := RatingHistogram(table, HistogramBuckets)
	require.Len(t, got, HistogramBuckets)

	assert.Equal(t, 1.0, got[0].Lower)
	assert.Equal(t, 10.0, got[len(got)-1].Upper)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 1, got[len(got)-1].Count, "maximum lands in the last bucket")
	assert.Equal(t, 2, got[10].Count)

	total := 0
	for i, b := range got {
		total += b.Count
		assert.InDelta(t, 0.3, b.Upper-b.Lower, 1e-9, "bucket %d width", i)
	}
	assert.Equal(t, 4, total)
}

func TestRatingHistogram_SingleValue(t *testing.T) {
	got := RatingHistogram(Table{movie(2000, "", f64(7)), movie(2001, "", f64(7))}, 10)
	require.Len(t, got, 10)
	assert.Equal(t, 6.5, got[0].Lower)
	assert.Equal(t, 7.5, got[9].Upper)
	assert.Equal(t, 2, got[5].Count)
}

func TestYearlyRatings_SkipsUnratedYears(t *testing.T) {
	table := Table{
		movie(2003, "", f64(6)),
		movie(1999, "", nil),
		movie(2003, "", f64(8)),
		movie(2001, "", f64(5)),
	}
	assert.Equal(t, []YearRating{{Year: 2001, AverageRating: 5}, {Year: 2003, AverageRating: 7}}, YearlyRatings(table))
	assert.Equal(t, []YearCount{{Year: 1999, Count: 1}, {Year: 2001, Count: 1}, {Year: 2003, Count: 2}}, YearlyCounts(table))
}

func TestYearRatingPoints_SkipsMissing(t *testing.T) {
	table := Table{movie(2001, "", f64(7)), movie(2002, "", nil), movie(2001, "", f64(9))}
	assert.Equal(t, []YearRatingPoint{{Year: 2001, Rating: 7}, {Year: 2001, Rating: 9}}, YearRatingPoints(table))
}

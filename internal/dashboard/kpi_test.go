package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKPIs_Sample(t *testing.T) {
	kpis := ComputeKPIs(Filter(sampleTable(), AllMovies()))

	require.NotNil(t, kpis.AverageRating)
	assert.Equal(t, 7.0, *kpis.AverageRating)
	assert.Equal(t, 3, kpis.TotalMovies)
	require.NotNil(t, kpis.TopYear)
	assert.Equal(t, 2001, *kpis.TopYear)
	assert.Equal(t, int64(400), kpis.TotalVotes)
	require.NotNil(t, kpis.ShortestDuration)
	assert.Equal(t, 90.0, *kpis.ShortestDuration)
	require.NotNil(t, kpis.LongestDuration)
	assert.Equal(t, 130.0, *kpis.LongestDuration)
	require.NotNil(t, kpis.TopGenre)
	assert.Equal(t, "Action, Comedy", *kpis.TopGenre)
}

func TestComputeKPIs_Empty(t *testing.T) {
	kpis := ComputeKPIs(Table{})

	assert.Nil(t, kpis.AverageRating)
	assert.Zero(t, kpis.TotalMovies)
	assert.Nil(t, kpis.TopYear)
	assert.Zero(t, kpis.TotalVotes)
	assert.Nil(t, kpis.ShortestDuration)
	assert.Nil(t, kpis.LongestDuration)
	assert.Nil(t, kpis.TopGenre)

	for _, m := range kpis.Metrics() {
		switch m.Label {
		case "Total Movies", "Total Votes":
			assert.Equal(t, "0", m.Value, m.Label)
		default:
			assert.Equal(t, NotAvailable, m.Value, m.Label)
		}
	}
}

func TestComputeKPIs_TiesPickLowestKey(t *testing.T) {
	table := Table{
		movie(2005, "Drama", f64(6)),
		movie(1999, "Comedy", f64(6)),
		movie(2005, "Comedy", f64(6)),
		movie(1999, "Drama", f64(6)),
	}
	kpis := ComputeKPIs(table)
	require.NotNil(t, kpis.TopYear)
	assert.Equal(t, 1999, *kpis.TopYear)
	require.NotNil(t, kpis.TopGenre)
	assert.Equal(t, "Comedy", *kpis.TopGenre)
}

func TestComputeKPIs_MissingValuesIgnored(t *testing.T) {
	table := Table{
		movie(2010, "", nil),
		{Year: 2011, Genre: "Drama", Rating: f64(8.123), Duration: f64(95)},
		{Year: 2011, Rating: f64(6.0)},
	}
	kpis := ComputeKPIs(table)

	require.NotNil(t, kpis.AverageRating)
	assert.Equal(t, 7.06, *kpis.AverageRating)
	require.NotNil(t, kpis.TopGenre)
	assert.Equal(t, "Drama", *kpis.TopGenre)
	require.NotNil(t, kpis.ShortestDuration)
	assert.Equal(t, *kpis.ShortestDuration, *kpis.LongestDuration)
}

func TestRoundTo2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7, 7},
		{2.675, 2.68},
		{6.666666, 6.67},
		{8.004, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundTo2(tt.in), "roundTo2(%v)", tt.in)
	}
}

func TestKPISet_Metrics(t *testing.T) {
	metrics := ComputeKPIs(sampleTable()).Metrics()
	require.Len(t, metrics, 7)
	assert.Equal(t, Metric{Label: "Average Rating", Value: "7"}, metrics[0])
	assert.Equal(t, Metric{Label: "Year with Most Movies", Value: "2001"}, metrics[2])
	assert.Equal(t, Metric{Label: "Most Popular Genre", Value: "Action, Comedy"}, metrics[6])
}

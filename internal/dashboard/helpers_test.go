package dashboard

import "github.com/Clark-Hu/movies-dashboard/internal/domain"

func f64(v float64) *float64 { return &v }

func str(v string) *string { return &v }

func movie(year int, genre string, rating *float64) domain.Movie {
	return domain.Movie{Year: year, Genre: genre, Rating: rating}
}

// sampleTable mirrors the three-row example used across the engine tests.
func sampleTable() Table {
	return Table{
		{Title: "A", Year: 2001, Genre: "Action, Comedy", Certificate: str("PG"), Rating: f64(7.0), Votes: 100, Duration: f64(90)},
		{Title: "B", Year: 2001, Genre: "Drama", Certificate: str("R"), Rating: f64(9.0), Votes: 250, Duration: f64(130)},
		{Title: "C", Year: 2003, Genre: "Action, Comedy", Certificate: str("PG"), Rating: f64(5.0), Votes: 50},
	}
}

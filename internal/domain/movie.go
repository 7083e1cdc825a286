package domain

// Movie is one row of the movies table. Optional columns are pointers so a
// missing cell stays distinguishable from a zero value.
type Movie struct {
	Title       string
	Year        int
	Genre       string
	Certificate *string
	Rating      *float64
	Votes       int64
	Duration    *float64
}

// Column names expected in the source table.
const (
	ColumnTitle       = "Title"
	ColumnYear        = "Year"
	ColumnGenre       = "Genre"
	ColumnCertificate = "Certificate"
	ColumnRating      = "Rating"
	ColumnVotes       = "Votes"
	ColumnDuration    = "Duration"
)

// RequiredColumns lists the columns every source table must carry.
var RequiredColumns = []string{
	ColumnYear,
	ColumnGenre,
	ColumnCertificate,
	ColumnRating,
	ColumnVotes,
	ColumnDuration,
}

// HasRating reports whether the row carries a rating value.
func (m Movie) HasRating() bool {
	return m.Rating != nil
}

// HasGenre reports whether the genre cell is present.
func (m Movie) HasGenre() bool {
	return m.Genre != ""
}

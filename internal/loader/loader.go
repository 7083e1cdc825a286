// Package loader reads the movies CSV into memory.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Clark-Hu/movies-dashboard/internal/domain"
)

// ErrMissingColumn is returned when the source lacks a required column.
var ErrMissingColumn = errors.New("loader: missing column")

// missingValues are cell spellings read as "no value".
var missingValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "<nil>"}

// Report summarises a load.
type Report struct {
	Rows    int
	Skipped int
}

// LoadFile opens path and reads it with Read.
func LoadFile(path string) ([]domain.Movie, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a movies CSV. Unparsable cells become missing values; rows
// without a usable Year are skipped and counted in the report.
func Read(r io.Reader) ([]domain.Movie, Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read csv: %w", err)
	}

	// gota rejects a frame with no data rows, so a header-only file is
	// validated here and yields an empty table.
	header, hasRows, err := peekHeader(raw)
	if err != nil {
		return nil, Report{}, err
	}
	if err := requireColumns(header); err != nil {
		return nil, Report{}, err
	}
	if !hasRows {
		return []domain.Movie{}, Report{}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return nil, Report{}, fmt.Errorf("read csv: %w", df.Err)
	}

	cols, err := columns(df)
	if err != nil {
		return nil, Report{}, err
	}

	var (
		movies = make([]domain.Movie, 0, df.Nrow())
		report Report
	)
	for i := 0; i < df.Nrow(); i++ {
		year, ok := parseYear(cols[domain.ColumnYear][i])
		if !ok {
			report.Skipped++
			continue
		}
		movies = append(movies, domain.Movie{
			Title:       cell(cols[domain.ColumnTitle], i),
			Year:        year,
			Genre:       cleanString(cols[domain.ColumnGenre][i]),
			Certificate: optionalString(cols[domain.ColumnCertificate][i]),
			Rating:      parseRating(cols[domain.ColumnRating][i]),
			Votes:       parseVotes(cols[domain.ColumnVotes][i]),
			Duration:    parseDuration(cols[domain.ColumnDuration][i]),
		})
	}
	report.Rows = len(movies)
	return movies, report, nil
}

// peekHeader returns the header record and whether any record follows it.
func peekHeader(raw []byte) ([]string, bool, error) {
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, fmt.Errorf("read csv: no header row")
	}
	if err != nil {
		return nil, false, fmt.Errorf("read csv header: %w", err)
	}
	if _, err := cr.Read(); errors.Is(err, io.EOF) {
		return header, false, nil
	}
	return header, true, nil
}

// requireColumns fails with ErrMissingColumn when names lacks a required
// column.
func requireColumns(names []string) error {
	present := make(map[string]struct{}, len(names))
	for _, name := range names {
		present[name] = struct{}{}
	}
	for _, name := range domain.RequiredColumns {
		if _, ok := present[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return nil
}

// columns pulls every known column out of df as raw strings. Title is
// optional; the rest must be present.
func columns(df dataframe.DataFrame) (map[string][]string, error) {
	if err := requireColumns(df.Names()); err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		present[name] = struct{}{}
	}

	cols := make(map[string][]string, len(domain.RequiredColumns)+1)
	for _, name := range domain.RequiredColumns {
		cols[name] = df.Col(name).Records()
	}
	if _, ok := present[domain.ColumnTitle]; ok {
		cols[domain.ColumnTitle] = df.Col(domain.ColumnTitle).Records()
	}
	return cols, nil
}

func cell(col []string, i int) string {
	if col == nil {
		return ""
	}
	return cleanString(col[i])
}

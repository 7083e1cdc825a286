package dashboard

import "slices"

// FilterOptions lists the choices offered by the selection widgets.
type FilterOptions struct {
	Years  []int       `json:"years"`
	Genres []string    `json:"genres"`
	Rating RatingRange `json:"rating"`
}

// Options collects the distinct years (ascending) and distinct raw genre
// cells (first-seen order) of table.
func Options(table Table) FilterOptions {
	seenYears := make(map[int]struct{})
	seenGenres := make(map[string]struct{})
	opts := FilterOptions{
		Years:  []int{},
		Genres: []string{},
		Rating: FullRange(),
	}
	for _, m := range table {
		if _, ok := seenYears[m.Year]; !ok {
			seenYears[m.Year] = struct{}{}
			opts.Years = append(opts.Years, m.Year)
		}
		if !m.HasGenre() {
			continue
		}
		if _, ok := seenGenres[m.Genre]; !ok {
			seenGenres[m.Genre] = struct{}{}
			opts.Genres = append(opts.Genres, m.Genre)
		}
	}
	slices.Sort(opts.Years)
	return opts
}

// Limit keeps at most n years and n genres. n <= 0 keeps everything.
func (o FilterOptions) Limit(n int) FilterOptions {
	if n <= 0 {
		return o
	}
	if len(o.Years) > n {
		o.Years = o.Years[:n]
	}
	if len(o.Genres) > n {
		o.Genres = o.Genres[:n]
	}
	return o
}

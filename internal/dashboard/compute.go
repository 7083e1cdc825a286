package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CriteriaSummary echoes the criteria a snapshot was computed for.
type CriteriaSummary struct {
	Years  []int       `json:"years"`
	Genres []string    `json:"genres"`
	Rating RatingRange `json:"rating"`
}

// Snapshot is the result of one recompute pass.
type Snapshot struct {
	Criteria     CriteriaSummary `json:"criteria"`
	SourceRows   int             `json:"sourceRows"`
	FilteredRows int             `json:"filteredRows"`
	KPIs         KPISet          `json:"kpis"`
	Aggregates   AggregateSet    `json:"aggregates"`
}

// Compute filters table by c and derives the KPIs and aggregates from the
// result. The two consumers run concurrently; the only error returned is
// ctx's.
func Compute(ctx context.Context, table Table, c Criteria) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	filtered := Filter(table, c)
	snap := Snapshot{
		Criteria: CriteriaSummary{
			Years:  c.Years(),
			Genres: c.Genres(),
			Rating: c.Rating(),
		},
		SourceRows:   table.Len(),
		FilteredRows: filtered.Len(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.KPIs = ComputeKPIs(filtered)
		return gctx.Err()
	})
	g.Go(func() error {
		snap.Aggregates = ComputeAggregates(filtered)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Package venue attaches nearby venues and local prices to a
// recommendation set and re-ranks it so activities with real options
// nearby come first.
package venue

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/logging"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/region"
)

// maxHomeLeading is how many at-home activities may precede the formal ones.
const maxHomeLeading = 2

type Options struct {
	// Concurrency caps simultaneous lookups; 0 means unlimited.
	Concurrency  int
	RadiusMeters int
	// Timeout applies to each lookup on its own.
	Timeout time.Duration
}

func DefaultOptions() Options {
	return Options{Concurrency: 4, RadiusMeters: 5000, Timeout: 5 * time.Second}
}

// Enricher looks up venues for each formal recommendation.
type Enricher struct {
	searcher   places.Searcher
	regions    region.RegionLookup
	currencies region.CurrencyTable
	opts       Options
}

// NewEnricher creates an Enricher. A nil searcher skips venue lookups but
// still localises costs.
func NewEnricher(searcher places.Searcher, regions region.RegionLookup, currencies region.CurrencyTable, opts Options) *Enricher {
	if regions == nil {
		regions = region.NewBoundingBoxLookup()
	}
	if currencies == nil {
		currencies = region.DefaultCurrencies
	}
	return &Enricher{searcher: searcher, regions: regions, currencies: currencies, opts: opts}
}

// Result is the enriched, re-ranked recommendation set.
type Result struct {
	Recommendations []contract.Recommendation
	Country         string
	// CostApproximate is set when the location fell outside every known
	// region and costs are shown in the default currency.
	CostApproximate bool
	Failures        int
}

// Enrich returns a copy of recs with venues and local costs filled in, then
// re-ranked. A failed lookup leaves that recommendation without venues and
// never fails the batch.
func (e *Enricher) Enrich(ctx context.Context, recs []contract.Recommendation, lat, lng float64) Result {
	country, known := e.regions.CountryFor(lat, lng)
	if !known {
		logging.Ctx(ctx).Debug().Float64("lat", lat).Float64("lng", lng).Str("country", country).
			Msg("location outside known regions, showing default currency")
	}

	out := make([]contract.Recommendation, len(recs))
	copy(out, recs)
	for i := range out {
		out[i].EstimatedCost = e.currencies.ConvertRange(out[i].CostMinUSD, out[i].CostMaxUSD, country)
	}

	failed := e.lookupAll(ctx, out, lat, lng)

	return Result{
		Recommendations: Rerank(out),
		Country:         country,
		CostApproximate: !known,
		Failures:        failed,
	}
}

// lookupAll fills Venues in place. Each goroutine writes only its own index.
func (e *Enricher) lookupAll(ctx context.Context, recs []contract.Recommendation, lat, lng float64) int {
	if e.searcher == nil {
		return 0
	}
	failed := make([]bool, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	if e.opts.Concurrency > 0 {
		g.SetLimit(e.opts.Concurrency)
	}
	for i := range recs {
		if recs[i].HomeBased {
			continue
		}
		g.Go(func() error {
			qctx := gctx
			if e.opts.Timeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(gctx, e.opts.Timeout)
				defer cancel()
			}
			venues, err := e.searcher.SearchVenuesForActivity(qctx, recs[i].Name, recs[i].Category, lat, lng, e.opts.RadiusMeters)
			if err != nil {
				failed[i] = true
				enrichmentFailures.Inc()
				logging.Ctx(ctx).Warn().Err(err).Str("activity", recs[i].ID).Msg("venue lookup failed")
				return nil
			}
			recs[i].Venues = venues
			return nil
		})
	}
	_ = g.Wait()

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}
	return n
}

// Rerank puts up to two at-home activities first, then formal activities
// by venue count (most first, stable), then any remaining at-home ones.
// The output is a permutation of the input.
func Rerank(recs []contract.Recommendation) []contract.Recommendation {
	var home, formal []contract.Recommendation
	for _, r := range recs {
		if r.HomeBased {
			home = append(home, r)
		} else {
			formal = append(formal, r)
		}
	}
	sort.SliceStable(formal, func(i, j int) bool {
		return len(formal[i].Venues) > len(formal[j].Venues)
	})

	lead := min(maxHomeLeading, len(home))
	out := make([]contract.Recommendation, 0, len(recs))
	out = append(out, home[:lead]...)
	out = append(out, formal...)
	out = append(out, home[lead:]...)
	return out[:len(recs)]
}

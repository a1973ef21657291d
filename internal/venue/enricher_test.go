package venue

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/region"
)

type fakeSearcher struct {
	mu      sync.Mutex
	venues  map[string]int
	fail    map[string]bool
	slow    map[string]bool
	queried []string
}

func (f *fakeSearcher) SearchVenuesForActivity(ctx context.Context, name, _ string, _, _ float64, _ int) ([]places.Venue, error) {
	f.mu.Lock()
	f.queried = append(f.queried, name)
	f.mu.Unlock()

	if f.slow[name] {
		<-ctx.Done()
		return nil, places.ErrTimeout
	}
	if f.fail[name] {
		return nil, places.ErrPlacesUnavailable
	}
	out := make([]places.Venue, f.venues[name])
	for i := range out {
		out[i] = places.Venue{Name: fmt.Sprintf("%s venue %d", name, i)}
	}
	return out, nil
}

func (f *fakeSearcher) GeocodeLocation(context.Context, string) (*places.Coordinates, error) {
	return nil, errors.New("not used")
}

func rec(id string, home bool) contract.Recommendation {
	return contract.Recommendation{ID: id, Name: id, HomeBased: home, CostMinUSD: 60, CostMaxUSD: 120}
}

func ids(recs []contract.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

const sgLat, sgLng = 1.3521, 103.8198

func TestEnrich_ReranksByVenueCount(t *testing.T) {
	s := &fakeSearcher{venues: map[string]int{"a": 1, "b": 5, "c": 3}}
	e := NewEnricher(s, nil, nil, DefaultOptions())

	res := e.Enrich(context.Background(), []contract.Recommendation{
		rec("a", false), rec("home1", true), rec("b", false), rec("c", false), rec("home2", true),
	}, sgLat, sgLng)

	assert.Equal(t, []string{"home1", "home2", "b", "c", "a"}, ids(res.Recommendations))
	assert.Len(t, res.Recommendations[2].Venues, 5)
	assert.Equal(t, "SG", res.Country)
	assert.False(t, res.CostApproximate)
	assert.Zero(t, res.Failures)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.queried)
}

func TestEnrich_LocalisesCost(t *testing.T) {
	e := NewEnricher(nil, nil, nil, DefaultOptions())

	res := e.Enrich(context.Background(), []contract.Recommendation{rec("a", false)}, sgLat, sgLng)
	assert.Equal(t, "S$81 - S$162/month", res.Recommendations[0].EstimatedCost)

	res = e.Enrich(context.Background(), []contract.Recommendation{rec("a", false)}, 40.71, -74.0)
	assert.Equal(t, "$60 - $120/month", res.Recommendations[0].EstimatedCost)
	assert.Equal(t, "US", res.Country)
	assert.True(t, res.CostApproximate)
}

func TestEnrich_FailureLeavesItemUnenriched(t *testing.T) {
	s := &fakeSearcher{venues: map[string]int{"a": 2, "c": 1}, fail: map[string]bool{"b": true}}
	e := NewEnricher(s, region.NewBoundingBoxLookup(), region.DefaultCurrencies, DefaultOptions())

	input := []contract.Recommendation{rec("a", false), rec("b", false), rec("c", false)}
	res := e.Enrich(context.Background(), input, sgLat, sgLng)

	assert.Equal(t, 1, res.Failures)
	assert.Equal(t, []string{"a", "c", "b"}, ids(res.Recommendations))
	assert.Nil(t, res.Recommendations[2].Venues)
	assert.Equal(t, "S$81 - S$162/month", res.Recommendations[2].EstimatedCost)

	// The caller's slice is untouched.
	assert.Nil(t, input[0].Venues)
	assert.Empty(t, input[0].EstimatedCost)
}

func TestEnrich_SlowLookupTimesOutAlone(t *testing.T) {
	s := &fakeSearcher{venues: map[string]int{"a": 2, "c": 1}, slow: map[string]bool{"b": true}}
	e := NewEnricher(s, nil, nil, Options{Concurrency: 3, Timeout: 50 * time.Millisecond})

	start := time.Now()
	res := e.Enrich(context.Background(), []contract.Recommendation{rec("a", false), rec("b", false), rec("c", false)}, sgLat, sgLng)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, 1, res.Failures)
	assert.Equal(t, []string{"a", "c", "b"}, ids(res.Recommendations))
}

func TestEnrich_HomeBasedNeverSearched(t *testing.T) {
	s := &fakeSearcher{}
	e := NewEnricher(s, nil, nil, DefaultOptions())

	res := e.Enrich(context.Background(), []contract.Recommendation{rec("h", true)}, sgLat, sgLng)
	assert.Empty(t, s.queried)
	assert.Equal(t, []string{"h"}, ids(res.Recommendations))
}

func TestRerank_ThreeHomeActivities(t *testing.T) {
	out := Rerank([]contract.Recommendation{
		rec("h1", true), rec("f1", false), rec("h2", true), rec("h3", true),
	})
	assert.Equal(t, []string{"h1", "h2", "f1", "h3"}, ids(out))
}

func TestRerank_PreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		n := rng.Intn(6)
		recs := make([]contract.Recommendation, n)
		for j := range recs {
			recs[j] = rec(fmt.Sprintf("r%d", rng.Intn(4)), rng.Intn(3) == 0)
			recs[j].Venues = make([]places.Venue, rng.Intn(4))
		}

		out := Rerank(recs)
		require.Len(t, out, n)

		before, after := ids(recs), ids(out)
		sort.Strings(before)
		sort.Strings(after)
		assert.Equal(t, before, after)
	}
}

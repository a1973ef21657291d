// Package places looks up activity venues and geocodes addresses against a
// Places-style HTTP API. Calls share one rate limiter and one circuit
// breaker, and every call runs under its own timeout.
package places

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/alexanderramin/sprout/internal/logging"
)

// Searcher finds venues and resolves addresses.
type Searcher interface {
	SearchVenuesForActivity(ctx context.Context, name, category string, lat, lng float64, radiusMeters int) ([]Venue, error)
	GeocodeLocation(ctx context.Context, address string) (*Coordinates, error)
}

// Client implements Searcher over HTTP.
type Client struct {
	cfg      Config
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[[]byte]
	limiter  *rate.Limiter
	observer Observer
}

// NewClient creates a places client. A nil observer discards events.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		breaker:  newBreaker(cfg.Breaker),
		limiter:  rate.NewLimiter(limit, burst),
		observer: observer,
	}
}

func newBreaker(cfg BreakerConfig) *gobreaker.CircuitBreaker[[]byte] {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}
	breakerState.Set(0)
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "places-api",
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller giving up is not a sign the API is unhealthy.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			breakerState.Set(stateValue(to))
		},
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

type apiLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type apiGeometry struct {
	Location apiLocation `json:"location"`
}

type apiPlace struct {
	Name             string      `json:"name"`
	FormattedAddress string      `json:"formatted_address"`
	Vicinity         string      `json:"vicinity"`
	PlaceID          string      `json:"place_id"`
	Rating           *float64    `json:"rating"`
	UserRatingsTotal *int        `json:"user_ratings_total"`
	Types            []string    `json:"types"`
	Geometry         apiGeometry `json:"geometry"`
}

type apiResponse struct {
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message"`
	Results      []apiPlace `json:"results"`
}

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// categoryHints sharpen text queries for categories whose activity names
// are ambiguous on their own.
var categoryHints = map[string]string{
	"aquatics":     "pool",
	"martial-arts": "dojo",
	"dance":        "studio",
	"visual-arts":  "studio",
	"music":        "school",
	"drama":        "school",
	"stem":         "academy",
	"language":     "centre",
}

func (c *Client) SearchVenuesForActivity(ctx context.Context, name, category string, lat, lng float64, radiusMeters int) ([]Venue, error) {
	query := strings.Join(strings.Fields(name+" "+categoryHints[category]+" for kids"), " ")
	if radiusMeters <= 0 {
		radiusMeters = c.cfg.RadiusMeters
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", strconv.FormatFloat(lat, 'f', 6, 64)+","+strconv.FormatFloat(lng, 'f', 6, 64))
	params.Set("radius", strconv.Itoa(radiusMeters))

	resp, err := c.lookup(ctx, OpSearch, query, "/place/textsearch/json", params)
	if err != nil {
		if errors.Is(err, ErrNoResults) {
			return []Venue{}, nil
		}
		return nil, err
	}

	venues := make([]Venue, 0, len(resp.Results))
	for _, p := range resp.Results {
		if c.cfg.MaxResults > 0 && len(venues) == c.cfg.MaxResults {
			break
		}
		d := DistanceMeters(lat, lng, p.Geometry.Location.Lat, p.Geometry.Location.Lng)
		addr := p.FormattedAddress
		if addr == "" {
			addr = p.Vicinity
		}
		types := p.Types
		if types == nil {
			types = []string{}
		}
		venues = append(venues, Venue{
			Name:         p.Name,
			Address:      addr,
			Distance:     &d,
			Rating:       p.Rating,
			TotalRatings: p.UserRatingsTotal,
			PlaceID:      p.PlaceID,
			Latitude:     p.Geometry.Location.Lat,
			Longitude:    p.Geometry.Location.Lng,
			Types:        types,
		})
	}
	return venues, nil
}

func (c *Client) GeocodeLocation(ctx context.Context, address string) (*Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrNoResults
	}
	params := url.Values{}
	params.Set("address", address)

	resp, err := c.lookup(ctx, OpGeocode, address, "/geocode/json", params)
	if err != nil {
		return nil, err
	}
	loc := resp.Results[0].Geometry.Location
	return &Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// lookup runs one API call with timeout, rate limiting, breaker and
// retries, and reports it to the observer.
func (c *Client) lookup(ctx context.Context, op Op, query, path string, params url.Values) (*apiResponse, error) {
	if !c.cfg.Enabled {
		return nil, ErrDisabled
	}
	start := time.Now()
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.call(ctx, path, params)
	if err == nil && (resp.Status == statusZeroResults || len(resp.Results) == 0) {
		err = ErrNoResults
	}

	ev := CallEvent{Op: op, Query: query, Latency: time.Since(start), Status: statusLabel(err), Err: err}
	if err == nil {
		ev.Results = len(resp.Results)
	}
	c.observer.OnCallComplete(ev)

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) call(ctx context.Context, path string, params url.Values) (*apiResponse, error) {
	if c.cfg.APIKey != "" {
		params.Set("key", c.cfg.APIKey)
	}
	endpoint := strings.TrimRight(c.cfg.Endpoint, "/") + path + "?" + params.Encode()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.doRequest(ctx, endpoint)
		})
		if err == nil {
			var resp apiResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return nil, fmt.Errorf("%w: decoding response: %v", ErrPlacesUnavailable, err)
			}
			if resp.Status != statusOK && resp.Status != statusZeroResults {
				return nil, fmt.Errorf("%w: status %s: %s", ErrPlacesUnavailable, resp.Status, resp.ErrorMessage)
			}
			return &resp, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) {
			break
		}
	}
	return nil, classify(ctx, lastErr)
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("places returned status %d: %s", e.code, e.body)
}

func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: string(body)}
	}
	return body, nil
}

func retryable(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return true
}

func classify(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrCircuitOpen
	case ctx.Err() != nil, errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	default:
		return fmt.Errorf("%w: %v", ErrPlacesUnavailable, err)
	}
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoResults):
		return "no_results"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, ErrDisabled):
		return "disabled"
	default:
		return "error"
	}
}

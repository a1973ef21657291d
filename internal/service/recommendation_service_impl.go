package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/guidance"
	"github.com/alexanderramin/sprout/internal/logging"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/recommend"
	"github.com/alexanderramin/sprout/internal/region"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/alexanderramin/sprout/internal/venue"
)

// RecommendationOptions tunes the engine and the venue enrichment stage.
type RecommendationOptions struct {
	Selector recommend.SelectorOptions
	Venue    venue.Options
	// Regions, Currencies and Climate default to the built-in tables.
	Regions    region.RegionLookup
	Currencies region.CurrencyTable
	Climate    region.ClimateDetector
}

type recommendationService struct {
	loader   *ContextLoader
	locator  *LocationResolver
	enricher *venue.Enricher
	selector recommend.SelectorOptions
	observer UseCaseObserver
}

// NewRecommendationService wires the pipeline. A nil searcher disables
// geocoding and venue lookups; costs are still localised from coordinates.
func NewRecommendationService(
	students repository.StudentRepo,
	reports repository.ReportRepo,
	activities repository.CurrentActivityRepo,
	searcher places.Searcher,
	opts RecommendationOptions,
	observers ...UseCaseObserver,
) RecommendationService {
	climate := opts.Climate
	if climate == nil {
		climate = region.NewCoarseClimate()
	}
	if opts.Venue == (venue.Options{}) {
		opts.Venue = venue.DefaultOptions()
	}
	return &recommendationService{
		loader: &ContextLoader{
			students:   students,
			reports:    reports,
			activities: activities,
		},
		locator:  &LocationResolver{searcher: searcher, climate: climate},
		enricher: venue.NewEnricher(searcher, opts.Regions, opts.Currencies, opts.Venue),
		selector: opts.Selector,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recommendationService) Recommend(ctx context.Context, req contract.RecommendationRequest) (resp *contract.RecommendationResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "recommend", startedAt, fields, &err)

	if err := validateRecommendationRequest(req); err != nil {
		return nil, err
	}

	rctx, err := s.loader.Load(ctx, req.StudentID, req.Now)
	if err != nil {
		return nil, err
	}
	fields["student_id"] = rctx.Student.DisplayID()
	fields["age"] = rctx.Age

	budget := domain.FirstNonNil(req.Budget, rctx.Student.MonthlyBudget)
	flex := domain.Coalesce(req.Flexibility, domain.FlexModerate)

	loc := s.locator.Resolve(ctx, req, rctx.Student)
	for _, w := range loc.Warnings {
		logging.Ctx(ctx).Warn().Str("student_id", rctx.Student.DisplayID()).Msg(w)
	}

	recs := SelectActivities(rctx, recommend.FeasibilityContext{
		Budget:      budget,
		Flexibility: flex,
		ClimateZone: loc.ClimateZone,
		IsCoastal:   loc.IsCoastal,
	}, s.selector)
	fields["selected"] = len(recs)

	recs, location, approx, enrichWarnings := EnrichRecommendations(ctx, s.enricher, recs, loc)
	if location != nil {
		fields["country"] = location.Country
	}

	warnings := append(loc.Warnings, enrichWarnings...)
	return AssembleResponse(rctx, recs, location, approx, warnings), nil
}

func (s *recommendationService) Evaluate(ctx context.Context, studentRef string) ([]contract.CurrentActivityEvaluation, error) {
	rctx, err := s.loader.Load(ctx, studentRef, nil)
	if err != nil {
		return nil, err
	}
	return guidance.EvaluateCurrent(rctx.Activities, rctx.Profile), nil
}

func (s *recommendationService) ParentActions(ctx context.Context, studentRef string) ([]contract.ParentAction, error) {
	rctx, err := s.loader.Load(ctx, studentRef, nil)
	if err != nil {
		return nil, err
	}
	return guidance.GenerateParentActions(guidance.ActionRequest{
		Profile:           rctx.Profile,
		Age:               rctx.Age,
		CurrentActivities: rctx.Activities,
	}), nil
}

func validateRecommendationRequest(req contract.RecommendationRequest) error {
	if req.Budget != nil && (!finite(*req.Budget) || *req.Budget < 0) {
		return fmt.Errorf("%w: budget must be a non-negative number", ErrInvalidRequest)
	}
	if req.Flexibility != "" && !domain.ValidFlexibility[string(req.Flexibility)] {
		return fmt.Errorf("%w: unknown budget flexibility %q", ErrInvalidRequest, req.Flexibility)
	}
	if req.ClimateZone != "" && !domain.ValidClimateZones[string(req.ClimateZone)] {
		return fmt.Errorf("%w: unknown climate zone %q", ErrInvalidRequest, req.ClimateZone)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be given together", ErrInvalidRequest)
	}
	if req.Latitude != nil && (!finite(*req.Latitude) || *req.Latitude < -90 || *req.Latitude > 90) {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidRequest, *req.Latitude)
	}
	if req.Longitude != nil && (!finite(*req.Longitude) || *req.Longitude < -180 || *req.Longitude > 180) {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidRequest, *req.Longitude)
	}
	return nil
}

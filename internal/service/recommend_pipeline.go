package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/guidance"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/profile"
	"github.com/alexanderramin/sprout/internal/recommend"
	"github.com/alexanderramin/sprout/internal/region"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/alexanderramin/sprout/internal/venue"
)

// RecommendationContext bundles all data loaded for a recommendation cycle.
type RecommendationContext struct {
	Now        time.Time
	Student    *domain.Student
	Report     *domain.Report
	Activities []string
	Profile    domain.LearnerProfile
	Age        int
}

// ContextLoader loads the student, latest report and current activities.
type ContextLoader struct {
	students   repository.StudentRepo
	reports    repository.ReportRepo
	activities repository.CurrentActivityRepo
}

// Load resolves the student and derives the learner profile from the latest report.
func (cl *ContextLoader) Load(ctx context.Context, studentRef string, now *time.Time) (*RecommendationContext, error) {
	at := time.Now().UTC()
	if now != nil {
		at = *now
	}

	student, err := resolveStudent(ctx, cl.students, studentRef)
	if err != nil {
		return nil, err
	}

	report, err := latestReport(ctx, cl.reports, student)
	if err != nil {
		return nil, err
	}

	current, err := cl.activities.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("loading current activities: %w", err)
	}

	grade := student.Grade
	if strings.TrimSpace(grade) == "" {
		grade = report.Grade
	}

	return &RecommendationContext{
		Now:        at,
		Student:    student,
		Report:     report,
		Activities: activityNames(current),
		Profile:    profile.Analyze(report),
		Age:        domain.AgeFromGrade(grade),
	}, nil
}

// ResolvedLocation is where the family is, as far as the request and the
// student's stored address tell.
type ResolvedLocation struct {
	Coordinates *places.Coordinates
	ClimateZone domain.ClimateZone
	IsCoastal   *bool
	Warnings    []string
}

// LocationResolver turns explicit coordinates or an address into
// coordinates and derives the climate context from them.
type LocationResolver struct {
	searcher places.Searcher
	climate  region.ClimateDetector
}

// Resolve never fails the request: a failed geocode becomes a warning and
// the pipeline continues without venues.
func (lr *LocationResolver) Resolve(ctx context.Context, req contract.RecommendationRequest, student *domain.Student) ResolvedLocation {
	var loc ResolvedLocation

	switch {
	case req.Latitude != nil && req.Longitude != nil:
		loc.Coordinates = &places.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	default:
		address := strings.TrimSpace(req.Address)
		if address == "" {
			address = strings.TrimSpace(student.HomeAddress)
		}
		if address != "" {
			loc.Coordinates, loc.Warnings = lr.geocode(ctx, address)
		}
	}

	loc.ClimateZone = req.ClimateZone
	loc.IsCoastal = req.IsCoastal
	if loc.Coordinates != nil {
		if loc.ClimateZone == "" {
			loc.ClimateZone = lr.climate.DetectClimateZone(loc.Coordinates.Latitude, loc.Coordinates.Longitude)
		}
		if loc.IsCoastal == nil {
			coastal := lr.climate.IsCoastalRegion(loc.Coordinates.Latitude, loc.Coordinates.Longitude)
			loc.IsCoastal = &coastal
		}
	}
	return loc
}

func (lr *LocationResolver) geocode(ctx context.Context, address string) (*places.Coordinates, []string) {
	if lr.searcher == nil {
		return nil, []string{fmt.Sprintf("%v: address lookup is disabled", ErrLocationUnavailable)}
	}
	coords, err := lr.searcher.GeocodeLocation(ctx, address)
	if err != nil {
		return nil, []string{fmt.Sprintf("%v: %v", ErrLocationUnavailable, err)}
	}
	return coords, nil
}

// SelectActivities runs the diverse selector over the full catalog.
func SelectActivities(rctx *RecommendationContext, fctx recommend.FeasibilityContext, opts recommend.SelectorOptions) []contract.Recommendation {
	selections := recommend.Select(recommend.SelectionRequest{
		Profile:     rctx.Profile,
		Age:         rctx.Age,
		Feasibility: fctx,
		Candidates:  catalog.All(),
		Options:     opts,
	})
	return contract.NewRecommendations(selections)
}

// EnrichRecommendations attaches venues and local costs when a location is
// known. Without one the selector order and US-dollar costs stand.
func EnrichRecommendations(ctx context.Context, enricher *venue.Enricher, recs []contract.Recommendation, loc ResolvedLocation) ([]contract.Recommendation, *contract.Location, bool, []string) {
	if loc.Coordinates == nil || len(recs) == 0 {
		return recs, nil, false, nil
	}

	res := enricher.Enrich(ctx, recs, loc.Coordinates.Latitude, loc.Coordinates.Longitude)
	location := &contract.Location{
		Latitude:    loc.Coordinates.Latitude,
		Longitude:   loc.Coordinates.Longitude,
		Country:     res.Country,
		ClimateZone: loc.ClimateZone,
	}
	if loc.IsCoastal != nil {
		location.IsCoastal = *loc.IsCoastal
	}

	var warnings []string
	if res.Failures > 0 {
		warnings = append(warnings, fmt.Sprintf("venue lookup failed for %d of %d activities", res.Failures, len(recs)))
	}
	if res.CostApproximate {
		warnings = append(warnings, "costs are approximate: location is outside supported regions, shown in USD")
	}
	return res.Recommendations, location, res.CostApproximate, warnings
}

// AssembleResponse builds the final response from the pipeline outputs.
func AssembleResponse(
	rctx *RecommendationContext,
	recs []contract.Recommendation,
	location *contract.Location,
	costApproximate bool,
	warnings []string,
) *contract.RecommendationResponse {
	if recs == nil {
		recs = []contract.Recommendation{}
	}
	return &contract.RecommendationResponse{
		GeneratedAt:                rctx.Now,
		StudentID:                  rctx.Student.ID,
		StudentName:                rctx.Student.Name,
		Grade:                      rctx.Student.Grade,
		Age:                        rctx.Age,
		Profile:                    rctx.Profile,
		Recommendations:            recs,
		CurrentActivityEvaluations: guidance.EvaluateCurrent(rctx.Activities, rctx.Profile),
		ParentActions: guidance.GenerateParentActions(guidance.ActionRequest{
			Profile:           rctx.Profile,
			Age:               rctx.Age,
			CurrentActivities: rctx.Activities,
		}),
		Location:        location,
		CostApproximate: costApproximate,
		Warnings:        warnings,
	}
}

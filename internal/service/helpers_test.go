package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/alexanderramin/sprout/internal/testutil"
)

type testRepos struct {
	db         *sql.DB
	students   *repository.SQLiteStudentRepo
	reports    *repository.SQLiteReportRepo
	activities *repository.SQLiteCurrentActivityRepo
	uow        db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:         database,
		students:   repository.NewSQLiteStudentRepo(database),
		reports:    repository.NewSQLiteReportRepo(database),
		activities: repository.NewSQLiteCurrentActivityRepo(database),
		uow:        testutil.NewTestUoW(database),
	}
}

// seedStudent stores a student with a report and optional current activities.
func seedStudent(t *testing.T, r testRepos, s *domain.Student, report *domain.Report, activities ...string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, r.students.Create(ctx, s))
	if report != nil {
		report.StudentID = s.ID
		require.NoError(t, r.reports.Create(ctx, report))
	}
	for _, name := range activities {
		require.NoError(t, r.activities.Create(ctx, testutil.NewTestActivity(s.ID, name)))
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

// fakeSearcher returns two venues per activity and resolves every address
// to geo unless geoErr is set.
type fakeSearcher struct {
	mu        sync.Mutex
	geo       places.Coordinates
	geoErr    error
	addresses []string
	searched  []string
}

func (f *fakeSearcher) SearchVenuesForActivity(_ context.Context, name, _ string, lat, lng float64, _ int) ([]places.Venue, error) {
	f.mu.Lock()
	f.searched = append(f.searched, name)
	f.mu.Unlock()
	return []places.Venue{
		{Name: name + " Centre", PlaceID: name + "-1", Latitude: lat, Longitude: lng, Types: []string{}},
		{Name: name + " Club", PlaceID: name + "-2", Latitude: lat, Longitude: lng, Types: []string{}},
	}, nil
}

func (f *fakeSearcher) GeocodeLocation(_ context.Context, address string) (*places.Coordinates, error) {
	f.mu.Lock()
	f.addresses = append(f.addresses, address)
	f.mu.Unlock()
	if f.geoErr != nil {
		return nil, f.geoErr
	}
	c := f.geo
	return &c, nil
}

func floatPtr(v float64) *float64 { return &v }

package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/sprout/internal/cli"
	"github.com/alexanderramin/sprout/internal/config"
	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/logging"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/alexanderramin/sprout/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.Logging())

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	studentRepo := repository.NewSQLiteStudentRepo(database)
	reportRepo := repository.NewSQLiteReportRepo(database)
	activityRepo := repository.NewSQLiteCurrentActivityRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(nil)

	// Venue search and geocoding only run with a configured places API.
	var searcher places.Searcher
	if cfg.Places.Enabled {
		searcher = places.NewClient(cfg.Places, places.MultiObserver{places.LogObserver{}, places.MetricsObserver{}})
	} else {
		logging.Debug().Msg("places lookups disabled")
	}

	app := &cli.App{
		Students:   service.NewStudentService(studentRepo, uow, observer),
		Reports:    service.NewReportService(studentRepo, reportRepo, uow, observer),
		Activities: service.NewActivityService(studentRepo, activityRepo),
		Recommend: service.NewRecommendationService(studentRepo, reportRepo, activityRepo, searcher,
			service.RecommendationOptions{
				Selector: cfg.Selector(),
				Venue:    cfg.Venue(),
			}, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/moodtrack/moodtrack/internal/config"
	"github.com/moodtrack/moodtrack/internal/db"
	"github.com/moodtrack/moodtrack/internal/repository"
	"github.com/moodtrack/moodtrack/internal/service"
)

type App struct {
	Cfg     *config.Config
	DB      *sqlx.DB
	Journal *service.JournalService
	Report  *service.ReportService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB)
	if err != nil {
		db.Close(database)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	entryRepository := repository.NewEntryRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	settingRepository := repository.NewSettingRepository(database)
	backupRepository := repository.NewBackupRepository(database)

	// Services
	journalService := service.NewJournalService(
		entryRepository,
		goalRepository,
		settingRepository,
		backupRepository,
	)

	// Seeding runs here, outside any read path: a journal opened for the
	// first time gets the default goals exactly once.
	err = journalService.EnsureDefaultGoals()
	if err != nil {
		db.Close(database)
		return nil, fmt.Errorf("failed to seed default goals: %w", err)
	}

	reportService := service.NewReportService(journalService)

	return &App{
		Cfg:     cfg,
		DB:      database,
		Journal: journalService,
		Report:  reportService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}

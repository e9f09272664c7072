// Package app wires configuration, storage and services into one explicit application state.
package app

import (
	"fmt"
	"html/template"

	"github.com/portfolio-simple/config"
	"github.com/portfolio-simple/database"
	"github.com/portfolio-simple/lib/filestore"
	"github.com/portfolio-simple/metrics"
	"github.com/portfolio-simple/repositories"
	"github.com/portfolio-simple/services"
	"github.com/portfolio-simple/templates"
	"go.uber.org/zap"
)

// App is constructed once at startup and handed to the router
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Files     *filestore.Store
	Projects  *services.ProjectService
	Auth      *services.AuthService
	Metrics   *metrics.Metrics
	Templates *template.Template

	db *database.DBConnection
}

// New opens storage (migrating the schema) and builds the services
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	store, db, err := openStore(cfg, log)
	if err != nil {
		return nil, err
	}

	tmpl, err := templates.Load()
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	m := metrics.New()
	files := filestore.New(cfg.Uploads.Dir, cfg.Uploads.AllowedExtensions)

	return &App{
		Config:    cfg,
		Logger:    log,
		Files:     files,
		Projects:  services.NewProjectService(store, files, log.Named("projects"), m),
		Auth:      services.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, cfg.Session.Secret),
		Metrics:   m,
		Templates: tmpl,
		db:        db,
	}, nil
}

// Close releases the database connection, if any
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openStore(cfg *config.Config, log *zap.Logger) (repositories.ProjectStore, *database.DBConnection, error) {
	if cfg.Database.URL == config.MemoryDatabase {
		log.Warn("using in-memory project storage, projects are lost on restart")
		return repositories.NewMemoryProjectRepository(), nil, nil
	}

	db, err := database.NewDBConnection("portfolio", cfg.Database.URL, log)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		closeDB(db, log)
		return nil, nil, err
	}
	return repositories.NewProjectRepository(db.DB), db, nil
}

func closeDB(db *database.DBConnection, log *zap.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Warn("failed to close database", zap.Error(err))
	}
}

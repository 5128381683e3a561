// Package app wires configuration, storage and the compliance engine together
// for the server and the CLI.
package app

import (
	"fmt"

	"ib-compliance/internal/catalog"
	"ib-compliance/internal/compliance"
	"ib-compliance/internal/config"
	"ib-compliance/internal/database"
	"ib-compliance/internal/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	DB     *gorm.DB
	Engine *compliance.Engine
	Risks  *store.Risks
	Log    *zap.Logger
}

// New checks the catalog table, connects to the database and builds the engine.
// It does not seed; callers run Engine.Seed as an explicit step.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	mode, err := catalog.ParseMode(cfg.CatalogMode)
	if err != nil {
		return nil, err
	}
	// битый каталог должен ронять запуск, а не первый запрос
	if _, err := catalog.Load(cfg.CatalogFile, mode); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		return nil, err
	}
	return Wire(db, cfg.CatalogFile, mode, log), nil
}

// Wire builds the engine on an already migrated database.
func Wire(db *gorm.DB, catalogFile string, mode catalog.Mode, log *zap.Logger) *App {
	controls := store.NewControls(db)
	generate := func() ([]catalog.Definition, error) {
		return catalog.Load(catalogFile, mode)
	}
	seeder := compliance.NewSeeder(controls, generate, log)

	return &App{
		DB:     db,
		Engine: compliance.NewEngine(controls, seeder, catalog.ISO27001, log),
		Risks:  store.NewRisks(db),
		Log:    log,
	}
}

func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

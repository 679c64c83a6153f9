package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rotopt/config"
	"rotopt/database"
	"rotopt/router"

	// Auth
	authCtrlImp "rotopt/pkg/auth/controllerImp"

	// Field
	fieldCtrlImp "rotopt/pkg/field/controllerImp"
	fieldRepoImp "rotopt/pkg/field/repositoryImp"
	fieldSvcImp "rotopt/pkg/field/serviceImp"

	// History
	histCtrlImp "rotopt/pkg/history/controllerImp"
	histRepoImp "rotopt/pkg/history/repositoryImp"

	// Rotation engine
	rotCtrlImp "rotopt/pkg/rotation/controllerImp"
	rotRepoImp "rotopt/pkg/rotation/repositoryImp"
	rotSvc "rotopt/pkg/rotation/serviceImp"

	// Collaborators
	"rotopt/pkg/climate"
	"rotopt/pkg/knowledge"
	"rotopt/pkg/market"

	// Health
	healthCtrlImp "rotopt/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Knowledge tables (built-in, with optional file overrides)
	tables, err := knowledge.LoadFromFiles(cfg.TraitsCSV, cfg.BenefitsXLSX)
	if err != nil {
		log.Printf("knowledge warn: %v (using defaults)", err)
		tables = knowledge.Default()
	}

	// 5) Repos/Controllers
	fRepo := fieldRepoImp.New(db)
	hRepo := histRepoImp.New(db)
	rRepo := rotRepoImp.New(db)
	fCtrl := fieldCtrlImp.New(fieldSvcImp.NewFieldService(fRepo))
	hiCtrl := histCtrlImp.New(hRepo)

	// Rotation service depends on the knowledge tables + market/climate mocks
	svc := rotSvc.NewRotationService(rRepo, tables, market.NewStatic(), climate.NewStatic(), cfg.Optimizer, cfg.StrictConstraints)
	rCtrl := rotCtrlImp.NewRotationCtrl(db, svc)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	heCtrl := healthCtrlImp.NewHealthCtrl(db, tables, cfg.Optimizer)

	// 6) Router
	r := router.New(
		e,
		cfg.RequireAuth,
		fCtrl,
		rCtrl.Generate,
		rCtrl.List,
		hiCtrl,
		authCtrl,
		heCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

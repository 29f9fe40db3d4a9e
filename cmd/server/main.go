package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"propai/config"
	"propai/database"
	"propai/router"

	"propai/pkg/ai"
	"propai/pkg/compare"
	"propai/pkg/embedder"
	"propai/pkg/rag"

	analysisCtrlImp "propai/pkg/analysis/controllerImp"
	analysisSvcImp "propai/pkg/analysis/serviceImp"
	compareCtrlImp "propai/pkg/compare/controllerImp"
	docCtrlImp "propai/pkg/document/controllerImp"
	docRepoImp "propai/pkg/document/repositoryImp"
	guidelineCtrlImp "propai/pkg/guideline/controllerImp"
	guidelineSvcImp "propai/pkg/guideline/serviceImp"
	healthCtrlImp "propai/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.BodyLimit("20M"))

	// 4) External backends
	emb := embedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel, cfg.EmbTimeout)

	var llm ai.Client
	if cfg.GeminiAPIKey != "" {
		llm = ai.NewGemini(cfg.GeminiEndpoint, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, cfg.GeminiRPM)
	} else {
		log.Printf("WARN: GEMINI_API_KEY not set, using mock client")
		llm = ai.NewMock()
	}

	// 5) Registry + repos
	reg := rag.NewRegistry(cfg.IndexCapacity, cfg.IndexTTL)
	docRepo := docRepoImp.New(db)

	// 6) Services + controllers
	gSvc := guidelineSvcImp.New(emb, llm, reg, docRepo, cfg.ChunkSize, cfg.ChunkOverlap, cfg.RetrieveK)
	gCtrl := guidelineCtrlImp.New(gSvc, cfg.AllowedHosts)

	aSvc := analysisSvcImp.New(llm, docRepo)
	aCtrl := analysisCtrlImp.New(aSvc)

	cmpCtrl := compareCtrlImp.New(compare.New(emb, llm))
	dCtrl := docCtrlImp.New(docRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, reg)

	// 7) Router
	r := router.New(
		e,
		gCtrl,
		aCtrl,
		cmpCtrl.CompareJSON,
		dCtrl.List,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	guidelineCtrl interface {
		Upload(echo.Context) error
		UploadURL(echo.Context) error
		Ask(echo.Context) error
		AskDocument(echo.Context) error
	},
	analysisCtrl interface {
		Novelty(echo.Context) error
		Plagiarism(echo.Context) error
		Cost(echo.Context) error
		Timeline(echo.Context) error
		ExtractJSON(echo.Context) error
		Validate(echo.Context) error
	},
	compareJSON func(echo.Context) error,
	documentsList func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	// RAG question answering
	api.POST("/upload-guidelines", guidelineCtrl.Upload)
	api.POST("/upload-guidelines-url", guidelineCtrl.UploadURL)
	api.POST("/ask-guidelines", guidelineCtrl.Ask)
	api.POST("/ask-json", guidelineCtrl.AskDocument)

	// whole-document analysis
	api.POST("/check-novelty", analysisCtrl.Novelty)
	api.POST("/check-plagiarism", analysisCtrl.Plagiarism)
	api.POST("/check-cost", analysisCtrl.Cost)
	api.POST("/timeline", analysisCtrl.Timeline)
	api.POST("/extract-json", analysisCtrl.ExtractJSON)
	api.POST("/validateProposal", analysisCtrl.Validate)

	api.POST("/compare-json", compareJSON)
	api.GET("/documents", documentsList)

	return e
}

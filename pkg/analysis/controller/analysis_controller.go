package controller

import "github.com/labstack/echo/v4"

type AnalysisController interface {
	Novelty(c echo.Context) error
	Plagiarism(c echo.Context) error
	Cost(c echo.Context) error
	Timeline(c echo.Context) error
	ExtractJSON(c echo.Context) error
	Validate(c echo.Context) error
}

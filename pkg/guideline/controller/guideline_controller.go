package controller

import "github.com/labstack/echo/v4"

type GuidelineController interface {
	Upload(c echo.Context) error
	UploadURL(c echo.Context) error
	Ask(c echo.Context) error
	AskDocument(c echo.Context) error
}

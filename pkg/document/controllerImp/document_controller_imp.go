package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"propai/pkg/document/repository"
)

type DocCtrl struct{ r repository.DocumentRepository }

func New(r repository.DocumentRepository) *DocCtrl { return &DocCtrl{r: r} }

// List returns the audit records of every successful upload, newest first.
func (h *DocCtrl) List(c echo.Context) error {
	docs, err := h.r.ListDocuments()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, docs)
}

package controllerImp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"propai/pkg/ai"
	"propai/pkg/analysis/controller"
	"propai/pkg/analysis/service"
	"propai/pkg/apperr"
)

type analysisCtrl struct{ s service.AnalysisService }

func New(s service.AnalysisService) controller.AnalysisController { return &analysisCtrl{s: s} }

func (h *analysisCtrl) Novelty(c echo.Context) error {
	return h.scorePDF(c, h.s.Novelty)
}

func (h *analysisCtrl) Plagiarism(c echo.Context) error {
	return h.scorePDF(c, h.s.Plagiarism)
}

func (h *analysisCtrl) Cost(c echo.Context) error {
	return h.scorePDF(c, h.s.Cost)
}

func (h *analysisCtrl) Timeline(c echo.Context) error {
	return h.scorePDF(c, h.s.Timeline)
}

// ExtractJSON accepts any loader-supported document, not just PDFs.
func (h *analysisCtrl) ExtractJSON(c echo.Context) error {
	filename, data, err := formDocument(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	res, err := h.s.ExtractJSON(c.Request().Context(), filename, data)
	if err != nil {
		return jsonError(c, err)
	}
	if res.Parsed() {
		return c.JSONBlob(http.StatusOK, res.JSON)
	}
	return c.JSON(http.StatusOK, map[string]string{"raw_output": res.Raw})
}

func (h *analysisCtrl) Validate(c echo.Context) error {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}
	issues, err := h.s.Validate(c.Request().Context(), body.Content)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"issues": issues})
}

type scoreFn func(ctx context.Context, filename string, data []byte) (ai.Result, error)

func (h *analysisCtrl) scorePDF(c echo.Context, fn scoreFn) error {
	filename, data, err := formDocument(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only PDF files are allowed"})
	}

	res, err := fn(c.Request().Context(), filename, data)
	if err != nil {
		return jsonError(c, err)
	}
	if res.Parsed() {
		return c.JSONBlob(http.StatusOK, res.JSON)
	}
	return c.JSON(http.StatusOK, map[string]string{"raw": res.Raw})
}

func formDocument(c echo.Context) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, errors.New("file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, data, nil
}

func jsonError(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), map[string]string{"error": apperr.Message(err)})
}

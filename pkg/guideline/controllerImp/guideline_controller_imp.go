package controllerImp

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"propai/pkg/apperr"
	"propai/pkg/guideline/controller"
	"propai/pkg/guideline/service"
)

type guidelineCtrl struct {
	s     service.GuidelineService
	allow map[string]bool
}

func New(s service.GuidelineService, allowedHosts []string) controller.GuidelineController {
	allow := map[string]bool{}
	for _, h := range allowedHosts {
		if h = strings.TrimSpace(strings.ToLower(h)); h != "" {
			allow[h] = true
		}
	}
	return &guidelineCtrl{s: s, allow: allow}
}

// Upload accepts a multipart PDF and indexes it under its own filename.
func (h *guidelineCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only PDF files are allowed"})
	}
	data, err := readAll(fh)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read upload: " + err.Error()})
	}

	if _, _, err := h.s.UploadPDF(c.Request().Context(), fh.Filename, data); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "PDF uploaded and indexed successfully as '" + fh.Filename + "'.",
	})
}

// UploadURL fetches an allow-listed HTML page and indexes its main text.
func (h *guidelineCtrl) UploadURL(c echo.Context) error {
	var body struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil || u.Host == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	text, title, err := fetchMainText(c.Request().Context(), body.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	name := body.Name
	if name == "" {
		name = title
	}
	if name == "" {
		name = path.Base(u.Path)
	}

	n, err := h.s.UploadText(c.Request().Context(), name, text, body.URL)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Page indexed successfully as '" + name + "'.",
		"chunks":  n,
	})
}

// Ask answers a question against a previously uploaded file.
func (h *guidelineCtrl) Ask(c echo.Context) error {
	filename := strings.TrimSpace(c.FormValue("filename"))
	question := strings.TrimSpace(c.FormValue("question"))
	if filename == "" || question == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "filename and question are required"})
	}

	answer, err := h.s.Ask(c.Request().Context(), filename, question)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"filename": filename,
		"question": question,
		"answer":   answer,
	})
}

// AskDocument answers against an uploaded JSON document in one shot.
func (h *guidelineCtrl) AskDocument(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".json" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only JSON files are allowed"})
	}
	question := strings.TrimSpace(c.FormValue("question"))
	if question == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "question is required"})
	}
	data, err := readAll(fh)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read upload: " + err.Error()})
	}

	answer, err := h.s.AskDocument(c.Request().Context(), fh.Filename, data, question)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"question": question,
		"answer":   answer,
	})
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func jsonError(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), map[string]string{"error": apperr.Message(err)})
}

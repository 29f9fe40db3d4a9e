package controllerImp

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propai/pkg/apperr"
)

type stubService struct {
	askErr error
	answer string
}

func (s *stubService) UploadPDF(context.Context, string, []byte) (int, int, error) {
	return 1, 1, nil
}
func (s *stubService) UploadText(context.Context, string, string, string) (int, error) {
	return 1, nil
}
func (s *stubService) Ask(_ context.Context, filename, _ string) (string, error) {
	if s.askErr != nil {
		return "", s.askErr
	}
	return s.answer, nil
}
func (s *stubService) AskDocument(context.Context, string, []byte, string) (string, error) {
	return s.answer, nil
}

func multipartBody(t *testing.T, field, filename string, content []byte, extra map[string]string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range extra {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func do(h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestUploadRejectsNonPDF(t *testing.T) {
	ctrl := New(&stubService{}, nil)
	body, ct := multipartBody(t, "file", "notes.txt", []byte("x"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload-guidelines", body)
	req.Header.Set(echo.HeaderContentType, ct)

	rec := do(ctrl.Upload, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Only PDF files are allowed", resp["error"])
}

func TestUploadMissingFile(t *testing.T) {
	ctrl := New(&stubService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload-guidelines", nil)

	rec := do(ctrl.Upload, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskUnknownFilenameIs404(t *testing.T) {
	ctrl := New(&stubService{
		askErr: apperr.New(apperr.NotFound, "No indexed PDF found for 'missing.pdf'."),
	}, nil)

	form := url.Values{"filename": {"missing.pdf"}, "question": {"anything?"}}
	req := httptest.NewRequest(http.MethodPost, "/api/ask-guidelines", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := do(ctrl.Ask, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "No indexed PDF found for 'missing.pdf'."}`, rec.Body.String())
}

func TestAskMissingFields(t *testing.T) {
	ctrl := New(&stubService{}, nil)
	form := url.Values{"filename": {"a.pdf"}}
	req := httptest.NewRequest(http.MethodPost, "/api/ask-guidelines", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := do(ctrl.Ask, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskHappyPath(t *testing.T) {
	ctrl := New(&stubService{answer: "42"}, nil)
	form := url.Values{"filename": {"g.pdf"}, "question": {"what?"}}
	req := httptest.NewRequest(http.MethodPost, "/api/ask-guidelines", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := do(ctrl.Ask, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "g.pdf", resp["filename"])
	assert.Equal(t, "what?", resp["question"])
	assert.Equal(t, "42", resp["answer"])
}

func TestAskGenerationFailureIs502(t *testing.T) {
	ctrl := New(&stubService{
		askErr: apperr.New(apperr.Generation, "gemini returned empty text"),
	}, nil)
	form := url.Values{"filename": {"g.pdf"}, "question": {"what?"}}
	req := httptest.NewRequest(http.MethodPost, "/api/ask-guidelines", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := do(ctrl.Ask, req)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAskDocumentRejectsNonJSON(t *testing.T) {
	ctrl := New(&stubService{}, nil)
	body, ct := multipartBody(t, "file", "doc.pdf", []byte("x"), map[string]string{"question": "q?"})
	req := httptest.NewRequest(http.MethodPost, "/api/ask-json", body)
	req.Header.Set(echo.HeaderContentType, ct)

	rec := do(ctrl.AskDocument, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Only JSON files are allowed", resp["error"])
}

func TestUploadURLDisallowedHost(t *testing.T) {
	ctrl := New(&stubService{}, []string{"docs.example.org"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-guidelines-url",
		strings.NewReader(`{"url": "https://evil.example.com/page"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := do(ctrl.UploadURL, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadURLMissingURL(t *testing.T) {
	ctrl := New(&stubService{}, []string{"docs.example.org"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-guidelines-url", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := do(ctrl.UploadURL, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package controllerImp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"propai/pkg/apperr"
	"propai/pkg/compare"
)

type CompareCtrl struct{ cmp *compare.Comparer }

func New(cmp *compare.Comparer) *CompareCtrl { return &CompareCtrl{cmp: cmp} }

// CompareJSON scores two uploaded JSON documents against each other.
func (h *CompareCtrl) CompareJSON(c echo.Context) error {
	a, err := formJSON(c, "file1")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	b, err := formJSON(c, "file2")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	rep, err := h.cmp.Compare(c.Request().Context(), a, b)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": apperr.Message(err)})
	}
	return c.JSON(http.StatusOK, rep)
}

func formJSON(c echo.Context, field string) (map[string]any, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, errors.New(field + " is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.New(field + " is not a JSON object")
	}
	return out, nil
}

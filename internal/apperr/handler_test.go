package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{
			name:     "validation error",
			err:      NewValidation("no sentence entered"),
			status:   http.StatusBadRequest,
			expected: `{"error":"no sentence entered","title":"validation error"}`,
		},
		{
			name:     "not found error",
			err:      NewNotFound("symbol", "Hann"),
			status:   http.StatusNotFound,
			expected: `{"error":"symbol Hann not found","title":"not found"}`,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			status:   http.StatusMethodNotAllowed,
			expected: `{"error":"method not allowed"}`,
		},
		{
			name:     "wrapped validation error",
			err:      fmt.Errorf("analyze: %w", NewValidationWrap("invalid mode", errors.New("bad"))),
			status:   http.StatusBadRequest,
			expected: `{"error":"invalid mode","title":"validation error"}`,
		},
		{
			name:     "unhandled error",
			err:      errors.New("boom"),
			status:   http.StatusInternalServerError,
			expected: `{"error":"internal server error"}`,
		},
	}

	e := echo.New()
	handler := GlobalErrorHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	GlobalErrorHandler()(NewNotFound("symbol", "Eg"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGlobalErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	GlobalErrorHandler()(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

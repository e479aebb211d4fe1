package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error" example:"no sentence entered"`
	Title string `json:"title,omitempty" example:"validation error"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := toResponse(err)
		if status >= http.StatusInternalServerError {
			slog.Error("Request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			slog.Error("Failed to write error response", "error", werr)
		}
	}
}

func toResponse(err error) (int, ErrorResponse) {
	var (
		ve *ValidationError
		nf *NotFoundError
		he *echo.HTTPError
	)

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorResponse{Error: ve.Message, Title: "validation error"}
	case errors.As(err, &nf):
		return http.StatusNotFound, ErrorResponse{Error: nf.Error(), Title: "not found"}
	case errors.As(err, &he):
		return he.Code, ErrorResponse{Error: fmt.Sprint(he.Message)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleError is installed as echo's HTTPErrorHandler. Validation errors map
// to 400, missing orders to 404 and everything else to a logged 500.
func (s *Server) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := s.classify(c, err)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, Error{Code: code, Message: message})
	}
	if writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
	}
}

func (s *Server) classify(c echo.Context, err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			s.logger.ErrorContext(c.Request().Context(), "request failed", "error", err)
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errs.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed", "error", err)
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func badRequest(format string, args ...any) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

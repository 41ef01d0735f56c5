package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sparkAgent/pkg/logger"
)

// ErrorHandler is the echo HTTPErrorHandler. Client errors keep their
// message, server errors get a generic body so internals never leak.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if code < http.StatusInternalServerError {
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(code, map[string]string{"message": message}); err != nil {
		logger.Error("Failed to write error response", err)
	}
}

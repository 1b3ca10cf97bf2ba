package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	// Store calls run under a bounded request deadline. When it fires the
	// failure is transient, so callers should retry rather than treat it
	// as a terminal error.
	if c.Request().Context().Err() != nil {
		code = http.StatusServiceUnavailable
		msg = "ledger busy, try again"
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}

package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/fault"
)

// statusFromError maps the failure taxonomy to transport codes.
func statusFromError(err error) int {
	switch fault.KindOf(err) {
	case fault.KindValidation:
		return http.StatusUnprocessableEntity
	case fault.KindNotFound:
		return http.StatusNotFound
	case fault.KindStateConflict:
		return http.StatusConflict
	case fault.KindPersistence:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func fail(c echo.Context, err error) error {
	return c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
}

// parseDate accepts canonical YYYY-MM-DD and returns midnight UTC.
func parseDate(raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// actorID pulls the acting identity set by the gateway.
func actorID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get("X-Actor-Id"))
}

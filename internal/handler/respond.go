package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/harshbadhann2/society-home-connect/internal/backend"
)

// errInvalidID is returned for a non-numeric or non-positive :id.
var errInvalidID = errors.New("invalid id")

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}

// backendFailure answers a failed backend call. Only the kind is exposed;
// driver text stays in the logs.
func backendFailure(c echo.Context, err error) error {
	switch backend.KindOf(err) {
	case backend.KindNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case backend.KindConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "conflicts with an existing record"})
	case backend.KindInvalid:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rejected by the database"})
	case backend.KindTableMissing, backend.KindTransient, backend.KindPermissionDenied:
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "data store unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

package api

import (
	"log/slog"
	"net/http"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingActor = errs.New("authenticated user missing from context")

// abortWithUsecaseError maps the shared error kinds onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortInvalid(c, err)
	case errs.Is(err, errs.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrNoAvailability):
		httperr.AbortWithError(c, http.StatusConflict, err, "No rooms available for the selected dates", nil)
	case errs.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	default:
		slog.Error("request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortInvalid(c, err)
}

// Package api binds the trip, booking, destination and user services to
// HTTP. Handlers are closures over the ports interfaces so tests can feed
// in mocks.
package api

import (
	"errors"
	"net/http"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/utils"
)

func getApiError(err error) utils.ApiError {
	ae := utils.ApiError{Msg: err.Error()}
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrInvalidState):
		ae.StatusCode = http.StatusBadRequest
	case errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrDestinationNotFound):
		ae.StatusCode = http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		ae.StatusCode = http.StatusForbidden
	case errors.Is(err, models.ErrNotImplemented):
		ae.StatusCode = http.StatusNotImplemented
	default:
		ae.StatusCode = http.StatusInternalServerError
	}
	return ae
}

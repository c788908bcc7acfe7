package api

import (
	"net/http"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/middleware"
	"github.com/kabirm/safarnama/internal/ports"
	"github.com/kabirm/safarnama/internal/utils"
	"github.com/google/uuid"
)

func CreateBookingHandler(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			ae := utils.NewUnauthorized("authorization required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		var request models.CreateBookingRequest
		if err := utils.JsonDecodeBody(r, &request); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		booking, err := service.CreateBooking(r.Context(), caller, &request)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, booking)
	}
}

func GetBookingHandler(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			ae := utils.NewUnauthorized("authorization required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		id, err := parseBookingID(r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		booking, err := service.GetBooking(r.Context(), caller, id)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, booking)
	}
}

func TripBookingsHandler(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			ae := utils.NewUnauthorized("authorization required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		bookings, err := service.TripBookings(r.Context(), caller, r.PathValue("tripId"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, bookings)
	}
}

func CancelBookingHandler(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			ae := utils.NewUnauthorized("authorization required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		id, err := parseBookingID(r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		booking, err := service.CancelBooking(r.Context(), caller, id)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, booking)
	}
}

func parseBookingID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, models.ErrInvalidID
	}
	return id, nil
}

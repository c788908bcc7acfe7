package api

import (
	"net/http"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/ports"
	"github.com/kabirm/safarnama/internal/utils"
)

func PlanTripHandler(service ports.TripService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.TripRequest
		if err := utils.JsonDecodeBody(r, &request); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		plan, err := service.PlanTrip(r.Context(), &request)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, plan)
	}
}

func GetTripHandler(service ports.TripService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := service.GetTrip(r.Context(), r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, plan)
	}
}

func UserTripsHandler(service ports.TripService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plans, err := service.UserTrips(r.Context(), r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, plans)
	}
}

func BookTripHandler(service ports.TripService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.BookTrip(r.Context(), r.PathValue("id")); err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, nil)
	}
}

package api

import (
	"net/http"
	"strconv"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/ports"
	"github.com/kabirm/safarnama/internal/utils"
)

func GetDestinationHandler(catalog ports.DestinationCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destination, err := catalog.GetByID(r.Context(), r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, destination)
	}
}

func SearchDestinationsHandler(catalog ports.DestinationCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.DestinationSearchRequest
		if err := utils.JsonDecodeBody(r, &request); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		results, err := catalog.Search(r.Context(), request.Query, request.Limit)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, results)
	}
}

func PopularDestinationsHandler(catalog ports.DestinationCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		country := r.URL.Query().Get("country")

		results, err := catalog.Popular(r.Context(), limit, country)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, results)
	}
}

func DestinationActivitiesHandler(catalog ports.DestinationCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := catalog.Activities(r.Context(), r.PathValue("id"))
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, activities)
	}
}

package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/api"
	"github.com/kabirm/safarnama/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlanTripHandler(t *testing.T) {
	payload := []byte(`{
		"destination": "Goa",
		"start_date": "2024-01-10",
		"end_date": "2024-01-12",
		"budget": 10000,
		"interests": ["beach"]
	}`)

	t.Run("returns generated plan", func(t *testing.T) {
		svc := new(mocks.MockTripService)
		svc.On("PlanTrip", mock.Anything, mock.AnythingOfType("*models.TripRequest")).
			Return(&models.TripPlan{Destination: "Goa"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/trips/plan", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		api.PlanTripHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Goa")
		svc.AssertExpectations(t)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		svc := new(mocks.MockTripService)
		svc.On("PlanTrip", mock.Anything, mock.Anything).
			Return(nil, models.ErrInvalidDates)

		req := httptest.NewRequest(http.MethodPost, "/v1/trips/plan", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		api.PlanTripHandler(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "end date must be after start date")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mocks.MockTripService)
		req := httptest.NewRequest(http.MethodPost, "/v1/trips/plan", bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		api.PlanTripHandler(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "PlanTrip")
	})
}

func TestUnimplementedTripHandlers(t *testing.T) {
	t.Run("get trip", func(t *testing.T) {
		svc := new(mocks.MockTripService)
		svc.On("GetTrip", mock.Anything, "trip-1").Return(nil, models.ErrNotImplemented)

		req := httptest.NewRequest(http.MethodGet, "/v1/trips/trip-1", nil)
		req.SetPathValue("id", "trip-1")
		rec := httptest.NewRecorder()
		api.GetTripHandler(svc)(rec, req)

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})

	t.Run("user trips", func(t *testing.T) {
		svc := new(mocks.MockTripService)
		svc.On("UserTrips", mock.Anything, "u1").Return(nil, models.ErrNotImplemented)

		req := httptest.NewRequest(http.MethodGet, "/v1/trips/user/u1", nil)
		req.SetPathValue("id", "u1")
		rec := httptest.NewRecorder()
		api.UserTripsHandler(svc)(rec, req)

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})

	t.Run("book trip", func(t *testing.T) {
		svc := new(mocks.MockTripService)
		svc.On("BookTrip", mock.Anything, "trip-1").Return(models.ErrNotImplemented)

		req := httptest.NewRequest(http.MethodPost, "/v1/trips/trip-1/book", nil)
		req.SetPathValue("id", "trip-1")
		rec := httptest.NewRecorder()
		api.BookTripHandler(svc)(rec, req)

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})
}

func TestMeHandler(t *testing.T) {
	t.Run("echoes identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.MeHandler()(rec, authedRequest(http.MethodGet, "/v1/users/me", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), caller.Email)
	})

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.MeHandler()(rec, httptest.NewRequest(http.MethodGet, "/v1/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

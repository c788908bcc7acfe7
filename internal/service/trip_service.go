package service

import (
	"context"
	"time"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/ports"
)

type tripService struct {
	validator ports.RequestValidator
	strategy  ports.ItineraryStrategy
	ids       ports.IDGenerator
}

func NewTripService(validator ports.RequestValidator, strategy ports.ItineraryStrategy, ids ports.IDGenerator) *tripService {
	return &tripService{
		validator: validator,
		strategy:  strategy,
		ids:       ids,
	}
}

func (s *tripService) PlanTrip(ctx context.Context, request *models.TripRequest) (*models.TripPlan, error) {
	if err := s.validator.ValidateTripRequest(request); err != nil {
		return nil, err
	}
	applyDefaults(request)

	plan, err := s.strategy.GeneratePlan(ctx, request)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan.ID = s.ids.NewID()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	return plan, nil
}

// GetTrip requires trip persistence, which is not wired up yet.
func (s *tripService) GetTrip(ctx context.Context, id string) (*models.TripPlan, error) {
	return nil, models.ErrNotImplemented
}

func (s *tripService) UserTrips(ctx context.Context, userID string) ([]models.TripPlan, error) {
	return nil, models.ErrNotImplemented
}

func (s *tripService) BookTrip(ctx context.Context, tripID string) error {
	return models.ErrNotImplemented
}

func applyDefaults(request *models.TripRequest) {
	if request.BudgetLevel == "" {
		request.BudgetLevel = models.BudgetMidRange
	}
	if request.Travelers == 0 {
		request.Travelers = 1
	}
	if request.TravelerType == "" {
		request.TravelerType = models.TravelerSolo
	}
}

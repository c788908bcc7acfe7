// Package mocks holds testify doubles for the ports interfaces.
package mocks

import (
	"context"

	models "github.com/kabirm/safarnama/internal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if fn, ok := args.Get(0).(func(context.Context, *models.Booking) *models.Booking); ok {
		return fn(ctx, booking), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookingsByTrip(ctx context.Context, ownerKey, tripID string) ([]models.Booking, error) {
	args := m.Called(ctx, ownerKey, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if fn, ok := args.Get(0).(func(context.Context, *models.Booking) *models.Booking); ok {
		return fn(ctx, booking), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Charge(ctx context.Context, amount decimal.Decimal, method models.PaymentMethod) (models.PaymentResult, error) {
	args := m.Called(ctx, amount, method)
	return args.Get(0).(models.PaymentResult), args.Error(1)
}

type MockIDGenerator struct {
	mock.Mock
}

func (m *MockIDGenerator) NewID() uuid.UUID {
	args := m.Called()
	return args.Get(0).(uuid.UUID)
}

type MockItineraryStrategy struct {
	mock.Mock
}

func (m *MockItineraryStrategy) GeneratePlan(ctx context.Context, request *models.TripRequest) (*models.TripPlan, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TripPlan), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, caller models.Identity, request *models.CreateBookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, caller, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) TripBookings(ctx context.Context, caller models.Identity, tripID string) ([]models.Booking, error) {
	args := m.Called(ctx, caller, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) PlanTrip(ctx context.Context, request *models.TripRequest) (*models.TripPlan, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TripPlan), args.Error(1)
}

func (m *MockTripService) GetTrip(ctx context.Context, id string) (*models.TripPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TripPlan), args.Error(1)
}

func (m *MockTripService) UserTrips(ctx context.Context, userID string) ([]models.TripPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TripPlan), args.Error(1)
}

func (m *MockTripService) BookTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

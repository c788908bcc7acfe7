package ports

import (
	"context"

	models "github.com/kabirm/safarnama/internal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookingsByTrip(ctx context.Context, ownerKey, tripID string) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, caller models.Identity, request *models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Booking, error)
	TripBookings(ctx context.Context, caller models.Identity, tripID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Booking, error)
}

type TripService interface {
	PlanTrip(ctx context.Context, request *models.TripRequest) (*models.TripPlan, error)
	GetTrip(ctx context.Context, id string) (*models.TripPlan, error)
	UserTrips(ctx context.Context, userID string) ([]models.TripPlan, error)
	BookTrip(ctx context.Context, tripID string) error
}

// ItineraryStrategy expands a validated trip request into a plan. The fixed
// day-template strategy is the default; a cost-optimizing allocator can be
// swapped in without touching the TripPlan contract.
type ItineraryStrategy interface {
	GeneratePlan(ctx context.Context, request *models.TripRequest) (*models.TripPlan, error)
}

// PaymentGateway charges the given amount. The in-process gateway settles
// synchronously; a real gateway implementation may block and fail.
type PaymentGateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, method models.PaymentMethod) (models.PaymentResult, error)
}

type IDGenerator interface {
	NewID() uuid.UUID
}

type RequestValidator interface {
	ValidateTripRequest(request *models.TripRequest) error
	ValidateCreateBooking(request *models.CreateBookingRequest) error
}

type DestinationCatalog interface {
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	Search(ctx context.Context, query string, limit int) ([]models.Destination, error)
	Popular(ctx context.Context, limit int, country string) ([]models.Destination, error)
	Activities(ctx context.Context, destinationID string) ([]models.DestinationActivity, error)
}

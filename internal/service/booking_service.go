package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/auth"
	"github.com/kabirm/safarnama/internal/ports"
	"github.com/google/uuid"
)

type bookingService struct {
	repo      ports.BookingRepository
	gateway   ports.PaymentGateway
	ids       ports.IDGenerator
	validator ports.RequestValidator
	currency  string

	// locks serializes mutations per booking id so concurrent cancels on
	// the same record cannot race the read-check-write cycle.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewBookingService(repo ports.BookingRepository, gateway ports.PaymentGateway, ids ports.IDGenerator,
	validator ports.RequestValidator, currency string) *bookingService {
	return &bookingService{
		repo:      repo,
		gateway:   gateway,
		ids:       ids,
		validator: validator,
		currency:  currency,
		locks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, caller models.Identity, request *models.CreateBookingRequest) (*models.Booking, error) {
	if err := s.validator.ValidateCreateBooking(request); err != nil {
		return nil, err
	}

	items := make([]models.BookingItem, len(request.Items))
	copy(items, request.Items)
	for i := range items {
		if items[i].Quantity == 0 {
			items[i].Quantity = 1
		}
	}

	// Total is fixed at creation and never recomputed after mutation.
	total := request.TotalAmount()

	result, err := s.gateway.Charge(ctx, total, request.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("payment charge failed: %w", err)
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:              s.ids.NewID(),
		UserID:          caller.Email,
		TripID:          request.TripID,
		Items:           items,
		Status:          models.StatusConfirmed,
		PaymentStatus:   result.Status,
		PaymentMethod:   request.PaymentMethod,
		TotalAmount:     total,
		Currency:        s.currency,
		ContactInfo:     request.ContactInfo,
		SpecialRequests: request.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	saved, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("error creating booking: %w", err)
	}
	return saved, nil
}

func (s *bookingService) GetBooking(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(booking.UserID, caller.Email); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) TripBookings(ctx context.Context, caller models.Identity, tripID string) ([]models.Booking, error) {
	bookings, err := s.repo.ListBookingsByTrip(ctx, caller.Email, tripID)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Booking, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(booking.UserID, caller.Email); err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.StatusCancelled:
		return nil, models.ErrAlreadyCancelled
	case models.StatusCompleted:
		return nil, models.ErrCancelCompleted
	}

	// Payment status is left untouched: no refund modeling here.
	booking.Status = models.StatusCancelled
	booking.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.UpdateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("error cancelling booking: %w", err)
	}
	return updated, nil
}

func (s *bookingService) lockFor(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

package repository

import (
	"context"
	"sync"

	models "github.com/kabirm/safarnama/internal"
	"github.com/google/uuid"
)

// MemoryBookingRepository is the transient reference store: a mutex-guarded
// map plus an insertion-order index so listings come back in creation order.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*models.Booking
	order    []uuid.UUID
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[uuid.UUID]*models.Booking),
	}
}

func (r *MemoryBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBooking(booking)
	if _, exists := r.bookings[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.bookings[stored.ID] = stored
	return cloneBooking(stored), nil
}

func (r *MemoryBookingRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	return cloneBooking(booking), nil
}

func (r *MemoryBookingRepository) ListBookingsByTrip(ctx context.Context, ownerKey, tripID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Booking
	for _, id := range r.order {
		booking := r.bookings[id]
		if booking.UserID == ownerKey && booking.TripID == tripID {
			result = append(result, *cloneBooking(booking))
		}
	}
	return result, nil
}

func (r *MemoryBookingRepository) UpdateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; !ok {
		return nil, models.ErrBookingNotFound
	}
	stored := cloneBooking(booking)
	r.bookings[stored.ID] = stored
	return cloneBooking(stored), nil
}

// cloneBooking copies the record and its item slice so callers never share
// memory with the store.
func cloneBooking(b *models.Booking) *models.Booking {
	clone := *b
	clone.Items = make([]models.BookingItem, len(b.Items))
	copy(clone.Items, b.Items)
	if b.ContactInfo != nil {
		clone.ContactInfo = make(map[string]string, len(b.ContactInfo))
		for k, v := range b.ContactInfo {
			clone.ContactInfo[k] = v
		}
	}
	return &clone
}

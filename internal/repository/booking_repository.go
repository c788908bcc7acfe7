package repository

import (
	"context"
	"encoding/json"
	"errors"

	models "github.com/kabirm/safarnama/internal"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// PostgresBookingRepository is the durable store behind the same contract
// as the in-memory reference store.
type PostgresBookingRepository struct {
	db DBConn
}

func NewPostgresBookingRepository(db DBConn) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

func (r *PostgresBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	contactInfo, err := json.Marshal(booking.ContactInfo)
	if err != nil {
		return nil, err
	}

	query := `
        INSERT INTO bookings (id, user_id, trip_id, status, payment_status, payment_method,
            total_amount, currency, contact_info, special_requests, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err = tx.Exec(ctx, query,
		booking.ID, booking.UserID, booking.TripID, booking.Status, booking.PaymentStatus,
		booking.PaymentMethod, booking.TotalAmount, booking.Currency, contactInfo,
		booking.SpecialRequests, booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for i, item := range booking.Items {
		if err := r.createItemTx(ctx, tx, booking.ID, i, item); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *PostgresBookingRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
        SELECT id, user_id, trip_id, status, payment_status, payment_method,
            total_amount, currency, contact_info, special_requests, created_at, updated_at
        FROM bookings
        WHERE id = $1
    `
	var booking models.Booking
	var contactInfo []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID, &booking.UserID, &booking.TripID, &booking.Status, &booking.PaymentStatus,
		&booking.PaymentMethod, &booking.TotalAmount, &booking.Currency, &contactInfo,
		&booking.SpecialRequests, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	if len(contactInfo) > 0 {
		if err := json.Unmarshal(contactInfo, &booking.ContactInfo); err != nil {
			return nil, err
		}
	}

	items, err := r.itemsForBookings(ctx, []uuid.UUID{booking.ID})
	if err != nil {
		return nil, err
	}
	booking.Items = items[booking.ID]
	if booking.Items == nil {
		booking.Items = []models.BookingItem{}
	}
	return &booking, nil
}

func (r *PostgresBookingRepository) ListBookingsByTrip(ctx context.Context, ownerKey, tripID string) ([]models.Booking, error) {
	query := `
        SELECT id, user_id, trip_id, status, payment_status, payment_method,
            total_amount, currency, contact_info, special_requests, created_at, updated_at
        FROM bookings
        WHERE user_id = $1 AND trip_id = $2
        ORDER BY created_at, id
    `
	rows, err := r.db.Query(ctx, query, ownerKey, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	var ids []uuid.UUID
	for rows.Next() {
		var booking models.Booking
		var contactInfo []byte
		err := rows.Scan(
			&booking.ID, &booking.UserID, &booking.TripID, &booking.Status, &booking.PaymentStatus,
			&booking.PaymentMethod, &booking.TotalAmount, &booking.Currency, &contactInfo,
			&booking.SpecialRequests, &booking.CreatedAt, &booking.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if len(contactInfo) > 0 {
			if err := json.Unmarshal(contactInfo, &booking.ContactInfo); err != nil {
				return nil, err
			}
		}
		bookings = append(bookings, booking)
		ids = append(ids, booking.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	items, err := r.itemsForBookings(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].Items = items[bookings[i].ID]
		if bookings[i].Items == nil {
			bookings[i].Items = []models.BookingItem{}
		}
	}
	return bookings, nil
}

func (r *PostgresBookingRepository) UpdateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $2, payment_status = $3, updated_at = $4
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, booking.ID, booking.Status, booking.PaymentStatus, booking.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, models.ErrBookingNotFound
	}
	return booking, nil
}

func (r *PostgresBookingRepository) createItemTx(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, position int, item models.BookingItem) error {
	details, err := json.Marshal(item.Details)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO booking_items (booking_id, position, item_type, item_id, name,
            quantity, price, item_date, item_time, details)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err = tx.Exec(ctx, query, bookingID, position, item.Type, item.ItemID, item.Name,
		item.Quantity, item.Price, item.Date, item.Time, details)
	return err
}

func (r *PostgresBookingRepository) itemsForBookings(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.BookingItem, error) {
	query := `
        SELECT booking_id, item_type, item_id, name, quantity, price, item_date, item_time, details
        FROM booking_items
        WHERE booking_id = ANY($1)
        ORDER BY booking_id, position
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]models.BookingItem)
	for rows.Next() {
		var bookingID uuid.UUID
		var item models.BookingItem
		var details []byte
		err := rows.Scan(&bookingID, &item.Type, &item.ItemID, &item.Name,
			&item.Quantity, &item.Price, &item.Date, &item.Time, &details)
		if err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &item.Details); err != nil {
				return nil, err
			}
		}
		result[bookingID] = append(result[bookingID], item)
	}
	return result, rows.Err()
}

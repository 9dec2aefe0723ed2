package repository

import (
	"context"

	"guestdesk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BookingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBookingRepository(db *pgxpool.Pool, logger *zap.Logger) *BookingRepository {
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := squirrel.Insert("bookings").
		Columns("id", "hotel_id", "external_ref", "guest_name", "check_in", "check_out",
			"room_type", "guest_count", "total_amount", "status", "created_at", "updated_at").
		Values(booking.ID, booking.HotelID, booking.ExternalRef, booking.GuestName, booking.CheckIn, booking.CheckOut,
			booking.RoomType, booking.GuestCount, booking.TotalAmount, booking.Status, booking.CreatedAt, booking.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BookingRepository) GetByExternalRef(ctx context.Context, hotelID uuid.UUID, externalRef string) (*models.Booking, error) {
	query := selectBookings().
		Where(squirrel.Eq{"hotel_id": hotelID, "external_ref": externalRef}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	err = r.db.QueryRow(ctx, sql, args...).Scan(scanBookingFields(&booking)...)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *BookingRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*models.Booking, error) {
	query := selectBookings().
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("check_in ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(scanBookingFields(&booking)...); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func selectBookings() squirrel.SelectBuilder {
	return squirrel.Select("id", "hotel_id", "external_ref", "guest_name", "check_in", "check_out",
		"room_type", "guest_count", "total_amount", "status", "created_at", "updated_at").
		From("bookings")
}

func scanBookingFields(b *models.Booking) []any {
	return []any{
		&b.ID, &b.HotelID, &b.ExternalRef, &b.GuestName, &b.CheckIn, &b.CheckOut,
		&b.RoomType, &b.GuestCount, &b.TotalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	}
}

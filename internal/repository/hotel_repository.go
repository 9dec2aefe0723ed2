package repository

import (
	"context"

	"guestdesk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type HotelRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHotelRepository(db *pgxpool.Pool, logger *zap.Logger) *HotelRepository {
	return &HotelRepository{
		db:     db,
		logger: logger,
	}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	query := squirrel.Insert("hotels").
		Columns("id", "name", "address", "city", "country", "latitude", "longitude", "created_at", "updated_at").
		Values(hotel.ID, hotel.Name, hotel.Address, hotel.City, hotel.Country, hotel.Latitude, hotel.Longitude, hotel.CreatedAt, hotel.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *HotelRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hotel, error) {
	query := squirrel.Select("id", "name", "address", "city", "country", "latitude", "longitude", "created_at", "updated_at").
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var hotel models.Hotel
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&hotel.ID, &hotel.Name, &hotel.Address, &hotel.City, &hotel.Country,
		&hotel.Latitude, &hotel.Longitude, &hotel.CreatedAt, &hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &hotel, nil
}

func (r *HotelRepository) List(ctx context.Context) ([]*models.Hotel, error) {
	query := squirrel.Select("id", "name", "address", "city", "country", "latitude", "longitude", "created_at", "updated_at").
		From("hotels").
		OrderBy("created_at ASC").
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

	var hotels []*models.Hotel
	for rows.Next() {
		var hotel models.Hotel
		if err := rows.Scan(
			&hotel.ID, &hotel.Name, &hotel.Address, &hotel.City, &hotel.Country,
			&hotel.Latitude, &hotel.Longitude, &hotel.CreatedAt, &hotel.UpdatedAt,
		); err != nil {
			return nil, err
		}
		hotels = append(hotels, &hotel)
	}

	return hotels, nil
}

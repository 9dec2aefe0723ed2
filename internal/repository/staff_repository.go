package repository

import (
	"context"

	"guestdesk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StaffRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewStaffRepository(db *pgxpool.Pool, logger *zap.Logger) *StaffRepository {
	return &StaffRepository{
		db:     db,
		logger: logger,
	}
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := squirrel.Insert("staff").
		Columns("id", "username", "email", "password", "created_at", "updated_at").
		Values(staff.ID, staff.Username, staff.Email, staff.Password, staff.CreatedAt, staff.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	query := squirrel.Select("id", "username", "email", "password", "created_at", "updated_at").
		From("staff").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var staff models.Staff
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&staff.ID, &staff.Username, &staff.Email, &staff.Password, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &staff, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Staff, error) {
	query := squirrel.Select("id", "username", "email", "password", "created_at", "updated_at").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var staff models.Staff
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&staff.ID, &staff.Username, &staff.Email, &staff.Password, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &staff, nil
}

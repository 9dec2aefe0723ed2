package repository

import (
	"context"

	"guestdesk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TemplateRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTemplateRepository(db *pgxpool.Pool, logger *zap.Logger) *TemplateRepository {
	return &TemplateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TemplateRepository) Create(ctx context.Context, tpl *models.ReplyTemplate) error {
	query := squirrel.Insert("reply_templates").
		Columns("id", "hotel_id", "intent", "content", "language", "active", "created_at", "updated_at").
		Values(tpl.ID, tpl.HotelID, tpl.Intent, tpl.Content, tpl.Language, tpl.Active, tpl.CreatedAt, tpl.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListActive returns active templates for one hotel and intent, in insertion
// order. That order is what breaks confidence ties downstream.
func (r *TemplateRepository) ListActive(ctx context.Context, hotelID uuid.UUID, intent models.IntentCategory) ([]*models.ReplyTemplate, error) {
	query := squirrel.Select("id", "hotel_id", "intent", "content", "language", "active", "created_at", "updated_at").
		From("reply_templates").
		Where(squirrel.Eq{"hotel_id": hotelID, "intent": intent, "active": true}).
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

	var templates []*models.ReplyTemplate
	for rows.Next() {
		var tpl models.ReplyTemplate
		if err := rows.Scan(
			&tpl.ID, &tpl.HotelID, &tpl.Intent, &tpl.Content, &tpl.Language,
			&tpl.Active, &tpl.CreatedAt, &tpl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, &tpl)
	}

	return templates, nil
}

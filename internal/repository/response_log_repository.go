package repository

import (
	"context"
	"errors"

	"guestdesk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ResponseLogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewResponseLogRepository(db *pgxpool.Pool, logger *zap.Logger) *ResponseLogRepository {
	return &ResponseLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ResponseLogRepository) Create(ctx context.Context, log *models.ResponseLog) error {
	query := squirrel.Insert("response_logs").
		Columns("id", "message_id", "content", "type", "sent", "sent_at").
		Values(log.ID, log.MessageID, log.Content, log.Type, log.Sent, log.SentAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetSentByMessageID returns the first confirmed-sent reply for a message,
// or nil when none was ever sent.
func (r *ResponseLogRepository) GetSentByMessageID(ctx context.Context, messageID uuid.UUID) (*models.ResponseLog, error) {
	query := squirrel.Select("id", "message_id", "content", "type", "sent", "sent_at").
		From("response_logs").
		Where(squirrel.Eq{"message_id": messageID, "sent": true}).
		OrderBy("sent_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var log models.ResponseLog
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&log.ID, &log.MessageID, &log.Content, &log.Type, &log.Sent, &log.SentAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &log, nil
}

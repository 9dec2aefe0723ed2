package repository

import (
	"context"

	"guestdesk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type MessageRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMessageRepository(db *pgxpool.Pool, logger *zap.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.GuestMessage) error {
	query := squirrel.Insert("guest_messages").
		Columns("id", "booking_id", "hotel_id", "platform", "platform_message_id",
			"guest_name", "content", "intent", "received_at", "processed").
		Values(msg.ID, msg.BookingID, msg.HotelID, msg.Platform, msg.PlatformMessageID,
			msg.GuestName, msg.Content, msg.Intent, msg.ReceivedAt, msg.Processed).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GuestMessage, error) {
	query := selectMessages().
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var msg models.GuestMessage
	err = r.db.QueryRow(ctx, sql, args...).Scan(scanMessageFields(&msg)...)
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

func (r *MessageRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID, platform models.Platform) ([]*models.GuestMessage, error) {
	query := selectMessages().
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("received_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		query = query.Where(squirrel.Eq{"platform": platform})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.GuestMessage
	for rows.Next() {
		var msg models.GuestMessage
		if err := rows.Scan(scanMessageFields(&msg)...); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	return messages, nil
}

// ListByIntent returns the most recent guest messages of one intent for a
// hotel, bounded by limit. Feeds the historical suggestion source.
func (r *MessageRepository) ListByIntent(ctx context.Context, hotelID uuid.UUID, intent models.IntentCategory, limit int) ([]*models.GuestMessage, error) {
	query := selectMessages().
		Where(squirrel.Eq{"hotel_id": hotelID, "intent": intent}).
		OrderBy("received_at DESC").
		Limit(uint64(limit)).
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

	var messages []*models.GuestMessage
	for rows.Next() {
		var msg models.GuestMessage
		if err := rows.Scan(scanMessageFields(&msg)...); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	return messages, nil
}

func (r *MessageRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Update("guest_messages").
		Set("processed", true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func selectMessages() squirrel.SelectBuilder {
	return squirrel.Select("id", "booking_id", "hotel_id", "platform", "platform_message_id",
		"guest_name", "content", "intent", "received_at", "processed").
		From("guest_messages")
}

func scanMessageFields(m *models.GuestMessage) []any {
	return []any{
		&m.ID, &m.BookingID, &m.HotelID, &m.Platform, &m.PlatformMessageID,
		&m.GuestName, &m.Content, &m.Intent, &m.ReceivedAt, &m.Processed,
	}
}

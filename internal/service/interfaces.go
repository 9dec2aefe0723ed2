package service

import (
	"context"

	"guestdesk/internal/models"

	"github.com/google/uuid"
)

// Store interfaces are satisfied by the repository package; services depend
// on them so the suggestion pipeline can be exercised against in-memory
// fakes in tests.

type HotelStore interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hotel, error)
	List(ctx context.Context) ([]*models.Hotel, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByExternalRef(ctx context.Context, hotelID uuid.UUID, externalRef string) (*models.Booking, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*models.Booking, error)
}

type MessageStore interface {
	Create(ctx context.Context, msg *models.GuestMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GuestMessage, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, platform models.Platform) ([]*models.GuestMessage, error)
	ListByIntent(ctx context.Context, hotelID uuid.UUID, intent models.IntentCategory, limit int) ([]*models.GuestMessage, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

type TemplateStore interface {
	Create(ctx context.Context, tpl *models.ReplyTemplate) error
	ListActive(ctx context.Context, hotelID uuid.UUID, intent models.IntentCategory) ([]*models.ReplyTemplate, error)
}

type ResponseLogStore interface {
	Create(ctx context.Context, log *models.ResponseLog) error
	GetSentByMessageID(ctx context.Context, messageID uuid.UUID) (*models.ResponseLog, error)
}

type StaffStore interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Staff, error)
}

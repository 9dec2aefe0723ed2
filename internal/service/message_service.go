package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"guestdesk/internal/models"
	"guestdesk/internal/platform"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// MessageService owns the guest-message lifecycle: pulling messages from OTA
// connectors, manual inserts, and sending replies back out.
type MessageService struct {
	connectors []platform.Connector
	hotels     HotelStore
	bookings   BookingStore
	messages   MessageStore
	responses  ResponseLogStore
	intents    *IntentService
	ingest     IngestMarker
	logger     *zap.Logger
}

func NewMessageService(
	connectors []platform.Connector,
	hotels HotelStore,
	bookings BookingStore,
	messages MessageStore,
	responses ResponseLogStore,
	intents *IntentService,
	ingest IngestMarker,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		connectors: connectors,
		hotels:     hotels,
		bookings:   bookings,
		messages:   messages,
		responses:  responses,
		intents:    intents,
		ingest:     ingest,
		logger:     logger,
	}
}

// FetchPlatformMessages polls every connector for new guest messages and
// stores the ones not seen before. Connector failures are logged and skipped;
// the returned count is the number of newly stored messages.
func (s *MessageService) FetchPlatformMessages(ctx context.Context, hotelID uuid.UUID) (int, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrHotelNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get hotel: %w", err)
	}

	results := make([][]platform.InboundMessage, len(s.connectors))
	var wg sync.WaitGroup
	for i, connector := range s.connectors {
		wg.Add(1)
		go func(i int, connector platform.Connector) {
			defer wg.Done()
			inbound, err := connector.FetchMessages(ctx, hotel.ID.String())
			if err != nil {
				s.logger.Warn("Platform fetch failed",
					zap.String("platform", string(connector.Platform())),
					zap.Error(err),
				)
				return
			}
			results[i] = inbound
		}(i, connector)
	}
	wg.Wait()

	stored := 0
	for _, inbound := range results {
		for _, raw := range inbound {
			fresh, err := s.claimInbound(ctx, raw)
			if err != nil {
				s.logger.Warn("Ingest dedup check failed", zap.Error(err))
			}
			if !fresh {
				continue
			}
			if err := s.storeInbound(ctx, hotel, raw); err != nil {
				s.logger.Warn("Failed to store inbound message",
					zap.String("platform_message_id", raw.PlatformMessageID),
					zap.Error(err),
				)
				continue
			}
			stored++
		}
	}

	s.logger.Info("Platform messages fetched",
		zap.String("hotel_id", hotelID.String()),
		zap.Int("stored", stored),
	)

	return stored, nil
}

// claimInbound reports whether this platform message should be imported.
// When the marker is unavailable the message is imported anyway.
func (s *MessageService) claimInbound(ctx context.Context, raw platform.InboundMessage) (bool, error) {
	if s.ingest == nil {
		return true, nil
	}
	key := fmt.Sprintf("ingest:%s:%s", raw.Platform, raw.PlatformMessageID)
	fresh, err := s.ingest.MarkSeen(ctx, key)
	if err != nil {
		return true, err
	}
	return fresh, nil
}

func (s *MessageService) storeInbound(ctx context.Context, hotel *models.Hotel, raw platform.InboundMessage) error {
	booking, err := s.ensureBooking(ctx, hotel.ID, raw.BookingRef, raw.GuestName)
	if err != nil {
		return err
	}

	receivedAt := raw.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	msg := &models.GuestMessage{
		ID:                uuid.New(),
		BookingID:         booking.ID,
		HotelID:           hotel.ID,
		Platform:          raw.Platform,
		PlatformMessageID: raw.PlatformMessageID,
		GuestName:         raw.GuestName,
		Content:           sanitizeUTF8(raw.Content),
		Intent:            s.intents.Classify(raw.Content),
		ReceivedAt:        receivedAt,
		Processed:         false,
	}

	return s.messages.Create(ctx, msg)
}

// ensureBooking resolves the platform booking reference, creating a stub
// booking when the reservation has not been imported yet.
func (s *MessageService) ensureBooking(ctx context.Context, hotelID uuid.UUID, externalRef, guestName string) (*models.Booking, error) {
	booking, err := s.bookings.GetByExternalRef(ctx, hotelID, externalRef)
	if err == nil {
		return booking, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	now := time.Now()
	booking = &models.Booking{
		ID:          uuid.New(),
		HotelID:     hotelID,
		ExternalRef: externalRef,
		GuestName:   guestName,
		Status:      models.BookingConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create stub booking: %w", err)
	}

	return booking, nil
}

// CreateMessage stores a manually entered guest message.
func (s *MessageService) CreateMessage(ctx context.Context, hotelID uuid.UUID, raw platform.InboundMessage) (*models.GuestMessage, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	booking, err := s.ensureBooking(ctx, hotel.ID, raw.BookingRef, raw.GuestName)
	if err != nil {
		return nil, err
	}

	receivedAt := raw.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	msg := &models.GuestMessage{
		ID:                uuid.New(),
		BookingID:         booking.ID,
		HotelID:           hotel.ID,
		Platform:          raw.Platform,
		PlatformMessageID: raw.PlatformMessageID,
		GuestName:         raw.GuestName,
		Content:           sanitizeUTF8(raw.Content),
		Intent:            s.intents.Classify(raw.Content),
		ReceivedAt:        receivedAt,
		Processed:         false,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return msg, nil
}

func (s *MessageService) GetMessage(ctx context.Context, id uuid.UUID) (*models.GuestMessage, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	return msg, nil
}

func (s *MessageService) ListMessages(ctx context.Context, hotelID uuid.UUID, p models.Platform) ([]*models.GuestMessage, error) {
	return s.messages.ListByHotel(ctx, hotelID, p)
}

// SendReply pushes a reply through the message's platform connector, records
// the outcome in the response log and marks the message processed.
func (s *MessageService) SendReply(ctx context.Context, messageID uuid.UUID, content string, replyType models.ResponseType) (*models.ResponseLog, error) {
	msg, err := s.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	connector := s.connectorFor(msg.Platform)
	if connector == nil {
		return nil, ErrUnsupportedPlatform
	}

	result, err := connector.SendReply(ctx, msg.PlatformMessageID, content)
	if err != nil {
		return nil, fmt.Errorf("send reply via %s: %w", msg.Platform, err)
	}

	log := &models.ResponseLog{
		ID:        uuid.New(),
		MessageID: msg.ID,
		Content:   content,
		Type:      replyType,
		Sent:      result.Success,
		SentAt:    result.SentAt,
	}
	if err := s.responses.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("record response log: %w", err)
	}

	if err := s.messages.MarkProcessed(ctx, msg.ID); err != nil {
		s.logger.Warn("Failed to mark message processed",
			zap.String("message_id", msg.ID.String()),
			zap.Error(err),
		)
	}

	return log, nil
}

func (s *MessageService) connectorFor(p models.Platform) platform.Connector {
	for _, connector := range s.connectors {
		if connector.Platform() == p {
			return connector
		}
	}
	return nil
}

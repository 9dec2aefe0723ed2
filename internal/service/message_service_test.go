package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"guestdesk/internal/models"
	"guestdesk/internal/platform"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type memHotelStore struct {
	hotels map[uuid.UUID]*models.Hotel
}

func (s *memHotelStore) Create(_ context.Context, hotel *models.Hotel) error {
	s.hotels[hotel.ID] = hotel
	return nil
}

func (s *memHotelStore) GetByID(_ context.Context, id uuid.UUID) (*models.Hotel, error) {
	hotel, ok := s.hotels[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return hotel, nil
}

func (s *memHotelStore) List(context.Context) ([]*models.Hotel, error) {
	var out []*models.Hotel
	for _, hotel := range s.hotels {
		out = append(out, hotel)
	}
	return out, nil
}

type memBookingStore struct {
	bookings []*models.Booking
}

func (s *memBookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.bookings = append(s.bookings, booking)
	return nil
}

func (s *memBookingStore) GetByExternalRef(_ context.Context, hotelID uuid.UUID, externalRef string) (*models.Booking, error) {
	for _, booking := range s.bookings {
		if booking.HotelID == hotelID && booking.ExternalRef == externalRef {
			return booking, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *memBookingStore) ListByHotel(_ context.Context, hotelID uuid.UUID) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, booking := range s.bookings {
		if booking.HotelID == hotelID {
			out = append(out, booking)
		}
	}
	return out, nil
}

type memMessageStore struct {
	mu       sync.Mutex
	messages []*models.GuestMessage
}

func (s *memMessageStore) Create(_ context.Context, msg *models.GuestMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

func (s *memMessageStore) GetByID(_ context.Context, id uuid.UUID) (*models.GuestMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range s.messages {
		if msg.ID == id {
			return msg, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *memMessageStore) ListByHotel(_ context.Context, hotelID uuid.UUID, p models.Platform) ([]*models.GuestMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.GuestMessage
	for _, msg := range s.messages {
		if msg.HotelID == hotelID && (p == "" || msg.Platform == p) {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (s *memMessageStore) ListByIntent(_ context.Context, hotelID uuid.UUID, intent models.IntentCategory, limit int) ([]*models.GuestMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.GuestMessage
	for _, msg := range s.messages {
		if msg.HotelID == hotelID && msg.Intent == intent && len(out) < limit {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (s *memMessageStore) MarkProcessed(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range s.messages {
		if msg.ID == id {
			msg.Processed = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

type stubConnector struct {
	platform models.Platform
	inbound  []platform.InboundMessage
	fetchErr error
	sendErr  error
	sent     []string
}

func (c *stubConnector) Platform() models.Platform { return c.platform }

func (c *stubConnector) FetchMessages(context.Context, string) ([]platform.InboundMessage, error) {
	return c.inbound, c.fetchErr
}

func (c *stubConnector) SendReply(_ context.Context, platformMessageID, content string) (*platform.SendResult, error) {
	if c.sendErr != nil {
		return nil, c.sendErr
	}
	c.sent = append(c.sent, content)
	return &platform.SendResult{
		Success:    true,
		ResponseID: "stub_resp_" + platformMessageID,
		SentAt:     time.Now(),
	}, nil
}

type stubMarker struct {
	seen map[string]bool
	err  error
}

func (m *stubMarker) MarkSeen(_ context.Context, key string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.seen[key] {
		return false, nil
	}
	m.seen[key] = true
	return true, nil
}

func newTestMessageService(
	hotels *memHotelStore,
	bookings *memBookingStore,
	messages *memMessageStore,
	connectors []platform.Connector,
	marker IngestMarker,
) *MessageService {
	nop := zap.NewNop()
	return NewMessageService(
		connectors, hotels, bookings, messages, &fakeResponseLogStore{},
		NewIntentService(nop), marker, nop)
}

func seedHotelStore() (*memHotelStore, *models.Hotel) {
	hotel := &models.Hotel{ID: uuid.New(), Name: "Tokyo Grand Hotel", City: "Tokyo"}
	return &memHotelStore{hotels: map[uuid.UUID]*models.Hotel{hotel.ID: hotel}}, hotel
}

func TestFetchPlatformMessages(t *testing.T) {
	hotels, hotel := seedHotelStore()
	bookings := &memBookingStore{}
	messages := &memMessageStore{}

	good := &stubConnector{
		platform: models.PlatformBookingCom,
		inbound: []platform.InboundMessage{
			{
				PlatformMessageID: "bdc_001",
				BookingRef:        "REF001",
				GuestName:         "Tanaka",
				Content:           "Can I leave my luggage before check-in?",
				Platform:          models.PlatformBookingCom,
			},
		},
	}
	broken := &stubConnector{
		platform: models.PlatformAirbnb,
		fetchErr: errors.New("rate limited"),
	}

	svc := newTestMessageService(hotels, bookings, messages,
		[]platform.Connector{good, broken}, nil)

	stored, err := svc.FetchPlatformMessages(context.Background(), hotel.ID)
	if err != nil {
		t.Fatalf("FetchPlatformMessages: %v", err)
	}
	if stored != 1 {
		t.Fatalf("stored = %d, want 1", stored)
	}

	msg := messages.messages[0]
	if msg.Intent != models.IntentLuggage {
		t.Errorf("Intent = %q, want %q", msg.Intent, models.IntentLuggage)
	}
	if msg.HotelID != hotel.ID {
		t.Errorf("HotelID = %s, want %s", msg.HotelID, hotel.ID)
	}
	if len(bookings.bookings) != 1 {
		t.Fatalf("stub bookings = %d, want 1", len(bookings.bookings))
	}
	if bookings.bookings[0].ExternalRef != "REF001" {
		t.Errorf("stub booking ref = %q, want REF001", bookings.bookings[0].ExternalRef)
	}
	if msg.BookingID != bookings.bookings[0].ID {
		t.Errorf("message not linked to stub booking")
	}
}

func TestFetchPlatformMessagesHotelNotFound(t *testing.T) {
	hotels := &memHotelStore{hotels: map[uuid.UUID]*models.Hotel{}}
	svc := newTestMessageService(hotels, &memBookingStore{}, &memMessageStore{}, nil, nil)

	_, err := svc.FetchPlatformMessages(context.Background(), uuid.New())
	if !errors.Is(err, ErrHotelNotFound) {
		t.Errorf("err = %v, want ErrHotelNotFound", err)
	}
}

func TestFetchPlatformMessagesDedup(t *testing.T) {
	hotels, hotel := seedHotelStore()
	messages := &memMessageStore{}

	inbound := []platform.InboundMessage{
		{PlatformMessageID: "bdc_001", BookingRef: "REF001", Content: "hello", Platform: models.PlatformBookingCom},
	}
	connector := &stubConnector{platform: models.PlatformBookingCom, inbound: inbound}
	marker := &stubMarker{seen: map[string]bool{}}

	svc := newTestMessageService(hotels, &memBookingStore{}, messages,
		[]platform.Connector{connector}, marker)

	stored, err := svc.FetchPlatformMessages(context.Background(), hotel.ID)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if stored != 1 {
		t.Fatalf("first fetch stored = %d, want 1", stored)
	}

	// Second poll returns the same platform message; the marker rejects it.
	stored, err = svc.FetchPlatformMessages(context.Background(), hotel.ID)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if stored != 0 {
		t.Errorf("second fetch stored = %d, want 0", stored)
	}
	if len(messages.messages) != 1 {
		t.Errorf("messages stored = %d, want 1", len(messages.messages))
	}
}

func TestFetchPlatformMessagesMarkerErrorImportsAnyway(t *testing.T) {
	hotels, hotel := seedHotelStore()
	messages := &memMessageStore{}

	connector := &stubConnector{
		platform: models.PlatformBookingCom,
		inbound: []platform.InboundMessage{
			{PlatformMessageID: "bdc_001", BookingRef: "REF001", Content: "hello", Platform: models.PlatformBookingCom},
		},
	}
	marker := &stubMarker{err: errors.New("redis down")}

	svc := newTestMessageService(hotels, &memBookingStore{}, messages,
		[]platform.Connector{connector}, marker)

	stored, err := svc.FetchPlatformMessages(context.Background(), hotel.ID)
	if err != nil {
		t.Fatalf("FetchPlatformMessages: %v", err)
	}
	if stored != 1 {
		t.Errorf("stored = %d with broken marker, want 1", stored)
	}
}

func TestSendReply(t *testing.T) {
	hotels, hotel := seedHotelStore()
	messages := &memMessageStore{}
	connector := &stubConnector{platform: models.PlatformBookingCom}

	msg := &models.GuestMessage{
		ID:                uuid.New(),
		HotelID:           hotel.ID,
		Platform:          models.PlatformBookingCom,
		PlatformMessageID: "bdc_001",
		Content:           "hello",
	}
	messages.messages = append(messages.messages, msg)

	svc := newTestMessageService(hotels, &memBookingStore{}, messages,
		[]platform.Connector{connector}, nil)

	log, err := svc.SendReply(context.Background(), msg.ID, "We can help with that.", models.ResponseManual)
	if err != nil {
		t.Fatalf("SendReply: %v", err)
	}
	if !log.Sent {
		t.Error("log.Sent = false, want true")
	}
	if log.Type != models.ResponseManual {
		t.Errorf("log.Type = %q, want %q", log.Type, models.ResponseManual)
	}
	if len(connector.sent) != 1 || connector.sent[0] != "We can help with that." {
		t.Errorf("connector.sent = %v", connector.sent)
	}
	if !msg.Processed {
		t.Error("message not marked processed")
	}
}

func TestSendReplyUnsupportedPlatform(t *testing.T) {
	hotels, hotel := seedHotelStore()
	messages := &memMessageStore{}

	msg := &models.GuestMessage{
		ID:       uuid.New(),
		HotelID:  hotel.ID,
		Platform: "expedia",
	}
	messages.messages = append(messages.messages, msg)

	svc := newTestMessageService(hotels, &memBookingStore{}, messages,
		[]platform.Connector{&stubConnector{platform: models.PlatformBookingCom}}, nil)

	_, err := svc.SendReply(context.Background(), msg.ID, "hi", models.ResponseManual)
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("err = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestSendReplyMessageNotFound(t *testing.T) {
	hotels, _ := seedHotelStore()
	svc := newTestMessageService(hotels, &memBookingStore{}, &memMessageStore{}, nil, nil)

	_, err := svc.SendReply(context.Background(), uuid.New(), "hi", models.ResponseManual)
	if !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("err = %v, want ErrMessageNotFound", err)
	}
}

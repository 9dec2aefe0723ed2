package models

import (
	"time"

	"github.com/google/uuid"
)

type Platform string

const (
	PlatformBookingCom Platform = "booking.com"
	PlatformAirbnb     Platform = "airbnb"
)

type GuestMessage struct {
	ID                uuid.UUID      `db:"id"`
	BookingID         uuid.UUID      `db:"booking_id"`
	HotelID           uuid.UUID      `db:"hotel_id"`
	Platform          Platform       `db:"platform"`
	PlatformMessageID string         `db:"platform_message_id"`
	GuestName         string         `db:"guest_name"`
	Content           string         `db:"content"`
	Intent            IntentCategory `db:"intent"`
	ReceivedAt        time.Time      `db:"received_at"`
	Processed         bool           `db:"processed"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          uuid.UUID     `db:"id"`
	HotelID     uuid.UUID     `db:"hotel_id"`
	ExternalRef string        `db:"external_ref"` // booking id on the OTA platform
	GuestName   string        `db:"guest_name"`
	CheckIn     time.Time     `db:"check_in"`
	CheckOut    time.Time     `db:"check_out"`
	RoomType    string        `db:"room_type"`
	GuestCount  int           `db:"guest_count"`
	TotalAmount float64       `db:"total_amount"`
	Status      BookingStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

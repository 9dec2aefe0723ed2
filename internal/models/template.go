package models

import (
	"time"

	"github.com/google/uuid"
)

// ReplyTemplate is a staff-authored canned reply for one intent category.
// Only active templates are offered as suggestion candidates.
type ReplyTemplate struct {
	ID        uuid.UUID      `db:"id"`
	HotelID   uuid.UUID      `db:"hotel_id"`
	Intent    IntentCategory `db:"intent"`
	Content   string         `db:"content"`
	Language  string         `db:"language"`
	Active    bool           `db:"active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

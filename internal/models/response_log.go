package models

import (
	"time"

	"github.com/google/uuid"
)

type ResponseType string

const (
	ResponseAutomated ResponseType = "automated"
	ResponseManual    ResponseType = "manual"
)

// ResponseLog records a reply sent (or attempted) for a guest message.
// Rows with Sent=true feed the historical suggestion source.
type ResponseLog struct {
	ID        uuid.UUID    `db:"id"`
	MessageID uuid.UUID    `db:"message_id"`
	Content   string       `db:"content"`
	Type      ResponseType `db:"type"`
	Sent      bool         `db:"sent"`
	SentAt    time.Time    `db:"sent_at"`
}

package platform

import (
	"context"
	"time"

	"guestdesk/internal/models"
)

// InboundMessage is a guest message as delivered by an OTA platform,
// before it is classified and persisted.
type InboundMessage struct {
	PlatformMessageID string
	BookingRef        string
	GuestName         string
	Content           string
	ReceivedAt        time.Time
	Platform          models.Platform
}

type SendResult struct {
	Success    bool
	ResponseID string
	SentAt     time.Time
}

// Connector talks to one OTA messaging API. The shipped implementations
// return simulated data until platform credentials and partner agreements
// are in place; the interface is what the rest of the service codes against.
type Connector interface {
	Platform() models.Platform
	FetchMessages(ctx context.Context, propertyRef string) ([]InboundMessage, error)
	SendReply(ctx context.Context, platformMessageID, content string) (*SendResult, error)
}

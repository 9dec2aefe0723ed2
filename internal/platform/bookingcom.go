package platform

import (
	"context"
	"fmt"
	"time"

	"guestdesk/internal/models"
	"guestdesk/pkg/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BookingConnector stands in for the Booking.com messaging API.
type BookingConnector struct {
	apiKey  string
	baseURL string
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewBookingConnector(cfg *config.PlatformsConfig, logger *zap.Logger) *BookingConnector {
	return &BookingConnector{
		apiKey:  cfg.BookingAPIKey,
		baseURL: cfg.BookingAPIURL,
		limiter: rate.NewLimiter(rate.Limit(3), 5), // 3 requests per second, burst of 5
		logger:  logger,
	}
}

func (c *BookingConnector) Platform() models.Platform {
	return models.PlatformBookingCom
}

func (c *BookingConnector) FetchMessages(ctx context.Context, propertyRef string) ([]InboundMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// Placeholder payload until partner API access is wired up.
	now := time.Now()
	messages := []InboundMessage{
		{
			PlatformMessageID: "bdc_msg_001",
			BookingRef:        "bdc_book_001",
			GuestName:         "Taro Tanaka",
			Content:           "Can I leave my luggage at the hotel before check-in?",
			ReceivedAt:        now,
			Platform:          models.PlatformBookingCom,
		},
		{
			PlatformMessageID: "bdc_msg_002",
			BookingRef:        "bdc_book_002",
			GuestName:         "Hanako Sato",
			Content:           "How far ahead are rooms available for booking?",
			ReceivedAt:        now,
			Platform:          models.PlatformBookingCom,
		},
		{
			PlatformMessageID: "bdc_msg_003",
			BookingRef:        "bdc_book_003",
			GuestName:         "Jiro Yamada",
			Content:           "Are there any sightseeing spots you would recommend nearby?",
			ReceivedAt:        now,
			Platform:          models.PlatformBookingCom,
		},
	}

	c.logger.Debug("Fetched platform messages",
		zap.String("platform", string(models.PlatformBookingCom)),
		zap.String("property", propertyRef),
		zap.Int("count", len(messages)),
	)

	return messages, nil
}

func (c *BookingConnector) SendReply(ctx context.Context, platformMessageID, content string) (*SendResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return &SendResult{
		Success:    true,
		ResponseID: fmt.Sprintf("bdc_resp_%s", platformMessageID),
		SentAt:     time.Now(),
	}, nil
}

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

// AirbnbConnector stands in for the Airbnb messaging API.
type AirbnbConnector struct {
	apiKey  string
	baseURL string
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewAirbnbConnector(cfg *config.PlatformsConfig, logger *zap.Logger) *AirbnbConnector {
	return &AirbnbConnector{
		apiKey:  cfg.AirbnbAPIKey,
		baseURL: cfg.AirbnbAPIURL,
		limiter: rate.NewLimiter(rate.Limit(3), 5),
		logger:  logger,
	}
}

func (c *AirbnbConnector) Platform() models.Platform {
	return models.PlatformAirbnb
}

func (c *AirbnbConnector) FetchMessages(ctx context.Context, propertyRef string) ([]InboundMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	messages := []InboundMessage{
		{
			PlatformMessageID: "abnb_msg_001",
			BookingRef:        "abnb_book_001",
			GuestName:         "John Smith",
			Content:           "Can I store my luggage here after checkout?",
			ReceivedAt:        now,
			Platform:          models.PlatformAirbnb,
		},
		{
			PlatformMessageID: "abnb_msg_002",
			BookingRef:        "abnb_book_002",
			GuestName:         "Maria Garcia",
			Content:           "What are the availability dates next month?",
			ReceivedAt:        now,
			Platform:          models.PlatformAirbnb,
		},
	}

	c.logger.Debug("Fetched platform messages",
		zap.String("platform", string(models.PlatformAirbnb)),
		zap.String("property", propertyRef),
		zap.Int("count", len(messages)),
	)

	return messages, nil
}

func (c *AirbnbConnector) SendReply(ctx context.Context, platformMessageID, content string) (*SendResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return &SendResult{
		Success:    true,
		ResponseID: fmt.Sprintf("abnb_resp_%s", platformMessageID),
		SentAt:     time.Now(),
	}, nil
}

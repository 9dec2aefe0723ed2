package scheduler

import (
	"context"
	"time"

	"guestdesk/internal/service"
	"guestdesk/pkg/config"

	"go.uber.org/zap"
)

// Ingestor polls the platform connectors for every hotel on a fixed
// interval so new guest messages land in the database without staff
// having to trigger a fetch by hand.
type Ingestor struct {
	hotels   service.HotelStore
	messages *service.MessageService
	interval time.Duration
	logger   *zap.Logger
}

func NewIngestor(
	hotels service.HotelStore,
	messages *service.MessageService,
	cfg *config.SchedulerConfig,
	logger *zap.Logger,
) *Ingestor {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Ingestor{
		hotels:   hotels,
		messages: messages,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (i *Ingestor) Run(ctx context.Context) {
	i.logger.Info("Message ingestor started", zap.Duration("interval", i.interval))

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			i.logger.Info("Message ingestor stopped")
			return
		case <-ticker.C:
			i.tick(ctx)
		}
	}
}

func (i *Ingestor) tick(ctx context.Context) {
	hotels, err := i.hotels.List(ctx)
	if err != nil {
		i.logger.Error("Failed to list hotels for ingestion", zap.Error(err))
		return
	}

	total := 0
	for _, hotel := range hotels {
		stored, err := i.messages.FetchPlatformMessages(ctx, hotel.ID)
		if err != nil {
			i.logger.Warn("Ingestion failed for hotel",
				zap.String("hotel_id", hotel.ID.String()),
				zap.Error(err))
			continue
		}
		total += stored
	}

	if total > 0 {
		i.logger.Info("Ingestion cycle complete", zap.Int("stored", total))
	}
}

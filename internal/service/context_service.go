package service

import (
	"context"
	"fmt"
	"time"

	"guestdesk/internal/geo"
	"guestdesk/internal/models"

	"go.uber.org/zap"
)

// AvailabilitySummary describes booking windows for a hotel. The upstream
// reservation system is not integrated yet, so the summary is derived from
// fixed seasonal windows.
type AvailabilitySummary struct {
	HotelName         string `json:"hotel_name"`
	Next30Days        string `json:"next_30_days"`
	Next90Days        string `json:"next_90_days"`
	PeakSeason        string `json:"peak_season"`
	OffSeason         string `json:"off_season"`
	RecommendedWindow string `json:"recommended_booking_window"`
}

// ContextFacts carries the structured data one suggestion request may
// substitute into generated reply text. Fetched fresh per request, never
// cached.
type ContextFacts struct {
	Storage      []geo.StoragePoint   `json:"storage,omitempty"`
	Availability *AvailabilitySummary `json:"availability,omitempty"`
	Attractions  []geo.Attraction     `json:"attractions,omitempty"`
}

type ContextService struct {
	places  geo.Provider
	radiusM int
	logger  *zap.Logger
}

func NewContextService(places geo.Provider, radiusM int, logger *zap.Logger) *ContextService {
	return &ContextService{
		places:  places,
		radiusM: radiusM,
		logger:  logger,
	}
}

// FactsFor fetches only the facts the given intent can use.
func (s *ContextService) FactsFor(ctx context.Context, intent models.IntentCategory, hotel *models.Hotel) (*ContextFacts, error) {
	facts := &ContextFacts{}

	switch intent {
	case models.IntentLuggage:
		storage, err := s.places.NearbyStorage(ctx, hotel)
		if err != nil {
			return facts, fmt.Errorf("nearby storage lookup: %w", err)
		}
		facts.Storage = storage

	case models.IntentAvailability:
		facts.Availability = s.AvailabilitySummary(hotel)

	case models.IntentAttractions:
		attractions, err := s.places.NearbyAttractions(ctx, hotel, s.radiusM)
		if err != nil {
			return facts, fmt.Errorf("nearby attractions lookup: %w", err)
		}
		facts.Attractions = attractions
	}

	return facts, nil
}

// NearbyAttractions exposes the places lookup for the attractions endpoint.
func (s *ContextService) NearbyAttractions(ctx context.Context, hotel *models.Hotel, radiusM int) ([]geo.Attraction, error) {
	if radiusM <= 0 {
		radiusM = s.radiusM
	}
	return s.places.NearbyAttractions(ctx, hotel, radiusM)
}

func (s *ContextService) AvailabilitySummary(hotel *models.Hotel) *AvailabilitySummary {
	year := time.Now().Year()
	return &AvailabilitySummary{
		HotelName:         hotel.Name,
		Next30Days:        "limited",
		Next90Days:        "available",
		PeakSeason:        fmt.Sprintf("%d-07-15 to %d-08-31", year, year),
		OffSeason:         fmt.Sprintf("%d-09-01 to %d-12-31", year, year),
		RecommendedWindow: "30-60 days in advance",
	}
}

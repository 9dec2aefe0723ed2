package geo

import (
	"context"

	"guestdesk/internal/models"
)

type Attraction struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Rating     float64 `json:"rating"`
	Address    string  `json:"address"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKM float64 `json:"distance_km"`
}

type StoragePoint struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Rating     float64 `json:"rating"`
	DistanceKM float64 `json:"distance_km"`
}

// Provider answers place lookups around a hotel. Implementations: a Google
// Places client and a static fallback used when no API key is configured.
type Provider interface {
	NearbyAttractions(ctx context.Context, hotel *models.Hotel, radiusM int) ([]Attraction, error)
	NearbyStorage(ctx context.Context, hotel *models.Hotel) ([]StoragePoint, error)
}

package geo

import (
	"context"
	"fmt"

	"guestdesk/internal/models"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

const storageSearchRadiusM = 1000

// GoogleProvider resolves nearby places through the Google Places API.
type GoogleProvider struct {
	client *maps.Client
	logger *zap.Logger
}

func NewGoogleProvider(apiKey string, logger *zap.Logger) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{client: client, logger: logger}, nil
}

func (p *GoogleProvider) NearbyAttractions(ctx context.Context, hotel *models.Hotel, radiusM int) ([]Attraction, error) {
	resp, err := p.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: hotel.Latitude, Lng: hotel.Longitude},
		Radius:   uint(radiusM),
		Type:     maps.PlaceTypeTouristAttraction,
	})
	if err != nil {
		return nil, fmt.Errorf("places nearby search: %w", err)
	}

	attractions := make([]Attraction, 0, len(resp.Results))
	for _, place := range resp.Results {
		loc := place.Geometry.Location
		attractions = append(attractions, Attraction{
			Name:       place.Name,
			Category:   categorize(place.Types),
			Rating:     float64(place.Rating),
			Address:    place.Vicinity,
			Latitude:   loc.Lat,
			Longitude:  loc.Lng,
			DistanceKM: distanceKM(hotel.Latitude, hotel.Longitude, loc.Lat, loc.Lng),
		})
	}

	p.logger.Debug("Places lookup completed",
		zap.String("hotel", hotel.Name),
		zap.Int("results", len(attractions)),
	)

	return attractions, nil
}

func (p *GoogleProvider) NearbyStorage(ctx context.Context, hotel *models.Hotel) ([]StoragePoint, error) {
	resp, err := p.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: hotel.Latitude, Lng: hotel.Longitude},
		Radius:   storageSearchRadiusM,
		Keyword:  "luggage storage locker",
	})
	if err != nil {
		return nil, fmt.Errorf("places nearby search: %w", err)
	}

	points := make([]StoragePoint, 0, len(resp.Results))
	for _, place := range resp.Results {
		loc := place.Geometry.Location
		points = append(points, StoragePoint{
			Name:       place.Name,
			Address:    place.Vicinity,
			Rating:     float64(place.Rating),
			DistanceKM: distanceKM(hotel.Latitude, hotel.Longitude, loc.Lat, loc.Lng),
		})
	}

	return points, nil
}

func categorize(types []string) string {
	mapping := map[string]string{
		"tourist_attraction": "sightseeing",
		"restaurant":         "restaurant",
		"shopping_mall":      "shopping",
		"park":               "park",
		"museum":             "museum",
		"amusement_park":     "theme park",
		"zoo":                "zoo",
		"aquarium":           "aquarium",
	}

	for _, t := range types {
		if category, ok := mapping[t]; ok {
			return category
		}
	}
	return "other"
}

package geo

import (
	"context"
	"testing"

	"guestdesk/internal/models"

	"go.uber.org/zap"
)

func TestStaticProviderKnownCity(t *testing.T) {
	provider := NewStaticProvider(zap.NewNop())
	hotel := &models.Hotel{Name: "Tokyo Grand Hotel", City: "Tokyo", Latitude: 35.6762, Longitude: 139.6503}

	attractions, err := provider.NearbyAttractions(context.Background(), hotel, 2000)
	if err != nil {
		t.Fatalf("NearbyAttractions: %v", err)
	}
	if len(attractions) != 5 {
		t.Fatalf("got %d attractions, want 5", len(attractions))
	}
	if attractions[0].Name != "Tokyo Skytree" {
		t.Errorf("first attraction = %q, want Tokyo Skytree", attractions[0].Name)
	}
	for _, a := range attractions {
		if a.Address == "" {
			t.Errorf("attraction %q has no address", a.Name)
		}
		if a.Latitude == 0 || a.Longitude == 0 {
			t.Errorf("attraction %q has no coordinates", a.Name)
		}
	}

	storage, err := provider.NearbyStorage(context.Background(), hotel)
	if err != nil {
		t.Fatalf("NearbyStorage: %v", err)
	}
	if len(storage) != 3 {
		t.Fatalf("got %d storage points, want 3", len(storage))
	}
}

func TestStaticProviderUnknownCityFallsBack(t *testing.T) {
	provider := NewStaticProvider(zap.NewNop())
	hotel := &models.Hotel{Name: "Roadside Inn", City: "Nagoya", Latitude: 35.18, Longitude: 136.9}

	attractions, err := provider.NearbyAttractions(context.Background(), hotel, 2000)
	if err != nil {
		t.Fatalf("NearbyAttractions: %v", err)
	}
	if len(attractions) == 0 {
		t.Fatal("expected fallback attractions for unknown city")
	}

	storage, err := provider.NearbyStorage(context.Background(), hotel)
	if err != nil {
		t.Fatalf("NearbyStorage: %v", err)
	}
	if len(storage) == 0 {
		t.Fatal("expected fallback storage for unknown city")
	}
}

func TestStaticProviderDoesNotMutateCuratedData(t *testing.T) {
	provider := NewStaticProvider(zap.NewNop())
	hotel := &models.Hotel{City: "Osaka", Latitude: 34.6937, Longitude: 135.5023}

	if _, err := provider.NearbyAttractions(context.Background(), hotel, 2000); err != nil {
		t.Fatalf("NearbyAttractions: %v", err)
	}
	if cityAttractions["Osaka"][0].Latitude != 0 {
		t.Error("curated attraction data was mutated by a lookup")
	}
}

func TestDistanceKM(t *testing.T) {
	// Tokyo Station to Shinjuku Station, roughly 6.4km.
	got := distanceKM(35.6812, 139.7671, 35.6896, 139.7006)
	if got < 5.5 || got > 7.5 {
		t.Errorf("distanceKM = %v, want roughly 6.4", got)
	}

	if got := distanceKM(35.0, 135.0, 35.0, 135.0); got != 0 {
		t.Errorf("distanceKM same point = %v, want 0", got)
	}
}

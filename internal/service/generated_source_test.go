package service

import (
	"strings"
	"testing"

	"guestdesk/internal/geo"
	"guestdesk/internal/models"
)

func testHotel() *models.Hotel {
	return &models.Hotel{Name: "Tokyo Grand Hotel", City: "Tokyo"}
}

func TestGenerateResponsesLuggage(t *testing.T) {
	got := generateResponses(testHotel(), models.IntentLuggage, &ContextFacts{})

	if len(got) != 3 {
		t.Fatalf("got %d candidates without facts, want 3", len(got))
	}
	wantConfidences := []float64{0.9, 0.8, 0.7}
	for i, want := range wantConfidences {
		if got[i].Confidence != want {
			t.Errorf("candidate %d confidence = %v, want %v", i, got[i].Confidence, want)
		}
	}
	if !strings.Contains(got[0].Content, "Tokyo Grand Hotel") {
		t.Errorf("top candidate should mention the hotel name, got %q", got[0].Content)
	}
}

func TestGenerateResponsesLuggageWithStorageFacts(t *testing.T) {
	facts := &ContextFacts{
		Storage: []geo.StoragePoint{
			{Name: "JR Tokyo Station coin lockers", DistanceKM: 0.8},
		},
	}

	got := generateResponses(testHotel(), models.IntentLuggage, facts)

	if len(got) != 4 {
		t.Fatalf("got %d candidates with storage facts, want 4", len(got))
	}
	extra := got[3]
	if extra.Source != "Nearby Options" {
		t.Errorf("extra candidate source = %q, want %q", extra.Source, "Nearby Options")
	}
	if extra.Confidence != 0.6 {
		t.Errorf("extra candidate confidence = %v, want 0.6", extra.Confidence)
	}
	if !strings.Contains(extra.Content, "JR Tokyo Station coin lockers") {
		t.Errorf("extra candidate should name the storage point, got %q", extra.Content)
	}
}

func TestGenerateResponsesAvailabilityWithSummary(t *testing.T) {
	facts := &ContextFacts{
		Availability: &AvailabilitySummary{
			Next90Days:        "available",
			RecommendedWindow: "30-60 days in advance",
		},
	}

	got := generateResponses(testHotel(), models.IntentAvailability, facts)

	if len(got) != 4 {
		t.Fatalf("got %d candidates with availability facts, want 4", len(got))
	}
	extra := got[3]
	if extra.Source != "Availability Data" {
		t.Errorf("extra candidate source = %q, want %q", extra.Source, "Availability Data")
	}
	if extra.Confidence != 0.8 {
		t.Errorf("extra candidate confidence = %v, want 0.8", extra.Confidence)
	}
}

func TestGenerateResponsesAttractionsNamesTopThree(t *testing.T) {
	facts := &ContextFacts{
		Attractions: []geo.Attraction{
			{Name: "Tokyo Skytree"},
			{Name: "Senso-ji Temple"},
			{Name: "Ueno Park"},
			{Name: "Ginza"},
		},
	}

	got := generateResponses(testHotel(), models.IntentAttractions, facts)

	if len(got) != 4 {
		t.Fatalf("got %d candidates with attraction facts, want 4", len(got))
	}
	extra := got[3]
	if extra.Source != "Nearby Attractions" {
		t.Errorf("extra candidate source = %q, want %q", extra.Source, "Nearby Attractions")
	}
	if extra.Confidence != 0.9 {
		t.Errorf("extra candidate confidence = %v, want 0.9", extra.Confidence)
	}
	for _, name := range []string{"Tokyo Skytree", "Senso-ji Temple", "Ueno Park"} {
		if !strings.Contains(extra.Content, name) {
			t.Errorf("extra candidate should mention %q, got %q", name, extra.Content)
		}
	}
	if strings.Contains(extra.Content, "Ginza") {
		t.Errorf("extra candidate should cap at three names, got %q", extra.Content)
	}
}

func TestGenerateResponsesGeneralFallback(t *testing.T) {
	for _, intent := range []models.IntentCategory{models.IntentGeneral, "unknown"} {
		got := generateResponses(testHotel(), intent, &ContextFacts{})

		if len(got) != 3 {
			t.Fatalf("intent %q: got %d candidates, want 3", intent, len(got))
		}
		wantConfidences := []float64{0.7, 0.6, 0.5}
		for i, want := range wantConfidences {
			if got[i].Confidence != want {
				t.Errorf("intent %q: candidate %d confidence = %v, want %v", intent, i, got[i].Confidence, want)
			}
		}
	}
}

package service

import (
	"testing"

	"guestdesk/internal/models"

	"go.uber.org/zap"
)

func TestClassify(t *testing.T) {
	svc := NewIntentService(zap.NewNop())

	tests := []struct {
		name string
		text string
		want models.IntentCategory
	}{
		{"luggage english", "Can I leave my luggage before check-in?", models.IntentLuggage},
		{"luggage locker", "Is there a locker I can use?", models.IntentLuggage},
		{"luggage japanese", "荷物を預かってもらえますか", models.IntentLuggage},
		{"availability english", "Do you have any rooms available next weekend?", models.IntentAvailability},
		{"availability japanese", "来週の空室はありますか", models.IntentAvailability},
		{"attractions english", "What sightseeing spots do you recommend?", models.IntentAttractions},
		{"attractions japanese", "おすすめの観光地を教えてください", models.IntentAttractions},
		{"unmatched falls back to general", "The air conditioning is making a strange noise", models.IntentGeneral},
		{"empty text", "", models.IntentGeneral},
		{"case insensitive", "WHERE CAN I STORE MY BAG?", models.IntentLuggage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyLuggageBeatsAvailabilityOnMixedText(t *testing.T) {
	svc := NewIntentService(zap.NewNop())

	// Both keyword tables match; the earlier table in the lookup order wins.
	got := svc.Classify("Can I store my suitcase while I wait for my reservation?")
	if got != models.IntentLuggage {
		t.Errorf("Classify mixed text = %q, want %q", got, models.IntentLuggage)
	}
}

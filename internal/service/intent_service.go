package service

import (
	"strings"

	"guestdesk/internal/models"

	"go.uber.org/zap"
)

// IntentService assigns an intent category to raw guest message text by
// keyword matching. Keyword tables cover English and Japanese since the
// connected properties receive both.
type IntentService struct {
	logger *zap.Logger
}

func NewIntentService(logger *zap.Logger) *IntentService {
	return &IntentService{logger: logger}
}

var intentKeywords = []struct {
	intent   models.IntentCategory
	keywords []string
}{
	{models.IntentLuggage, []string{
		"luggage", "bag", "suitcase", "store my", "storage", "locker",
		"荷物", "バッグ", "スーツケース", "預かり",
	}},
	{models.IntentAvailability, []string{
		"availability", "available", "booking", "reservation", "vacancy", "free room",
		"予約", "空室", "空き",
	}},
	{models.IntentAttractions, []string{
		"attraction", "sightseeing", "recommend", "things to do", "visit", "tourist",
		"観光", "観光地", "おすすめ", "観光スポット",
	}},
}

// Classify maps message text to an intent category; anything unmatched is
// treated as general.
func (s *IntentService) Classify(text string) models.IntentCategory {
	lower := strings.ToLower(text)

	for _, entry := range intentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.intent
			}
		}
	}

	return models.IntentGeneral
}

package service

import (
	"fmt"
	"strings"

	"guestdesk/internal/models"
)

// generateResponses returns the pre-authored response family for an intent,
// with one extra higher-relevance candidate appended when the context facts
// carry concrete data to substitute. Intents without a family fall back to
// generic acknowledgments so the merge step never starts from nothing.
func generateResponses(hotel *models.Hotel, intent models.IntentCategory, facts *ContextFacts) []models.ReplyCandidate {
	switch intent {
	case models.IntentLuggage:
		return luggageResponses(hotel, facts)
	case models.IntentAvailability:
		return availabilityResponses(hotel, facts)
	case models.IntentAttractions:
		return attractionResponses(hotel, facts)
	default:
		return generalResponses(hotel)
	}
}

func luggageResponses(hotel *models.Hotel, facts *ContextFacts) []models.ReplyCandidate {
	candidates := []models.ReplyCandidate{
		{
			Content:    fmt.Sprintf("%s offers a luggage storage service. Please stop by the front desk; we can hold your bags both before check-in and after check-out.", hotel.Name),
			Type:       "informative",
			Confidence: 0.9,
			Source:     "Hotel Service Info",
		},
		{
			Content:    "We would be happy to store your luggage. It will be kept safe, and the service is available around the clock.",
			Type:       "reassuring",
			Confidence: 0.8,
			Source:     "Standard Response",
		},
		{
			Content:    "Certainly, we can store your luggage. As soon as your room is ready we will bring your bags up for you.",
			Type:       "service_oriented",
			Confidence: 0.7,
			Source:     "Personalized Service",
		},
	}

	if len(facts.Storage) > 0 {
		candidates = append(candidates, models.ReplyCandidate{
			Content:    fmt.Sprintf("Besides storage at the hotel, coin lockers are available nearby. %s is within walking distance.", facts.Storage[0].Name),
			Type:       "comprehensive",
			Confidence: 0.6,
			Source:     "Nearby Options",
		})
	}

	return candidates
}

func availabilityResponses(hotel *models.Hotel, facts *ContextFacts) []models.ReplyCandidate {
	candidates := []models.ReplyCandidate{
		{
			Content:    fmt.Sprintf("We will check availability at %s for you. Could you let us know your preferred dates? For urgent requests please call us directly.", hotel.Name),
			Type:       "inquiry",
			Confidence: 0.9,
			Source:     "Standard Response",
		},
		{
			Content:    "Happy to walk you through our current availability. Share the period you have in mind and we will suggest the best room for your stay.",
			Type:       "service_oriented",
			Confidence: 0.8,
			Source:     "Personalized Service",
		},
		{
			Content:    "We will check the room calendar for you. We do recommend booking early, as dates fill up quickly.",
			Type:       "encouraging",
			Confidence: 0.7,
			Source:     "Booking Encouragement",
		},
	}

	if facts.Availability != nil {
		candidates = append(candidates, models.ReplyCandidate{
			Content:    fmt.Sprintf("Rooms over the next 90 days are currently %s. We recommend reserving %s.", facts.Availability.Next90Days, facts.Availability.RecommendedWindow),
			Type:       "detailed",
			Confidence: 0.8,
			Source:     "Availability Data",
		})
	}

	return candidates
}

func attractionResponses(hotel *models.Hotel, facts *ContextFacts) []models.ReplyCandidate {
	candidates := []models.ReplyCandidate{
		{
			Content:    fmt.Sprintf("We would be glad to introduce the sights around %s. Feel free to ask us about our recommended spots.", hotel.Name),
			Type:       "general",
			Confidence: 0.8,
			Source:     "Standard Response",
		},
		{
			Content:    "We can look up sightseeing information around the hotel for you, including directions and opening hours.",
			Type:       "informative",
			Confidence: 0.7,
			Source:     "Information Service",
		},
		{
			Content:    "We also know a few local hidden gems. Pick up a sightseeing map at the front desk any time.",
			Type:       "local_expert",
			Confidence: 0.6,
			Source:     "Local Knowledge",
		},
	}

	if len(facts.Attractions) > 0 {
		top := facts.Attractions
		if len(top) > 3 {
			top = top[:3]
		}
		names := make([]string, len(top))
		for i, attraction := range top {
			names[i] = attraction.Name
		}
		candidates = append(candidates, models.ReplyCandidate{
			Content:    fmt.Sprintf("Here are our top recommendations: %s are all within easy reach. We can give you detailed directions to any of them.", strings.Join(names, ", ")),
			Type:       "specific",
			Confidence: 0.9,
			Source:     "Nearby Attractions",
		})
	}

	return candidates
}

func generalResponses(hotel *models.Hotel) []models.ReplyCandidate {
	return []models.ReplyCandidate{
		{
			Content:    fmt.Sprintf("The staff at %s are here to help. If you have any questions, please do not hesitate to ask.", hotel.Name),
			Type:       "welcoming",
			Confidence: 0.7,
			Source:     "General Response",
		},
		{
			Content:    "Thank you for your message. We are looking into it and will get back to you shortly.",
			Type:       "acknowledging",
			Confidence: 0.6,
			Source:     "Acknowledgment",
		},
		{
			Content:    "We will do our best to accommodate your request. Please visit the front desk if you need anything during your stay.",
			Type:       "service_oriented",
			Confidence: 0.5,
			Source:     "Service Commitment",
		},
	}
}

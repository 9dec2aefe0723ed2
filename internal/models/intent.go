package models

// IntentCategory is the classified purpose of a guest message.
type IntentCategory string

const (
	IntentLuggage      IntentCategory = "luggage"
	IntentAvailability IntentCategory = "availability"
	IntentAttractions  IntentCategory = "attractions"
	IntentGeneral      IntentCategory = "general"
)

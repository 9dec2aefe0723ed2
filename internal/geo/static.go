package geo

import (
	"context"

	"guestdesk/internal/models"

	"go.uber.org/zap"
)

// StaticProvider serves curated place data keyed by hotel city. It backs the
// service when no Maps API key is configured and keeps suggestion requests
// working offline.
type StaticProvider struct {
	logger *zap.Logger
}

func NewStaticProvider(logger *zap.Logger) *StaticProvider {
	return &StaticProvider{logger: logger}
}

var cityAttractions = map[string][]Attraction{
	"Tokyo": {
		{Name: "Tokyo Skytree", Category: "sightseeing", Rating: 4.5, DistanceKM: 1.2},
		{Name: "Senso-ji Temple", Category: "sightseeing", Rating: 4.3, DistanceKM: 0.8},
		{Name: "Ueno Park", Category: "park", Rating: 4.2, DistanceKM: 2.1},
		{Name: "Tsukiji Outer Market", Category: "market", Rating: 4.0, DistanceKM: 1.5},
		{Name: "Ginza", Category: "shopping", Rating: 4.4, DistanceKM: 2.8},
	},
	"Osaka": {
		{Name: "Osaka Castle", Category: "sightseeing", Rating: 4.3, DistanceKM: 1.5},
		{Name: "Dotonbori", Category: "sightseeing", Rating: 4.2, DistanceKM: 0.9},
		{Name: "Tsutenkaku Tower", Category: "sightseeing", Rating: 4.1, DistanceKM: 1.8},
		{Name: "Shinsaibashi", Category: "shopping", Rating: 4.0, DistanceKM: 1.2},
		{Name: "Osaka Aquarium Kaiyukan", Category: "aquarium", Rating: 4.4, DistanceKM: 3.2},
	},
	"Kyoto": {
		{Name: "Kiyomizu-dera", Category: "sightseeing", Rating: 4.5, DistanceKM: 2.1},
		{Name: "Kinkaku-ji", Category: "sightseeing", Rating: 4.4, DistanceKM: 3.5},
		{Name: "Arashiyama", Category: "sightseeing", Rating: 4.3, DistanceKM: 5.2},
		{Name: "Fushimi Inari Shrine", Category: "sightseeing", Rating: 4.2, DistanceKM: 4.8},
		{Name: "Gion", Category: "sightseeing", Rating: 4.1, DistanceKM: 1.8},
	},
	"Yokohama": {
		{Name: "Yokohama Chinatown", Category: "sightseeing", Rating: 4.2, DistanceKM: 1.8},
		{Name: "Minato Mirai", Category: "sightseeing", Rating: 4.3, DistanceKM: 2.5},
		{Name: "Landmark Tower", Category: "sightseeing", Rating: 4.1, DistanceKM: 2.2},
		{Name: "Yamashita Park", Category: "park", Rating: 4.0, DistanceKM: 1.5},
		{Name: "Cosmo World", Category: "theme park", Rating: 4.2, DistanceKM: 3.1},
	},
	"Fukuoka": {
		{Name: "Hakata Station", Category: "sightseeing", Rating: 4.0, DistanceKM: 0.5},
		{Name: "Tenjin", Category: "shopping", Rating: 4.2, DistanceKM: 1.2},
		{Name: "Dazaifu Tenmangu", Category: "sightseeing", Rating: 4.3, DistanceKM: 8.5},
		{Name: "Fukuoka Castle Ruins", Category: "sightseeing", Rating: 4.1, DistanceKM: 2.8},
		{Name: "Fukuoka City Museum", Category: "museum", Rating: 4.0, DistanceKM: 3.2},
	},
}

var defaultAttractions = []Attraction{
	{Name: "Neighborhood park", Category: "park", Rating: 4.0, DistanceKM: 0.8},
	{Name: "Local restaurant district", Category: "restaurant", Rating: 4.1, DistanceKM: 0.5},
	{Name: "Shopping center", Category: "shopping", Rating: 4.2, DistanceKM: 1.2},
	{Name: "City viewpoint", Category: "sightseeing", Rating: 4.3, DistanceKM: 1.5},
	{Name: "History museum", Category: "museum", Rating: 4.0, DistanceKM: 2.1},
}

var cityStorage = map[string][]StoragePoint{
	"Tokyo": {
		{Name: "JR Tokyo Station coin lockers", Address: "Inside JR Tokyo Station", Rating: 4.2, DistanceKM: 0.8},
		{Name: "Shibuya Station coin lockers", Address: "Inside JR Shibuya Station", Rating: 4.0, DistanceKM: 1.2},
		{Name: "Shinjuku Station coin lockers", Address: "Inside JR Shinjuku Station", Rating: 4.1, DistanceKM: 1.5},
	},
	"Osaka": {
		{Name: "JR Osaka Station coin lockers", Address: "Inside JR Osaka Station", Rating: 4.3, DistanceKM: 0.9},
		{Name: "Namba Station coin lockers", Address: "Inside Nankai Namba Station", Rating: 4.1, DistanceKM: 1.1},
		{Name: "Umeda Station coin lockers", Address: "Inside Hankyu Umeda Station", Rating: 4.2, DistanceKM: 1.3},
	},
	"Kyoto": {
		{Name: "JR Kyoto Station coin lockers", Address: "Inside JR Kyoto Station", Rating: 4.4, DistanceKM: 1.0},
		{Name: "Gion-Shijo Station coin lockers", Address: "Inside Keihan Gion-Shijo Station", Rating: 4.0, DistanceKM: 1.8},
		{Name: "Kawaramachi Station coin lockers", Address: "Inside Hankyu Kawaramachi Station", Rating: 4.1, DistanceKM: 2.0},
	},
	"Yokohama": {
		{Name: "JR Yokohama Station coin lockers", Address: "Inside JR Yokohama Station", Rating: 4.2, DistanceKM: 1.2},
		{Name: "Minato Mirai Station coin lockers", Address: "Minatomirai Line concourse", Rating: 4.0, DistanceKM: 2.5},
		{Name: "Kannai Station coin lockers", Address: "Inside JR Kannai Station", Rating: 4.1, DistanceKM: 1.8},
	},
	"Fukuoka": {
		{Name: "JR Hakata Station coin lockers", Address: "Inside JR Hakata Station", Rating: 4.3, DistanceKM: 0.5},
		{Name: "Tenjin Station coin lockers", Address: "Inside Tenjin subway station", Rating: 4.1, DistanceKM: 1.2},
		{Name: "Nakasu-Kawabata Station coin lockers", Address: "Inside Nakasu-Kawabata subway station", Rating: 4.0, DistanceKM: 1.5},
	},
}

var defaultStorage = []StoragePoint{
	{Name: "Nearest station coin lockers", Address: "Closest railway station", Rating: 4.0, DistanceKM: 0.8},
	{Name: "Convenience store luggage drop", Address: "Neighborhood convenience store", Rating: 3.8, DistanceKM: 0.5},
	{Name: "Local luggage storage service", Address: "Downtown service counter", Rating: 4.1, DistanceKM: 1.0},
}

func (p *StaticProvider) NearbyAttractions(_ context.Context, hotel *models.Hotel, _ int) ([]Attraction, error) {
	source, ok := cityAttractions[hotel.City]
	if !ok {
		source = defaultAttractions
	}

	attractions := make([]Attraction, len(source))
	copy(attractions, source)
	for i := range attractions {
		if attractions[i].Address == "" {
			attractions[i].Address = "Near " + attractions[i].Name + ", " + hotel.City
		}
		// Approximate coordinates; the curated set carries distances only.
		attractions[i].Latitude = hotel.Latitude + attractions[i].DistanceKM*0.01
		attractions[i].Longitude = hotel.Longitude + attractions[i].DistanceKM*0.01
	}

	return attractions, nil
}

func (p *StaticProvider) NearbyStorage(_ context.Context, hotel *models.Hotel) ([]StoragePoint, error) {
	source, ok := cityStorage[hotel.City]
	if !ok {
		source = defaultStorage
	}

	points := make([]StoragePoint, len(source))
	copy(points, source)
	return points, nil
}

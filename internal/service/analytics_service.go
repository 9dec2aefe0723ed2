package service

import (
	"context"
	"fmt"
	"sort"

	"guestdesk/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingStats aggregates a hotel's booking history for reporting. It also
// primes seeded historical data but plays no part in ranking suggestions.
type BookingStats struct {
	TotalBookings       int            `json:"total_bookings"`
	AverageStayDays     float64        `json:"average_stay_days"`
	AverageGuestCount   float64        `json:"average_guest_count"`
	PopularRoomTypes    map[string]int `json:"popular_room_types"`
	PeakMonths          []int          `json:"peak_months"`
	MonthlyDistribution map[string]int `json:"monthly_distribution"`
	MonthlyTrends       map[string]int `json:"monthly_trends"`
	GrowthRate          float64        `json:"growth_rate"`
}

type AnalyticsService struct {
	bookings BookingStore
	logger   *zap.Logger
}

func NewAnalyticsService(bookings BookingStore, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		bookings: bookings,
		logger:   logger,
	}
}

func (s *AnalyticsService) Analyze(ctx context.Context, hotelID uuid.UUID) (*BookingStats, error) {
	bookings, err := s.bookings.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	stats := AnalyzeBookings(bookings)

	s.logger.Info("Booking analysis completed",
		zap.String("hotel_id", hotelID.String()),
		zap.Int("bookings", stats.TotalBookings),
	)

	return stats, nil
}

// AnalyzeBookings computes all aggregate measures from a booking collection.
// Pure function; an empty collection yields zero values throughout.
func AnalyzeBookings(bookings []*models.Booking) *BookingStats {
	stats := &BookingStats{
		TotalBookings:       len(bookings),
		PopularRoomTypes:    make(map[string]int),
		PeakMonths:          []int{},
		MonthlyDistribution: make(map[string]int),
		MonthlyTrends:       make(map[string]int),
	}

	var staySum float64
	var stayCount int
	var guestSum int
	monthCounts := make(map[int]int)

	for _, booking := range bookings {
		if !booking.CheckIn.IsZero() && !booking.CheckOut.IsZero() {
			staySum += booking.CheckOut.Sub(booking.CheckIn).Hours() / 24
			stayCount++
		}
		guestSum += booking.GuestCount
		if booking.RoomType != "" {
			stats.PopularRoomTypes[booking.RoomType]++
		}
		if !booking.CheckIn.IsZero() {
			month := int(booking.CheckIn.Month())
			monthCounts[month]++
			stats.MonthlyDistribution[fmt.Sprintf("%d", month)]++
			stats.MonthlyTrends[booking.CheckIn.Format("2006-01")]++
		}
	}

	if stayCount > 0 {
		stats.AverageStayDays = staySum / float64(stayCount)
	}
	if len(bookings) > 0 {
		stats.AverageGuestCount = float64(guestSum) / float64(len(bookings))
	}

	stats.PeakMonths = peakMonths(monthCounts, 3)
	stats.GrowthRate = growthRate(stats.MonthlyTrends)

	return stats
}

// peakMonths returns the top-n months by booking-start frequency. Counts tie
// toward the earlier month to keep the result deterministic.
func peakMonths(counts map[int]int, n int) []int {
	months := make([]int, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		if counts[months[i]] != counts[months[j]] {
			return counts[months[i]] > counts[months[j]]
		}
		return months[i] < months[j]
	})

	if len(months) > n {
		months = months[:n]
	}
	return months
}

// growthRate compares the first and last period counts in chronological
// order: (last - first) / first * 100. Zero when fewer than two periods
// exist or the first period is empty.
func growthRate(trends map[string]int) float64 {
	if len(trends) < 2 {
		return 0
	}

	periods := make([]string, 0, len(trends))
	for period := range trends {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	first := trends[periods[0]]
	last := trends[periods[len(periods)-1]]
	if first == 0 {
		return 0
	}

	return float64(last-first) / float64(first) * 100
}

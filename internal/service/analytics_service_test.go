package service

import (
	"math"
	"testing"
	"time"

	"guestdesk/internal/models"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 15, 0, 0, 0, time.UTC)
}

func TestAnalyzeBookingsEmpty(t *testing.T) {
	got := AnalyzeBookings(nil)

	if got.TotalBookings != 0 {
		t.Errorf("TotalBookings = %d, want 0", got.TotalBookings)
	}
	if got.AverageStayDays != 0 {
		t.Errorf("AverageStayDays = %v, want 0", got.AverageStayDays)
	}
	if got.AverageGuestCount != 0 {
		t.Errorf("AverageGuestCount = %v, want 0", got.AverageGuestCount)
	}
	if len(got.PeakMonths) != 0 {
		t.Errorf("PeakMonths = %v, want empty", got.PeakMonths)
	}
	if got.GrowthRate != 0 {
		t.Errorf("GrowthRate = %v, want 0", got.GrowthRate)
	}
}

func TestAnalyzeBookingsAverages(t *testing.T) {
	bookings := []*models.Booking{
		{CheckIn: day(2026, time.March, 1), CheckOut: day(2026, time.March, 4), GuestCount: 2, RoomType: "double"},
		{CheckIn: day(2026, time.March, 10), CheckOut: day(2026, time.March, 11), GuestCount: 1, RoomType: "single"},
		// Missing dates are skipped for the stay average but still count
		// toward guests and room types.
		{GuestCount: 3, RoomType: "double"},
	}

	got := AnalyzeBookings(bookings)

	if got.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", got.TotalBookings)
	}
	if got.AverageStayDays != 2 {
		t.Errorf("AverageStayDays = %v, want 2", got.AverageStayDays)
	}
	if got.AverageGuestCount != 2 {
		t.Errorf("AverageGuestCount = %v, want 2", got.AverageGuestCount)
	}
	if got.PopularRoomTypes["double"] != 2 || got.PopularRoomTypes["single"] != 1 {
		t.Errorf("PopularRoomTypes = %v", got.PopularRoomTypes)
	}
	if got.MonthlyDistribution["3"] != 2 {
		t.Errorf("MonthlyDistribution[3] = %d, want 2", got.MonthlyDistribution["3"])
	}
}

func TestAnalyzeBookingsPeakMonths(t *testing.T) {
	var bookings []*models.Booking
	add := func(month time.Month, count int) {
		for i := 0; i < count; i++ {
			bookings = append(bookings, &models.Booking{
				CheckIn:  day(2026, month, 1+i),
				CheckOut: day(2026, month, 2+i),
			})
		}
	}
	add(time.July, 4)
	add(time.August, 4)
	add(time.December, 3)
	add(time.February, 1)

	got := AnalyzeBookings(bookings)

	want := []int{7, 8, 12}
	if len(got.PeakMonths) != len(want) {
		t.Fatalf("PeakMonths = %v, want %v", got.PeakMonths, want)
	}
	for i := range want {
		if got.PeakMonths[i] != want[i] {
			t.Errorf("PeakMonths = %v, want %v", got.PeakMonths, want)
			break
		}
	}
}

func TestAnalyzeBookingsGrowthRate(t *testing.T) {
	bookings := []*models.Booking{
		{CheckIn: day(2026, time.January, 5), CheckOut: day(2026, time.January, 7)},
		{CheckIn: day(2026, time.January, 20), CheckOut: day(2026, time.January, 22)},
		{CheckIn: day(2026, time.March, 5), CheckOut: day(2026, time.March, 8)},
		{CheckIn: day(2026, time.March, 12), CheckOut: day(2026, time.March, 13)},
		{CheckIn: day(2026, time.March, 21), CheckOut: day(2026, time.March, 24)},
	}

	got := AnalyzeBookings(bookings)

	// January 2, March 3: (3-2)/2 * 100 = 50.
	if math.Abs(got.GrowthRate-50) > 1e-9 {
		t.Errorf("GrowthRate = %v, want 50", got.GrowthRate)
	}
	if got.MonthlyTrends["2026-01"] != 2 || got.MonthlyTrends["2026-03"] != 3 {
		t.Errorf("MonthlyTrends = %v", got.MonthlyTrends)
	}
}

func TestGrowthRateSinglePeriod(t *testing.T) {
	if got := growthRate(map[string]int{"2026-01": 5}); got != 0 {
		t.Errorf("growthRate single period = %v, want 0", got)
	}
	if got := growthRate(nil); got != 0 {
		t.Errorf("growthRate nil = %v, want 0", got)
	}
	if got := growthRate(map[string]int{"2026-01": 0, "2026-02": 4}); got != 0 {
		t.Errorf("growthRate zero first period = %v, want 0", got)
	}
}

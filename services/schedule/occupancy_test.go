package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorly/models"
)

func TestDailyOccupancy(t *testing.T) {
	branch := models.Branch{
		Name:      "Center",
		RoomCount: 4,
		OpeningHours: map[int]models.DayHours{
			1: {Start: 16, End: 22}, // 6 opening hours
		},
		Sessions: []models.Session{
			{ID: "s1", DayOfWeek: 1, StartTime: "16:00", EndTime: "17:30", Level: "L1"},
			{ID: "p1s", DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", Period: "p1"}, // period session, not counted
		},
	}

	days := DailyOccupancy(branch)
	assert.Len(t, days, 7)

	monday := days[1]
	assert.Equal(t, 24.0, monday.CapacityHours)
	assert.Equal(t, 1.5, monday.ProgrammedHours)
	assert.Equal(t, 22.5, monday.AvailableHours)
	assert.InDelta(t, 6.25, monday.OccupancyRate, 0.001)
	assert.Equal(t, 1, monday.SessionCount)
	assert.True(t, monday.UnderUtilized)
	assert.Equal(t, 15, monday.ExtraSessions)

	t.Run("closed day has zero rate, not NaN", func(t *testing.T) {
		sunday := days[0]
		assert.Equal(t, 0.0, sunday.CapacityHours)
		assert.Equal(t, 0.0, sunday.OccupancyRate)
		assert.False(t, sunday.UnderUtilized)
	})
}

func TestDailyOccupancyOverbooked(t *testing.T) {
	branch := models.Branch{
		Name:      "Tiny",
		RoomCount: 1,
		OpeningHours: map[int]models.DayHours{
			3: {Start: 18, End: 20},
		},
		Sessions: []models.Session{
			{ID: "s1", DayOfWeek: 3, StartTime: "16:00", EndTime: "18:00"},
			{ID: "s2", DayOfWeek: 3, StartTime: "18:00", EndTime: "20:00"},
		},
	}

	wednesday := DailyOccupancy(branch)[3]
	assert.Equal(t, 2.0, wednesday.CapacityHours)
	assert.Equal(t, 4.0, wednesday.ProgrammedHours)
	// Over-booking is reported as-is, not clamped.
	assert.Equal(t, -2.0, wednesday.AvailableHours)
	assert.InDelta(t, 200.0, wednesday.OccupancyRate, 0.001)
	assert.False(t, wednesday.UnderUtilized)
}

func TestWeeklyOccupancy(t *testing.T) {
	branch := models.Branch{
		Name:      "Center",
		RoomCount: 2,
		OpeningHours: map[int]models.DayHours{
			1: {Start: 16, End: 22},
			2: {Start: 16, End: 22},
			3: {Start: 14, End: 22},
		},
		Sessions: []models.Session{
			{ID: "s1", DayOfWeek: 1, StartTime: "16:00", EndTime: "17:30"},
			{ID: "s2", DayOfWeek: 1, StartTime: "18:00", EndTime: "19:30"},
			{ID: "s3", DayOfWeek: 3, StartTime: "14:00", EndTime: "16:00"},
		},
	}

	week := WeeklyOccupancy(branch)
	assert.Equal(t, "Center", week.Branch)

	// Weekly totals equal the independent sums of the daily snapshots.
	var capacity, programmed float64
	for _, d := range week.Days {
		capacity += d.CapacityHours
		programmed += d.ProgrammedHours
	}
	assert.Equal(t, capacity, week.CapacityHours)
	assert.Equal(t, programmed, week.ProgrammedHours)
	assert.Equal(t, 40.0, week.CapacityHours) // 12 + 12 + 16
	assert.Equal(t, 5.0, week.ProgrammedHours)
	assert.Equal(t, 35.0, week.AvailableHours)
	assert.InDelta(t, 12.5, week.OccupancyRate, 0.001)
}

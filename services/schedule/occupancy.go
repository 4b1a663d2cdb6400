package schedule

import (
	"math"

	"tutorly/models"
)

// Under-utilization heuristic: a day with room to spare is flagged when its
// occupancy sits under this rate and at least one typical session would
// still fit.
const (
	underUtilizedRate   = 60.0
	typicalSessionHours = 1.5
)

// DailyOccupancy computes the seven per-weekday snapshots for a branch from
// its normal-schedule sessions and room configuration. Available hours are
// not clamped, so an over-booked day shows up negative. A closed day
// (capacity 0) reports a rate of 0 rather than dividing by zero.
func DailyOccupancy(b models.Branch) []models.DayOccupancy {
	days := make([]models.DayOccupancy, 7)
	for day := 0; day < 7; day++ {
		var programmed float64
		var count int
		for _, s := range b.Sessions {
			if !MatchesPeriod(s, models.PeriodNormal) || s.DayOfWeek != day {
				continue
			}
			programmed += Duration(s.StartTime, s.EndTime)
			count++
		}

		capacity := float64(b.RoomCount) * b.OpeningHours[day].Hours()
		available := capacity - programmed
		rate := 0.0
		if capacity > 0 {
			rate = programmed / capacity * 100
		}

		snap := models.DayOccupancy{
			Day:             day,
			ProgrammedHours: programmed,
			CapacityHours:   capacity,
			AvailableHours:  available,
			OccupancyRate:   rate,
			SessionCount:    count,
		}
		if rate < underUtilizedRate && available >= typicalSessionHours {
			snap.UnderUtilized = true
			snap.ExtraSessions = int(math.Floor(available / typicalSessionHours))
		}
		days[day] = snap
	}
	return days
}

// WeeklyOccupancy sums the seven daily snapshots. Capacity and programmed
// hours are summed independently and the weekly rate derived from the
// totals, so no day leaks into another.
func WeeklyOccupancy(b models.Branch) models.WeekOccupancy {
	days := DailyOccupancy(b)
	week := models.WeekOccupancy{Branch: b.Name, Days: days}
	for _, d := range days {
		week.ProgrammedHours += d.ProgrammedHours
		week.CapacityHours += d.CapacityHours
	}
	week.AvailableHours = week.CapacityHours - week.ProgrammedHours
	if week.CapacityHours > 0 {
		week.OccupancyRate = week.ProgrammedHours / week.CapacityHours * 100
	}
	return week
}

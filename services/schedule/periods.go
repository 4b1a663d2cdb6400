package schedule

import (
	"math"
	"time"

	"tutorly/models"
)

// DateLayout is the calendar-date form used on period bounds and
// exceptional sessions.
const DateLayout = "2006-01-02"

// utcDate rebuilds a moment as its calendar day at UTC midnight. Period
// bounds parse as UTC instants, so comparing against a reference that kept
// its own zone would shift days near midnight; only the calendar components
// may participate in date comparisons.
func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}

// CollectPeriods folds every branch's exceptional periods into one catalog.
// Branches are visited in the given order and the first occurrence of an id
// wins; later duplicates are dropped even when their fields differ, so the
// same period declared across branches appears once.
func CollectPeriods(branches []models.Branch) []models.Period {
	seen := make(map[string]bool)
	var catalog []models.Period
	for _, b := range branches {
		for _, p := range b.ExceptionalPeriods {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			catalog = append(catalog, p)
		}
	}
	return catalog
}

// DateInPeriod reports whether date falls within the period's inclusive
// calendar range. Time-of-day and zone on the reference are ignored: the
// comparison is lexical over zero-padded ISO dates, never between instants.
// A period bound that fails to parse makes the period never match.
func DateInPeriod(date time.Time, p models.Period) bool {
	if _, ok := parseDate(p.StartDate); !ok {
		return false
	}
	if _, ok := parseDate(p.EndDate); !ok {
		return false
	}
	d := date.Format(DateLayout)
	return d >= p.StartDate && d <= p.EndDate
}

// ResolveActivePeriod returns the branch's governing period for date, or nil
// when the normal schedule applies. Periods are scanned in declaration
// order and the first match wins; when two periods overlap the same date the
// earlier-declared one governs. DetectPeriodConflicts exists so authoring
// tools can warn before that ambiguity is created.
func ResolveActivePeriod(b models.Branch, date time.Time) *models.Period {
	for i := range b.ExceptionalPeriods {
		if DateInPeriod(date, b.ExceptionalPeriods[i]) {
			return &b.ExceptionalPeriods[i]
		}
	}
	return nil
}

// DetectPeriodConflicts returns every existing period whose date range
// intersects the candidate's: the candidate starts inside it, ends inside
// it, or fully contains it. The result is advisory; storing an overlapping
// period remains the caller's policy call.
func DetectPeriodConflicts(candidate models.Period, existing []models.Period) []models.Period {
	cStart, ok := parseDate(candidate.StartDate)
	if !ok {
		return nil
	}
	cEnd, ok := parseDate(candidate.EndDate)
	if !ok {
		return nil
	}

	var conflicts []models.Period
	for _, p := range existing {
		pStart, ok := parseDate(p.StartDate)
		if !ok {
			continue
		}
		pEnd, ok := parseDate(p.EndDate)
		if !ok {
			continue
		}
		startsInside := !cStart.Before(pStart) && !cStart.After(pEnd)
		endsInside := !cEnd.Before(pStart) && !cEnd.After(pEnd)
		contains := cStart.Before(pStart) && cEnd.After(pEnd)
		if startsInside || endsInside || contains {
			conflicts = append(conflicts, p)
		}
	}
	return conflicts
}

// ClassifyPeriod places a period relative to now: past once its end date has
// elapsed, future before its start date, active in between. Day counts are
// whole calendar days measured from now's calendar day, so a period ending
// today is still active with zero days remaining.
func ClassifyPeriod(p models.Period, now time.Time) models.PeriodStatus {
	start, okStart := parseDate(p.StartDate)
	end, okEnd := parseDate(p.EndDate)
	if !okStart || !okEnd {
		return models.PeriodStatus{State: models.PeriodStatePast}
	}

	today := utcDate(now)
	switch {
	case today.After(end):
		return models.PeriodStatus{State: models.PeriodStatePast}
	case today.Before(start):
		return models.PeriodStatus{
			State:          models.PeriodStateFuture,
			DaysUntilStart: ceilDays(start.Sub(today)),
		}
	default:
		return models.PeriodStatus{
			State:         models.PeriodStateActive,
			DaysRemaining: ceilDays(end.Sub(today)),
		}
	}
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

package schedule

import (
	"sort"
	"time"

	"tutorly/models"
)

// Selection is the caller's view context: which period regime, which grade
// level (empty for all), and the reference moment.
type Selection struct {
	Period string // models.PeriodNormal, models.PeriodAuto or a period id
	Level  string
	Now    time.Time
}

// EffectivePeriod resolves a period selector to either a concrete period id
// or models.PeriodNormal. The "auto" selector asks the branch which period
// governs date, falling back to the normal schedule when none does. An
// empty selector means normal.
func EffectivePeriod(b models.Branch, selector string, date time.Time) string {
	switch selector {
	case models.PeriodAuto:
		if p := ResolveActivePeriod(b, date); p != nil {
			return p.ID
		}
		return models.PeriodNormal
	case "":
		return models.PeriodNormal
	default:
		return selector
	}
}

// MatchesPeriod reports whether a session belongs to the resolved regime.
// The normal regime takes exactly the sessions with no period id; a concrete
// id takes exactly the sessions carrying that id. A session can never be in
// scope for both. An id matching no session yields an empty schedule, which
// is the intended degradation for unknown ids.
func MatchesPeriod(s models.Session, effective string) bool {
	if effective == models.PeriodNormal {
		return s.Period == ""
	}
	return s.Period == effective
}

// MatchesDay reports whether a session occurs on the given calendar date:
// exceptional sessions match only their literal date, recurring sessions
// match the weekday.
func MatchesDay(s models.Session, date time.Time) bool {
	if s.IsExceptional {
		return s.SpecificDate == date.Format(DateLayout)
	}
	return s.DayOfWeek == int(date.Weekday())
}

// MatchesLevel applies the optional level filter; an empty filter passes
// every session.
func MatchesLevel(s models.Session, level string) bool {
	if level == "" {
		return true
	}
	return HasLevel(s, level)
}

// WeekSchedule returns the branch's full weekly timetable for the selected
// regime and level, sorted for presentation and export.
func WeekSchedule(b models.Branch, sel Selection) []models.Session {
	effective := EffectivePeriod(b, sel.Period, sel.Now)
	var out []models.Session
	for _, s := range b.Sessions {
		if MatchesPeriod(s, effective) && MatchesLevel(s, sel.Level) {
			out = append(out, s)
		}
	}
	SortSessions(out)
	return out
}

// DaySessions narrows WeekSchedule to the sessions occurring on sel.Now's
// calendar date.
func DaySessions(b models.Branch, sel Selection) []models.Session {
	effective := EffectivePeriod(b, sel.Period, sel.Now)
	var out []models.Session
	for _, s := range b.Sessions {
		if MatchesPeriod(s, effective) && MatchesDay(s, sel.Now) && MatchesLevel(s, sel.Level) {
			out = append(out, s)
		}
	}
	SortSessions(out)
	return out
}

// LiveStatus derives a session's state at now. A manual override
// (cancelled, delayed, absent) wins outright regardless of the clock;
// otherwise the minute-of-day is placed against the half-open
// [startTime, endTime) window.
func LiveStatus(s models.Session, now time.Time) string {
	switch s.Status {
	case models.StatusCancelled, models.StatusDelayed, models.StatusAbsent:
		return s.Status
	}

	minute := now.Hour()*60 + now.Minute()
	start, err := ClockMinutes(s.StartTime)
	if err != nil {
		return models.StatusUpcoming
	}
	if minute < start {
		return models.StatusUpcoming
	}
	end, err := ClockMinutes(s.EndTime)
	if err == nil && minute < end {
		return models.StatusOngoing
	}
	return models.StatusEnded
}

// CurrentSessions is the "happening now" view: today's sessions annotated
// with their live status. Ended sessions drop out unless a manual override
// keeps them visible (a cancelled class stays on the board all day).
func CurrentSessions(b models.Branch, sel Selection) []models.ClassifiedSession {
	var out []models.ClassifiedSession
	for _, s := range DaySessions(b, sel) {
		status := LiveStatus(s, sel.Now)
		if status == models.StatusEnded {
			continue
		}
		out = append(out, models.ClassifiedSession{Session: s, LiveStatus: status})
	}
	return out
}

// SortSessions orders sessions by weekday, then by start time parsed into
// minutes-of-day. Sessions whose start time fails to parse sort after the
// well-formed ones, lexically among themselves, so bad rows cannot shuffle
// good ones.
func SortSessions(sessions []models.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		am, aErr := ClockMinutes(a.StartTime)
		bm, bErr := ClockMinutes(b.StartTime)
		switch {
		case aErr == nil && bErr == nil:
			return am < bm
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return a.StartTime < b.StartTime
		}
	})
}

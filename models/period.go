package models

// Period selector values accepted from callers alongside a concrete id.
const (
	PeriodNormal = "normal"
	PeriodAuto   = "auto"
)

// Period is a named date range that supersedes the normal weekly schedule
// while active. Dates are inclusive "2006-01-02" calendar dates; any
// time-of-day component is ignored.
type Period struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Type      string `bson:"type" json:"type"` // e.g. "reduced-hours", "vacation", "exams", "other"
	StartDate string `bson:"startDate" json:"startDate"`
	EndDate   string `bson:"endDate" json:"endDate"`
}

// PeriodDraft is the authoring payload for a new period. ID is optional;
// one is assigned on creation when absent.
type PeriodDraft struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// PeriodValidation reports every rule a draft violates, not just the first.
type PeriodValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Period states relative to a reference moment.
const (
	PeriodStatePast   = "past"
	PeriodStateActive = "active"
	PeriodStateFuture = "future"
)

// PeriodStatus carries a period's state relative to "now" plus the day
// counts the schedule views display.
type PeriodStatus struct {
	State          string `json:"state"`
	DaysRemaining  int    `json:"daysRemaining,omitempty"`  // active only
	DaysUntilStart int    `json:"daysUntilStart,omitempty"` // future only
}

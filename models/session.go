package models

// Session statuses a coordinator can set manually. When present they win
// over any time-derived status.
const (
	StatusCancelled = "cancelled"
	StatusDelayed   = "delayed"
	StatusAbsent    = "absent"
)

// Live statuses derived from the clock.
const (
	StatusUpcoming = "upcoming"
	StatusOngoing  = "ongoing"
	StatusEnded    = "ended"
)

// Session represents one timetabled class occurrence. A normal session
// repeats every week on DayOfWeek; an exceptional session applies only to
// SpecificDate. Times are zero-padded 24h "HH:MM" wall-clock tokens and
// EndTime is strictly after StartTime within the same day.
type Session struct {
	ID            string `bson:"id" json:"id"`
	DayOfWeek     int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	IsExceptional bool   `bson:"isExceptional,omitempty" json:"isExceptional,omitempty"`
	SpecificDate  string `bson:"specificDate,omitempty" json:"specificDate,omitempty"` // "2006-01-02", set when IsExceptional
	StartTime     string `bson:"startTime" json:"startTime"`
	EndTime       string `bson:"endTime" json:"endTime"`
	Level         string `bson:"level,omitempty" json:"level,omitempty"` // one label, or several joined with " + "
	Subject       string `bson:"subject,omitempty" json:"subject,omitempty"`
	Professor     string `bson:"professor,omitempty" json:"professor,omitempty"`
	Room          string `bson:"room,omitempty" json:"room,omitempty"`
	Period        string `bson:"period,omitempty" json:"period,omitempty"` // Period.ID, empty for the normal schedule
	Status        string `bson:"status,omitempty" json:"status,omitempty"` // manual override: cancelled/delayed/absent
}

// ClassifiedSession is a session annotated with its live status for
// "happening now" views.
type ClassifiedSession struct {
	Session
	LiveStatus string `json:"liveStatus"`
}

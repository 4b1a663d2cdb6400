package models

// DayHours is a branch's opening window for one weekday, in whole hours of
// the day (e.g. {16, 22} for 4pm-10pm).
type DayHours struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Hours returns the length of the opening window.
func (d DayHours) Hours() float64 {
	return float64(d.End - d.Start)
}

// Branch is one teaching site: its rooms, opening hours, exceptional
// periods and full session catalog (normal plus every period, distinguished
// by Session.Period).
type Branch struct {
	Name               string           `bson:"name" json:"name"`
	RoomCount          int              `bson:"roomCount" json:"roomCount"`
	OpeningHours       map[int]DayHours `bson:"openingHours" json:"openingHours"` // keyed by weekday 0-6
	ExceptionalPeriods []Period         `bson:"exceptionalPeriods,omitempty" json:"exceptionalPeriods,omitempty"`
	Sessions           []Session        `bson:"sessions,omitempty" json:"sessions,omitempty"`
}

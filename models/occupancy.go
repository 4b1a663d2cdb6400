package models

// DayOccupancy is the read-time projection of one weekday's scheduling load
// against room capacity. Never persisted; recomputed on demand.
type DayOccupancy struct {
	Day             int     `json:"day"` // weekday 0-6
	ProgrammedHours float64 `json:"programmedHours"`
	CapacityHours   float64 `json:"capacityHours"`  // roomCount x opening hours
	AvailableHours  float64 `json:"availableHours"` // capacity - programmed, may go negative when over-booked
	OccupancyRate   float64 `json:"occupancyRate"`  // percent, 0 when capacity is 0
	SessionCount    int     `json:"sessionCount"`
	UnderUtilized   bool    `json:"underUtilized"`
	ExtraSessions   int     `json:"extraSessions,omitempty"` // estimated additional 1.5h sessions that would fit
}

// WeekOccupancy sums the seven daily snapshots for a branch.
type WeekOccupancy struct {
	Branch          string         `json:"branch"`
	Days            []DayOccupancy `json:"days"`
	ProgrammedHours float64        `json:"programmedHours"`
	CapacityHours   float64        `json:"capacityHours"`
	AvailableHours  float64        `json:"availableHours"`
	OccupancyRate   float64        `json:"occupancyRate"`
}

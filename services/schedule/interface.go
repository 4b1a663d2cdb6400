// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	"tutorly/models"
)

// PeriodView pairs a catalog period with its state relative to now.
type PeriodView struct {
	models.Period
	Status models.PeriodStatus `json:"status"`
}

// PeriodCreateResult is the authoring outcome: the validation verdict,
// the stored period when the draft was valid, and any overlapping periods
// reported as warnings (overlap does not block storage).
type PeriodCreateResult struct {
	Validation models.PeriodValidation `json:"validation"`
	Period     *models.Period          `json:"period,omitempty"`
	Conflicts  []models.Period         `json:"conflicts,omitempty"`
}

// ScheduleService exposes the schedule, period and occupancy views over
// branch snapshots fetched from storage.
type ScheduleService interface {
	WeekView(ctx context.Context, branchName string, sel Selection) ([]models.Session, error)
	CurrentView(ctx context.Context, branchName string, sel Selection) ([]models.ClassifiedSession, error)
	ActivePeriod(ctx context.Context, branchName string, date time.Time) (*models.Period, error)
	PeriodCatalog(ctx context.Context, now time.Time) ([]PeriodView, error)
	CreatePeriod(ctx context.Context, branchName string, draft models.PeriodDraft) (*PeriodCreateResult, error)
	SetSessionStatus(ctx context.Context, branchName, sessionID, status string) error
	Occupancy(ctx context.Context, branchName string) (*models.WeekOccupancy, error)
}

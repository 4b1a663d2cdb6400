// File: services/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	branchRepo "tutorly/database/repository/branch"
	"tutorly/models"
	"tutorly/services/tasks"
	"tutorly/utils"
)

// DefaultScheduleService is the concrete ScheduleService. It fetches branch
// documents through a cache-aside redis layer and runs the pure engine over
// the materialized snapshot; writes invalidate the snapshot and queue a
// refresh so push-updated views see fresh data quickly.
type DefaultScheduleService struct {
	Repo        branchRepo.BranchRepository
	Cache       *redis.Client
	Queue       *asynq.Client
	SnapshotTTL time.Duration
}

// fetchBranch returns the branch snapshot, serving from cache when present.
func (s *DefaultScheduleService) fetchBranch(ctx context.Context, name string) (*models.Branch, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, tasks.SnapshotKey(name)).Bytes(); err == nil {
			var branch models.Branch
			if err := json.Unmarshal(data, &branch); err == nil {
				return &branch, nil
			}
			// A snapshot that no longer decodes is stale by definition.
			s.Cache.Del(ctx, tasks.SnapshotKey(name))
		}
	}

	branch, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(branch); err == nil {
			if err := s.Cache.Set(ctx, tasks.SnapshotKey(name), data, s.SnapshotTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache branch snapshot",
					zap.String("branch", name), zap.Error(err))
			}
		}
	}
	return branch, nil
}

func (s *DefaultScheduleService) invalidateSnapshot(ctx context.Context, name string) {
	if s.Cache != nil {
		s.Cache.Del(ctx, tasks.SnapshotKey(name))
	}
	if s.Queue != nil {
		task, opts, err := tasks.NewSnapshotRefreshTask(name, 2*time.Second)
		if err == nil {
			_, err = s.Queue.Enqueue(task, opts...)
		}
		if err != nil {
			utils.GetLogger().Error("failed to enqueue snapshot refresh",
				zap.String("branch", name), zap.Error(err))
		}
	}
}

// WeekView returns the branch's weekly timetable for the selection, sorted
// by day then start time. The slice is field-complete and pre-sorted, which
// is the full contract the export collaborators rely on.
func (s *DefaultScheduleService) WeekView(ctx context.Context, branchName string, sel Selection) ([]models.Session, error) {
	branch, err := s.fetchBranch(ctx, branchName)
	if err != nil {
		return nil, err
	}
	return WeekSchedule(*branch, sel), nil
}

// CurrentView returns the sessions relevant right now, each annotated with
// its live status.
func (s *DefaultScheduleService) CurrentView(ctx context.Context, branchName string, sel Selection) ([]models.ClassifiedSession, error) {
	branch, err := s.fetchBranch(ctx, branchName)
	if err != nil {
		return nil, err
	}
	return CurrentSessions(*branch, sel), nil
}

// ActivePeriod resolves which period governs the branch on date; nil means
// the normal schedule applies.
func (s *DefaultScheduleService) ActivePeriod(ctx context.Context, branchName string, date time.Time) (*models.Period, error) {
	branch, err := s.fetchBranch(ctx, branchName)
	if err != nil {
		return nil, err
	}
	return ResolveActivePeriod(*branch, date), nil
}

// PeriodCatalog assembles the deduplicated cross-branch period catalog with
// each period's state relative to now.
func (s *DefaultScheduleService) PeriodCatalog(ctx context.Context, now time.Time) ([]PeriodView, error) {
	branches, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var views []PeriodView
	for _, p := range CollectPeriods(branches) {
		views = append(views, PeriodView{Period: p, Status: ClassifyPeriod(p, now)})
	}
	return views, nil
}

// CreatePeriod validates the draft and, when valid, stores it on the branch.
// Overlaps with existing periods come back as warnings in the result; the
// decision to block on conflict stays with the caller.
func (s *DefaultScheduleService) CreatePeriod(ctx context.Context, branchName string, draft models.PeriodDraft) (*PeriodCreateResult, error) {
	validation := ValidatePeriodDraft(draft)
	if !validation.Valid {
		return &PeriodCreateResult{Validation: validation}, nil
	}

	branch, err := s.fetchBranch(ctx, branchName)
	if err != nil {
		return nil, err
	}

	period := models.Period{
		ID:        draft.ID,
		Name:      draft.Name,
		Type:      draft.Type,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
	}
	if period.ID == "" {
		period.ID = uuid.New().String()
	}

	conflicts := DetectPeriodConflicts(period, branch.ExceptionalPeriods)

	if err := s.Repo.AddPeriod(ctx, branchName, period); err != nil {
		return nil, fmt.Errorf("failed to store period: %w", err)
	}
	s.invalidateSnapshot(ctx, branchName)

	return &PeriodCreateResult{
		Validation: validation,
		Period:     &period,
		Conflicts:  conflicts,
	}, nil
}

// SetSessionStatus records or clears a manual override on a session.
func (s *DefaultScheduleService) SetSessionStatus(ctx context.Context, branchName, sessionID, status string) error {
	switch status {
	case "", models.StatusCancelled, models.StatusDelayed, models.StatusAbsent:
	default:
		return fmt.Errorf("unknown session status %q", status)
	}
	if err := s.Repo.SetSessionStatus(ctx, branchName, sessionID, status); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx, branchName)
	return nil
}

// Occupancy computes the branch's daily and weekly occupancy snapshots.
func (s *DefaultScheduleService) Occupancy(ctx context.Context, branchName string) (*models.WeekOccupancy, error) {
	branch, err := s.fetchBranch(ctx, branchName)
	if err != nil {
		return nil, err
	}
	week := WeeklyOccupancy(*branch)
	return &week, nil
}

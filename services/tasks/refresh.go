package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSnapshotRefresh = "snapshot:refresh"

// SnapshotRefreshPayload names the branch whose cached snapshot should be
// rebuilt.
type SnapshotRefreshPayload struct {
	Branch string `json:"branch"`
}

// SnapshotKey is the cache key for a branch snapshot. The service that
// invalidates and the worker that rebuilds must agree on it, so it lives
// here next to the payload both share.
func SnapshotKey(branch string) string {
	return "branch:" + branch
}

func NewSnapshotRefreshTask(branch string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(SnapshotRefreshPayload{Branch: branch})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSnapshotRefresh, b)
	opts := []asynq.Option{asynq.ProcessIn(delay)}

	return task, opts, nil
}

package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "branch:Center", SnapshotKey("Center"))
}

func TestNewSnapshotRefreshTask(t *testing.T) {
	task, opts, err := NewSnapshotRefreshTask("Center", 2*time.Second)
	assert.NoError(t, err)
	assert.Equal(t, TypeSnapshotRefresh, task.Type())
	assert.Len(t, opts, 1)

	var p SnapshotRefreshPayload
	assert.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "Center", p.Branch)
}

package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tutorly/config"
	branchRepo "tutorly/database/repository/branch"
	"tutorly/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitSnapshotWorker runs the async worker that rebuilds cached branch
// snapshots after a write, so views refreshed by push updates see the new
// schedule without waiting for the TTL to expire.
func InitSnapshotWorker(repo branchRepo.BranchRepository, cache *redis.Client, ttl time.Duration) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSnapshotRefresh, handleSnapshotRefresh(repo, cache, ttl))

	// Start async worker with retry logic
	go func() {
		log.Println("[SnapshotWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SnapshotWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SnapshotWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSnapshotRefresh(repo branchRepo.BranchRepository, cache *redis.Client, ttl time.Duration) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.SnapshotRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SnapshotWorker] invalid payload: %v", err)
			return err
		}

		branch, err := repo.GetByName(ctx, p.Branch)
		if err != nil {
			log.Printf("[SnapshotWorker] failed to fetch branch %q: %v", p.Branch, err)
			return err
		}

		data, err := json.Marshal(branch)
		if err != nil {
			return err
		}
		if err := cache.Set(ctx, tasks.SnapshotKey(p.Branch), data, ttl).Err(); err != nil {
			log.Printf("[SnapshotWorker] failed to cache branch %q: %v", p.Branch, err)
			return err
		}
		return nil
	}
}

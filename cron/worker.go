package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"pawbooker/config"
	"pawbooker/services/availability"
	"pawbooker/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeHoldsCleanup = "holds:cleanup"

// InitHoldSweeper runs the expired-hold sweep in the background: an asynq
// scheduler enqueues a cleanup task on a fixed interval and a worker executes
// it. Expired holds are already invisible to availability queries; the sweep
// just reclaims the rows.
func InitHoldSweeper(engine availability.Engine) {
	redisOpts := utils.QueueRedisOpt()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeHoldsCleanup, handleCleanupTask(engine))

	sweepEvery := config.AppConfig.HoldSweepEveryMins
	if sweepEvery <= 0 {
		sweepEvery = 5
	}
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", sweepEvery),
		asynq.NewTask(TypeHoldsCleanup, nil),
	); err != nil {
		log.Fatalf("[HoldSweeper] failed to register cleanup schedule: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[HoldSweeper] starting scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Printf("[HoldSweeper] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[HoldSweeper] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HoldSweeper] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HoldSweeper] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCleanupTask(engine availability.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		count, err := engine.CleanupExpiredHolds()
		if err != nil {
			log.Printf("[HoldSweeper] cleanup failed: %v", err)
			return err
		}
		if count > 0 {
			log.Printf("[HoldSweeper] removed %d expired holds", count)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[HoldSweeper] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

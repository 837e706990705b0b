package cron

import (
	"context"
	"time"

	"campushub/config"
	"campushub/services/announcement"
	"campushub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitPublishWorker runs the asynq worker that flips scheduled announcements
// to published when their publish time arrives.
func InitPublishWorker(announcementSvc announcement.AnnouncementService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPublishQDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(announcement.TypeAnnouncementPublish, handlePublishTask(announcementSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting announcement publish worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Publish worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Publish worker giving up after max retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePublishTask(announcementSvc announcement.AnnouncementService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		id, err := announcement.DecodePublishTask(task.Payload())
		if err != nil {
			logger.Error("Invalid publish task payload", zap.Error(err))
			return err
		}

		if err := announcementSvc.Publish(ctx, id); err != nil {
			logger.Error("Failed to publish announcement", zap.String("id", id), zap.Error(err))
			return err
		}

		logger.Info("Announcement published", zap.String("id", id))
		return nil
	}
}

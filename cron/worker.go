package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"glowdesk/config"
	bookingRepo "glowdesk/database/repository/booking"
	"glowdesk/models"
	"glowdesk/services/notification"
	"glowdesk/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(repo, notifSvc))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask re-reads the booking before sending: a reminder for a
// booking that was cancelled after scheduling is silently dropped.
func handleReminderTask(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		booking, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] booking %s lookup failed: %v", p.BookingID, err)
			return err
		}
		if booking == nil || booking.Status != models.StatusConfirmed {
			log.Printf("[ReminderHandler] skipping reminder for %s: no longer confirmed", p.BookingID)
			return nil
		}

		log.Printf("[ReminderHandler] sending reminder for %s on %s %s", booking.ID, p.Date, p.StartClock)
		if err := notifSvc.SendAppointmentReminder(ctx, *booking); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

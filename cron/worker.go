package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"homeserve/config"
	"homeserve/services/notification"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "reminder:booking"

// BookingReminderPayload is the queued reminder task body.
type BookingReminderPayload struct {
	BookingID string `json:"bookingId"`
	PushToken string `json:"pushToken"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.Service) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleBookingReminder(notifSvc))

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

func handleBookingReminder(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p BookingReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		body := "Your " + p.TimeSlot + " appointment on " + p.Date + " starts soon."
		if err := notifSvc.Push(ctx, p.PushToken, "Upcoming Booking", body, map[string]string{
			"bookingId": p.BookingID,
			"type":      "booking_reminder",
		}); err != nil {
			// Reminders are best effort; do not requeue endlessly.
			log.Printf("[ReminderWorker] reminder push failed for booking %s: %v", p.BookingID, err)
		}
		return nil
	}
}

package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homeserve/models"

	"github.com/hibiken/asynq"
)

// reminderLeadTime is how long before the slot start the reminder fires.
const reminderLeadTime = 60 * time.Minute

// ReminderQueue schedules booking reminder tasks through asynq.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue creates the asynq client used to enqueue reminders.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpts())}
}

// ScheduleBookingReminder enqueues a reminder an hour before the booking
// starts. Bookings starting too soon simply get no reminder.
func (q *ReminderQueue) ScheduleBookingReminder(ctx context.Context, booking *models.Booking, pushToken string) error {
	day, err := time.ParseInLocation("2006-01-02", booking.Date, time.Local)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for booking %s: %w", booking.ID, err)
	}
	fireAt := day.Add(time.Duration(booking.Start)*time.Minute - reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(BookingReminderPayload{
		BookingID: booking.ID,
		PushToken: pushToken,
		Date:      booking.Date,
		TimeSlot:  booking.TimeSlot,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := q.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

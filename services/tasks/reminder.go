package tasks

import (
	"encoding/json"
	"time"

	"calmora/config"
	"calmora/models"

	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "reminder:session"

// NewSessionReminderTask builds the asynq task for a session reminder.
func NewSessionReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSessionReminder, b), nil
}

// ReminderScheduler enqueues session reminders for later delivery.
type ReminderScheduler interface {
	ScheduleSessionReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqReminderScheduler is the production scheduler backed by the
// reminder-queue Redis DB.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler from application config.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// ScheduleSessionReminder enqueues the reminder to fire at the given time.
func (s *AsynqReminderScheduler) ScheduleSessionReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, err := NewSessionReminderTask(payload)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}

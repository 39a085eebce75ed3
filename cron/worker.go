package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"yungwing/config"
	bookingRepo "yungwing/database/repository/booking"
	userRepo "yungwing/database/repository/user"
	"yungwing/models"
	"yungwing/services/line"
	"yungwing/services/scheduling"
	"yungwing/utils"
)

const (
	// TypeBookingReminder pushes a LINE reminder before an appointment.
	TypeBookingReminder = "booking:reminder"
	// TypeBookingSweep flips past confirmed bookings to completed.
	TypeBookingSweep = "booking:sweep"
)

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 2 * time.Hour

type reminderPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Scheduler enqueues reminder tasks. It satisfies the booking
// service's ReminderScheduler interface.
type Scheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewScheduler builds a task client against the queue Redis DB.
func NewScheduler() *Scheduler {
	return &Scheduler{
		client: asynq.NewClient(redisOpts()),
		logger: utils.GetLogger().Named("cron"),
	}
}

// ScheduleReminder queues a reminder to fire two hours before the
// booking starts. Bookings that start too soon get no reminder.
func (s *Scheduler) ScheduleReminder(b *models.Booking) error {
	day, err := time.ParseInLocation(utils.DateLayout, b.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", b.Date, err)
	}
	fireAt := day.Add(time.Duration(b.Start)*time.Minute - reminderLead)
	if !fireAt.After(time.Now()) {
		s.logger.Debug("skipping reminder for imminent booking", zap.String("booking_id", b.ID))
		return nil
	}

	payload, err := json.Marshal(reminderPayload{BookingID: b.ID})
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingReminder, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.TaskID("reminder:"+b.ID))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.logger.Info("reminder scheduled",
		zap.String("booking_id", b.ID), zap.Time("fire_at", fireAt))
	return nil
}

// InitWorker runs the async worker and the periodic sweep in the
// background.
func InitWorker(bookings bookingRepo.BookingRepository, users userRepo.UserRepository, lineClient *line.Client) {
	logger := utils.GetLogger().Named("cron")

	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask(bookings, users, lineClient))
	mux.HandleFunc(TypeBookingSweep, handleSweepTask(bookings))

	go func() {
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			logger.Info("starting task worker", zap.Int("attempt", attempt))
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("task worker stopped", zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("task worker could not be started")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()

	go runSweepScheduler(logger)
}

// runSweepScheduler enqueues the sweep task on a fixed cadence.
func runSweepScheduler(logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redisOpts(), nil)
	if _, err := scheduler.Register("@every 30m", asynq.NewTask(TypeBookingSweep, nil)); err != nil {
		logger.Error("failed to register sweep schedule", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		logger.Error("sweep scheduler stopped", zap.Error(err))
	}
}

// handleReminderTask pushes a LINE message for a still-active booking.
func handleReminderTask(bookings bookingRepo.BookingRepository, users userRepo.UserRepository, lineClient *line.Client) asynq.HandlerFunc {
	logger := utils.GetLogger().Named("cron")
	return func(ctx context.Context, task *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		detail, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		if detail == nil || (detail.Status != models.BookingPending && detail.Status != models.BookingConfirmed) {
			// Cancelled or already handled; nothing to remind.
			return nil
		}
		u, err := users.GetByID(detail.UserID)
		if err != nil {
			return err
		}
		if u == nil || u.LineUserID == "" {
			return nil
		}

		serviceName := "您的療程"
		if detail.Service != nil {
			serviceName = detail.Service.Name
		}
		text := fmt.Sprintf("提醒您：%s 將於今日 %s 開始（%s）。如需取消請於兩小時前辦理，期待您的光臨！",
			serviceName, scheduling.TimeOfDay(detail.Start).String(), detail.Date)
		if err := lineClient.Push(ctx, u.LineUserID, []line.Message{line.TextMessage(text)}); err != nil {
			logger.Error("failed to push reminder",
				zap.String("booking_id", p.BookingID), zap.Error(err))
			return err
		}
		logger.Info("reminder sent", zap.String("booking_id", p.BookingID))
		return nil
	}
}

// handleSweepTask completes confirmed bookings whose end time passed.
func handleSweepTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	logger := utils.GetLogger().Named("cron")
	return func(ctx context.Context, task *asynq.Task) error {
		now := time.Now()
		endBefore := now.Hour()*60 + now.Minute()
		n, err := bookings.CompletePastConfirmed(now.Format(utils.DateLayout), endBefore)
		if err != nil {
			logger.Error("booking sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			logger.Info("booking sweep completed bookings", zap.Int64("count", n))
		}
		return nil
	}
}

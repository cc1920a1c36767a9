package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/pkg/logger"
)

// ReminderWorker runs the feedback request reminder job on a cron
// schedule
type ReminderWorker struct {
	feedback feedback.Service
	schedule string
	cron     *cron.Cron
	logger   *logger.Logger
}

// NewReminderWorker creates a reminder worker
func NewReminderWorker(feedbackSvc feedback.Service, schedule string, log *logger.Logger) *ReminderWorker {
	return &ReminderWorker{
		feedback: feedbackSvc,
		schedule: schedule,
		cron:     cron.New(),
		logger:   log,
	}
}

// Start registers the job and starts the scheduler
func (w *ReminderWorker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, w.run)
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.WithFields(map[string]interface{}{
		"schedule": w.schedule,
	}).Info("Reminder worker started")

	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (w *ReminderWorker) Stop() {
	ctx := w.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		w.logger.Warn("Timed out waiting for reminder job to finish")
	}
}

func (w *ReminderWorker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent, err := w.feedback.SendReminders(ctx)
	if err != nil {
		w.logger.ErrorWithErr(err, "Reminder job failed")
		return
	}

	if sent > 0 {
		w.logger.WithFields(map[string]interface{}{
			"count": sent,
		}).Info("Reminder job finished")
	}
}

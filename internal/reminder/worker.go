package reminder

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/logger"
)

// Worker periodically refetches upcoming appointments and schedules
// reminders for them.
type Worker struct {
	appointments *api.AppointmentAPI
	scheduler    *Scheduler
	log          *logger.Logger
	lead         time.Duration
	interval     time.Duration
	cron         *gocron.Scheduler
}

func NewWorker(a *api.AppointmentAPI, s *Scheduler, log *logger.Logger, lead, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Worker{
		appointments: a,
		scheduler:    s,
		log:          log,
		lead:         lead,
		interval:     interval,
	}
}

// Start launches the periodic check on its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.cron = gocron.NewScheduler(time.Local)
	w.cron.Every(w.interval).Do(func() {
		if err := w.runOnce(ctx); err != nil {
			w.log.Error(err, "reminder check failed")
		}
	})
	w.cron.StartAsync()
	w.log.Info("reminder worker started", "interval", w.interval.String(), "lead", w.lead.String())
}

// Stop halts the periodic check. Pending reminders stay registered with
// the notifier.
func (w *Worker) Stop() {
	if w.cron != nil {
		w.cron.Stop()
	}
}

func (w *Worker) runOnce(ctx context.Context) error {
	now := time.Now()
	items, err := w.appointments.List(ctx, model.AppointmentFilters{
		StartDate: now,
		EndDate:   now.Add(7 * 24 * time.Hour),
	})
	if err != nil {
		return err
	}

	upcoming := items[:0]
	for _, apt := range items {
		switch apt.Status {
		case model.AppointmentStatusScheduled, model.AppointmentStatusConfirmed:
			upcoming = append(upcoming, apt)
		}
	}

	scheduled, skipped := w.scheduler.Schedule(upcoming, w.lead)
	w.log.Info("reminder check complete",
		"upcoming", len(upcoming), "scheduled", scheduled, "skipped", skipped)
	return nil
}

package reminder

import (
	"time"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/logger"
	"github.com/citasmovil/citasmovil/pkg/metrics"
)

// Scheduler plans reminders for appointment lists and registers them with
// a Notifier. It keeps no record of what it scheduled before: calling
// Schedule twice with the same list double-schedules.
type Scheduler struct {
	notifier Notifier
	log      *logger.Logger
	metrics  *metrics.Metrics
}

func NewScheduler(notifier Notifier, log *logger.Logger, m *metrics.Metrics) *Scheduler {
	return &Scheduler{notifier: notifier, log: log, metrics: m}
}

// Schedule plans and registers reminders with the given lead interval.
// Returns how many were scheduled and how many appointments were skipped
// because their trigger time had already passed.
func (s *Scheduler) Schedule(appointments []model.Appointment, lead time.Duration) (scheduled, skipped int) {
	reminders, skipped := Plan(appointments, lead, time.Now())
	for _, rem := range reminders {
		if err := s.notifier.Schedule(rem); err != nil {
			s.log.Error(err, "failed to schedule reminder", "appointment_id", rem.AppointmentID)
			continue
		}
		scheduled++
	}

	if s.metrics != nil {
		s.metrics.RemindersScheduled.Add(float64(scheduled))
		s.metrics.RemindersSkipped.Add(float64(skipped))
	}
	s.log.Debug("reminders scheduled", "scheduled", scheduled, "skipped", skipped)
	return scheduled, skipped
}

// CancelForAppointment cancels pending reminders tagged with the id.
func (s *Scheduler) CancelForAppointment(appointmentID int64) int {
	cancelled := s.notifier.CancelForAppointment(appointmentID)
	if s.metrics != nil {
		s.metrics.RemindersCancelled.Add(float64(cancelled))
	}
	return cancelled
}

// Package reminder schedules local appointment reminders: a trigger fires
// at appointment time minus a lead interval. It mirrors the device
// notification behavior of the mobile app, including its rough edges:
// nothing is replayed after a restart, and scheduling the same list twice
// produces duplicate reminders (see DESIGN.md).
package reminder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/citasmovil/citasmovil/internal/model"
)

// Reminder is one pending local notification.
type Reminder struct {
	ID            string
	AppointmentID int64
	TriggerAt     time.Time
	Title         string
	Body          string
}

// Plan computes reminders for the given appointments. Only future
// appointments produce entries, and entries whose trigger time is already
// in the past are skipped. skipped counts appointments dropped for either
// reason.
func Plan(appointments []model.Appointment, lead time.Duration, now time.Time) (reminders []Reminder, skipped int) {
	for _, apt := range appointments {
		if !apt.Upcoming(now) {
			skipped++
			continue
		}
		trigger := apt.DateTime.Add(-lead)
		if !trigger.After(now) {
			skipped++
			continue
		}
		reminders = append(reminders, Reminder{
			ID:            uuid.NewString(),
			AppointmentID: apt.ID,
			TriggerAt:     trigger,
			Title:         "Recordatorio de cita",
			Body:          reminderBody(apt),
		})
	}
	return reminders, skipped
}

func reminderBody(apt model.Appointment) string {
	when := apt.DateTime.Format("02/01/2006 15:04")
	if apt.Doctor != nil {
		return fmt.Sprintf("Cita con %s el %s", apt.Doctor.FullName(), when)
	}
	return fmt.Sprintf("Tienes una cita el %s", when)
}

package reminder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/reminder"
	"github.com/citasmovil/citasmovil/pkg/logger"
)

func TestPlanLeadTimeArithmetic(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		appointment time.Time
		lead        time.Duration
		wantTrigger time.Time
		wantSkipped bool
	}{
		{
			name:        "trigger exactly lead before appointment",
			appointment: now.Add(3 * time.Hour),
			lead:        60 * time.Minute,
			wantTrigger: now.Add(2 * time.Hour),
		},
		{
			name:        "short lead",
			appointment: now.Add(30 * time.Minute),
			lead:        15 * time.Minute,
			wantTrigger: now.Add(15 * time.Minute),
		},
		{
			name:        "trigger already past is skipped",
			appointment: now.Add(30 * time.Minute),
			lead:        60 * time.Minute,
			wantSkipped: true,
		},
		{
			name:        "appointment in the past is skipped",
			appointment: now.Add(-time.Hour),
			lead:        10 * time.Minute,
			wantSkipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apts := []model.Appointment{{ID: 1, DateTime: tt.appointment, Status: model.AppointmentStatusConfirmed}}
			reminders, skipped := reminder.Plan(apts, tt.lead, now)

			if tt.wantSkipped {
				assert.Empty(t, reminders)
				assert.Equal(t, 1, skipped)
				return
			}
			require.Len(t, reminders, 1)
			assert.Equal(t, tt.wantTrigger, reminders[0].TriggerAt)
			assert.EqualValues(t, 1, reminders[0].AppointmentID)
			assert.Zero(t, skipped)
		})
	}
}

func TestPlanTagsEveryReminderWithAppointmentID(t *testing.T) {
	now := time.Now()
	apts := []model.Appointment{
		{ID: 10, DateTime: now.Add(4 * time.Hour)},
		{ID: 20, DateTime: now.Add(6 * time.Hour)},
	}
	reminders, _ := reminder.Plan(apts, time.Hour, now)
	require.Len(t, reminders, 2)
	assert.EqualValues(t, 10, reminders[0].AppointmentID)
	assert.EqualValues(t, 20, reminders[1].AppointmentID)
	assert.NotEqual(t, reminders[0].ID, reminders[1].ID)
}

func TestNotifierCancelByAppointment(t *testing.T) {
	notifier := reminder.NewLocalNotifier(logger.NewLogger(nil), nil)
	future := time.Now().Add(time.Hour)

	require.NoError(t, notifier.Schedule(reminder.Reminder{ID: "a", AppointmentID: 5, TriggerAt: future}))
	require.NoError(t, notifier.Schedule(reminder.Reminder{ID: "b", AppointmentID: 5, TriggerAt: future}))
	require.NoError(t, notifier.Schedule(reminder.Reminder{ID: "c", AppointmentID: 9, TriggerAt: future}))

	cancelled := notifier.CancelForAppointment(5)
	assert.Equal(t, 2, cancelled)

	pending := notifier.Pending()
	require.Len(t, pending, 1)
	assert.EqualValues(t, 9, pending[0].AppointmentID)
}

func TestSchedulerDoubleSchedulingDuplicates(t *testing.T) {
	// Scheduling the same list twice produces duplicate reminders; the
	// scheduler keeps no memory of earlier rounds. Preserved source
	// behavior, see DESIGN.md.
	notifier := reminder.NewLocalNotifier(logger.NewLogger(nil), nil)
	scheduler := reminder.NewScheduler(notifier, logger.NewLogger(nil), nil)

	apts := []model.Appointment{{ID: 1, DateTime: time.Now().Add(3 * time.Hour)}}
	scheduled, _ := scheduler.Schedule(apts, time.Hour)
	assert.Equal(t, 1, scheduled)
	scheduled, _ = scheduler.Schedule(apts, time.Hour)
	assert.Equal(t, 1, scheduled)

	assert.Len(t, notifier.Pending(), 2)
}

func TestSchedulerSkipsPastTriggers(t *testing.T) {
	notifier := reminder.NewLocalNotifier(logger.NewLogger(nil), nil)
	scheduler := reminder.NewScheduler(notifier, logger.NewLogger(nil), nil)

	apts := []model.Appointment{{ID: 1, DateTime: time.Now().Add(10 * time.Minute)}}
	scheduled, skipped := scheduler.Schedule(apts, time.Hour)
	assert.Zero(t, scheduled)
	assert.Equal(t, 1, skipped)
	assert.Empty(t, notifier.Pending())
}

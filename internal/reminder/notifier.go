package reminder

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/citasmovil/citasmovil/pkg/logger"
)

// Notifier is the device notification subsystem the scheduler talks to:
// schedule-at-time and cancel-by-appointment primitives.
type Notifier interface {
	// Schedule registers a reminder to be delivered at its trigger time.
	Schedule(rem Reminder) error
	// CancelForAppointment cancels every pending reminder tagged with the
	// appointment id and returns how many were cancelled.
	CancelForAppointment(appointmentID int64) int
	// Pending lists reminders not yet delivered or cancelled.
	Pending() []Reminder
}

const cleanupInterval = 30 * time.Second

// LocalNotifier delivers reminders in-process: each entry lives in an
// expiring cache whose eviction at trigger time emits the notification
// through the log. Entries removed before their trigger count as
// cancelled, not delivered.
type LocalNotifier struct {
	entries *cache.Cache
	log     *logger.Logger
	deliver func(Reminder)
}

// NewLocalNotifier creates a notifier. deliver may be nil, in which case
// reminders are emitted as log lines only.
func NewLocalNotifier(log *logger.Logger, deliver func(Reminder)) *LocalNotifier {
	n := &LocalNotifier{
		entries: cache.New(cache.NoExpiration, cleanupInterval),
		log:     log,
		deliver: deliver,
	}
	n.entries.OnEvicted(func(key string, value interface{}) {
		rem, ok := value.(Reminder)
		if !ok {
			return
		}
		// Eviction happens both when the timer expires and when an entry
		// is cancelled; only fire for entries whose time has come.
		if time.Now().Before(rem.TriggerAt) {
			return
		}
		n.fire(rem)
	})
	return n
}

func (n *LocalNotifier) Schedule(rem Reminder) error {
	ttl := time.Until(rem.TriggerAt)
	if ttl <= 0 {
		ttl = time.Nanosecond
	}
	n.entries.Set(rem.ID, rem, ttl)
	return nil
}

func (n *LocalNotifier) CancelForAppointment(appointmentID int64) int {
	cancelled := 0
	for key, item := range n.entries.Items() {
		rem, ok := item.Object.(Reminder)
		if !ok || rem.AppointmentID != appointmentID {
			continue
		}
		n.entries.Delete(key)
		cancelled++
	}
	return cancelled
}

func (n *LocalNotifier) Pending() []Reminder {
	items := n.entries.Items()
	out := make([]Reminder, 0, len(items))
	for _, item := range items {
		if rem, ok := item.Object.(Reminder); ok {
			out = append(out, rem)
		}
	}
	return out
}

func (n *LocalNotifier) fire(rem Reminder) {
	n.log.Info("reminder",
		"appointment_id", rem.AppointmentID,
		"title", rem.Title,
		"body", rem.Body)
	if n.deliver != nil {
		n.deliver(rem)
	}
}

package model

// NotificationPreferences is the per-user toggle set persisted server-side.
// The client reads and writes the whole object, never individual fields.
type NotificationPreferences struct {
	AppointmentReminders bool   `json:"recordatorios_citas"`
	StatusChanges        bool   `json:"cambios_estado"`
	Promotions           bool   `json:"promociones"`
	ActiveFrom           string `json:"hora_inicio"`
	ActiveUntil          string `json:"hora_fin"`
}

// DefaultNotificationPreferences matches the server defaults for a new user.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		AppointmentReminders: true,
		StatusChanges:        true,
		Promotions:           false,
		ActiveFrom:           "08:00",
		ActiveUntil:          "21:00",
	}
}

// Package theme holds the persisted light/dark preference and the derived
// color palette the views render with. Purely local; no server component.
package theme

import (
	"github.com/citasmovil/citasmovil/internal/storage"
)

// Preference values.
const (
	Light  = "light"
	Dark   = "dark"
	System = "system"
)

// Palette is the color set a mode resolves to. Values are ANSI-friendly
// hex strings; the CLI maps them to terminal colors.
type Palette struct {
	Background string
	Surface    string
	Primary    string
	Accent     string
	Text       string
	TextMuted  string
	Error      string
	Success    string
}

var lightPalette = Palette{
	Background: "#FFFFFF",
	Surface:    "#F4F6F8",
	Primary:    "#1B6EF3",
	Accent:     "#0FA3A3",
	Text:       "#1A1A2E",
	TextMuted:  "#6B7280",
	Error:      "#D32F2F",
	Success:    "#2E7D32",
}

var darkPalette = Palette{
	Background: "#12141C",
	Surface:    "#1E2230",
	Primary:    "#5B9CFF",
	Accent:     "#2FD4D4",
	Text:       "#ECEFF4",
	TextMuted:  "#9AA3B2",
	Error:      "#EF5350",
	Success:    "#66BB6A",
}

// Manager reads and writes the persisted preference.
type Manager struct {
	store *storage.Store
}

func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// Preference returns the persisted preference, defaulting to system.
func (m *Manager) Preference() string {
	v, err := m.store.Get(storage.KeyTheme)
	if err != nil {
		return System
	}
	switch v {
	case Light, Dark, System:
		return v
	}
	return System
}

// SetPreference persists a preference. Unknown values are rejected by
// falling back to system.
func (m *Manager) SetPreference(p string) error {
	switch p {
	case Light, Dark, System:
	default:
		p = System
	}
	return m.store.Set(storage.KeyTheme, p)
}

// Palette resolves the active palette. systemDark tells the manager what
// the surrounding environment prefers when the preference is system.
func (m *Manager) Palette(systemDark bool) Palette {
	switch m.Preference() {
	case Dark:
		return darkPalette
	case Light:
		return lightPalette
	default:
		if systemDark {
			return darkPalette
		}
		return lightPalette
	}
}

package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmovil/citasmovil/internal/storage"
	"github.com/citasmovil/citasmovil/internal/theme"
)

func newManager(t *testing.T) *theme.Manager {
	t.Helper()
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	return theme.NewManager(st)
}

func TestDefaultPreferenceIsSystem(t *testing.T) {
	m := newManager(t)
	assert.Equal(t, theme.System, m.Preference())
}

func TestSetPreferencePersists(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.SetPreference(theme.Dark))
	assert.Equal(t, theme.Dark, m.Preference())
}

func TestUnknownPreferenceFallsBackToSystem(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.SetPreference("sepia"))
	assert.Equal(t, theme.System, m.Preference())
}

func TestPaletteResolution(t *testing.T) {
	m := newManager(t)

	require.NoError(t, m.SetPreference(theme.Dark))
	dark := m.Palette(false)

	require.NoError(t, m.SetPreference(theme.Light))
	light := m.Palette(true)

	assert.NotEqual(t, dark.Background, light.Background)

	// System preference follows the environment hint.
	require.NoError(t, m.SetPreference(theme.System))
	assert.Equal(t, dark, m.Palette(true))
	assert.Equal(t, light, m.Palette(false))
}

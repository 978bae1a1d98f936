package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmovil/citasmovil/internal/storage"
)

func TestSetGetDelete(t *testing.T) {
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)

	_, err = st.Get(storage.KeyTheme)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.Set(storage.KeyTheme, "dark"))
	v, err := st.Get(storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	require.NoError(t, st.Delete(storage.KeyTheme))
	_, err = st.Get(storage.KeyTheme)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting a missing key is a no-op.
	require.NoError(t, st.Delete(storage.KeyTheme))
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	st, err := storage.New(dir)
	require.NoError(t, err)
	require.NoError(t, st.SetToken("tok-abc"))

	reopened, err := storage.New(dir)
	require.NoError(t, err)
	token, ok := reopened.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", token)
}

func TestTokenHelpers(t *testing.T) {
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)

	_, ok := st.Token()
	assert.False(t, ok)

	require.NoError(t, st.SetToken("tok"))
	_, ok = st.Token()
	assert.True(t, ok)

	require.NoError(t, st.ClearToken())
	_, ok = st.Token()
	assert.False(t, ok)
}

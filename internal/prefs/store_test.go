package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs.json")
}

func TestStoreDefaultsToDark(t *testing.T) {
	s, err := NewStore(storePath(t))
	require.NoError(t, err)

	assert.Equal(t, ThemeDark, s.Theme())
	assert.False(t, s.HasTheme())
}

func TestStoreReadAfterWrite(t *testing.T) {
	s, err := NewStore(storePath(t))
	require.NoError(t, err)

	require.NoError(t, s.SetTheme(ThemeLight))
	assert.Equal(t, ThemeLight, s.Theme())
	assert.True(t, s.HasTheme())
}

func TestStorePersistsAcrossSessions(t *testing.T) {
	path := storePath(t)

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.SetTheme(ThemeLight))

	second, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, second.Theme())
}

func TestStoreRejectsUnknownTheme(t *testing.T) {
	s, err := NewStore(storePath(t))
	require.NoError(t, err)

	require.Error(t, s.SetTheme(Theme("sepia")))
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestStoreIgnoresUnknownPersistedValue(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","theme":"sepia"}`), 0644))

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path)
	require.Error(t, err)
}

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeLight.Valid())
	assert.False(t, Theme("").Valid())
	assert.False(t, Theme("sepia").Valid())
}

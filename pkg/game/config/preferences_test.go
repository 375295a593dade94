package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreferences_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	p, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, RendererTUI, p.Renderer)
	assert.Equal(t, NotesBackendFile, p.NotesBackend)
	assert.Empty(t, p.Language)
	assert.Equal(t, path, p.Path())
}

func TestLoadPreferences_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language":"en","renderer":"ebiten","notes_backend":"sqlite"}`), 0o644))
	t.Setenv("ESCAPEROOM_LANG", "nl")

	p, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, "nl", p.Language)
	assert.Equal(t, RendererEbiten, p.Renderer)
	assert.Equal(t, NotesBackendSQLite, p.NotesBackend)
}

func TestLoadPreferences_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language":`), 0o644))

	_, err := LoadPreferences(path)
	assert.Error(t, err)
}

func TestPreferences_SetLanguageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")

	p, err := LoadPreferences(path)
	require.NoError(t, err)
	require.NoError(t, p.SetLanguage("en"))

	reloaded, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, "en", reloaded.Language)
}

func TestPreferences_SaveWithoutPathIsNoop(t *testing.T) {
	p := DefaultPreferences()
	assert.NoError(t, p.SetLanguage("en"))
	assert.Equal(t, "en", p.Language)
}

package notes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeFactories(t *testing.T) map[string]func() Store {
	return map[string]func() Store{
		BackendMemory: func() Store { return NewMemoryStore() },
		BackendFile: func() Store {
			s, err := NewFileStore(filepath.Join(t.TempDir(), "notes"))
			require.NoError(t, err)
			return s
		},
		BackendSQLite: func() Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "notes.db"))
			require.NoError(t, err)
			return s
		},
	}
}

func TestStores_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, open := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := open()
			defer s.Close()

			_, err := s.Load(ctx, Key)
			assert.ErrorIs(t, err, ErrNotFound)

			text, err := LoadText(ctx, s)
			require.NoError(t, err)
			assert.Empty(t, text)

			require.NoError(t, s.Save(ctx, Key, "ERR_404 ERR_500\nserial 0402"))
			require.NoError(t, s.Save(ctx, Key, "404500TIMEOUT"))

			got, err := s.Load(ctx, Key)
			require.NoError(t, err)
			assert.Equal(t, "404500TIMEOUT", got)

			_, err = s.Load(ctx, "otherKey")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, Key, "4 0 2"))

	_, err = os.Stat(filepath.Join(dir, Key+".json"))
	require.NoError(t, err)

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := reopened.Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, "4 0 2", got)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Key+".json"), []byte("{not json"), 0o644))

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	_, err = s.Load(context.Background(), Key)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, Key, "INIT VERIFY RESTART"))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, "INIT VERIFY RESTART", got)
}

func TestOpen(t *testing.T) {
	s, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = Open("redis", "")
	assert.Error(t, err)

	_, err = Open(BackendSQLite, "")
	assert.Error(t, err)
}

func TestFileStore_CanceledContext(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Save(ctx, Key, "x"), context.Canceled)
}

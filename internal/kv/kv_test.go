package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, err := s.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("history", []byte(`[1,2]`)))
	got, err := s.Get("history")
	require.NoError(t, err)
	require.Equal(t, `[1,2]`, string(got))

	require.NoError(t, s.Set("history", []byte(`[3]`)))
	got, err = s.Get("history")
	require.NoError(t, err)
	require.Equal(t, `[3]`, string(got))

	require.NoError(t, s.Delete("history"))
	_, err = s.Get("history")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting twice is fine
	require.NoError(t, s.Delete("history"))
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set("k", buf))
	buf[0] = 'x'
	got, err := m.Get("k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestFile(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)
	exerciseStore(t, f)
}

func TestFile_RejectsPathKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)
	require.Error(t, f.Set("../escape", []byte("x")))
}

func TestFile_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Set("k", []byte("v")))

	reopened, err := NewFile(dir)
	require.NoError(t, err)
	got, err := reopened.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", string(got))
}

func TestSQLite(t *testing.T) {
	s, err := NewSQLite(t.TempDir() + "/test.db")
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("memory", dir)
	require.NoError(t, err)
	require.IsType(t, &Memory{}, s)

	s, err = Open("", dir)
	require.NoError(t, err)
	require.IsType(t, &File{}, s)

	s, err = Open("SQLite", dir)
	require.NoError(t, err)
	require.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", dir)
	require.Error(t, err)
}

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JianhaoLuo18/UniFrontend/internal/prefs"
)

func TestLoadEmail_AbsentFile(t *testing.T) {
	s := prefs.New(filepath.Join(t.TempDir(), "prefs.json"))

	email, ok, err := s.LoadEmail()
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, email)
}

func TestSaveThenLoadEmail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	s := prefs.New(path)

	require.NoError(t, s.SaveEmail("ana@example.com"))

	email, ok, err := s.LoadEmail()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ana@example.com", email)

	// second save overwrites under the same key
	require.NoError(t, s.SaveEmail("ben@example.com"))
	email, ok, err = s.LoadEmail()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ben@example.com", email)
}

func TestSaveEmail_ReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s := prefs.New(path)
	require.NoError(t, s.SaveEmail("ana@example.com"))

	email, ok, err := s.LoadEmail()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ana@example.com", email)
}

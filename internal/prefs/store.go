// Package prefs is the device-local preference store. It holds exactly one
// user-identifying value today (the email), kept as a small JSON file under
// a fixed key, unencrypted and without expiry.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const emailKey = "userEmail"

type Store struct{ path string }

func New(path string) *Store { return &Store{path: path} }

// DefaultPath puts the file under the user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "flatly-prefs.json"
	}
	return filepath.Join(home, ".flatly", "prefs.json")
}

func (s *Store) SaveEmail(email string) error {
	m, err := s.read()
	if err != nil {
		// a missing or corrupt file is replaced, not fatal
		m = map[string]string{}
	}
	m[emailKey] = email
	return s.write(m)
}

func (s *Store) LoadEmail() (string, bool, error) {
	m, err := s.read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	v, ok := m[emailKey]
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *Store) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	m := map[string]string{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("prefs: parse %s: %w", s.path, err)
	}
	return m, nil
}

// write replaces the file atomically so a crash never leaves a torn file.
func (s *Store) write(m map[string]string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("prefs: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

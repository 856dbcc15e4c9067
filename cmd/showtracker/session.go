package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

type session struct {
	ServerUrl    string `toml:"server_url"`
	Email        string `toml:"email"`
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// sessionStore keeps the login of the terminal client in a TOML file. Writes
// hold an exclusive file lock so parallel invocations do not interleave.
type sessionStore struct {
	path string
	lock *flock.Flock
}

func newSessionStore(path string) *sessionStore {
	return &sessionStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

func defaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "showtracker", "session.toml"), nil
}

func (s *sessionStore) Load() (session, error) {
	var saved session
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return saved, nil
	}
	if err != nil {
		return saved, fmt.Errorf("read session: %w", err)
	}
	if err := toml.Unmarshal(data, &saved); err != nil {
		return saved, fmt.Errorf("parse session %s: %w", s.path, err)
	}
	return saved, nil
}

func (s *sessionStore) Save(saved session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock session: %w", err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	data, err := toml.Marshal(saved)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// Package kvstore provides implementations of the durable key-value store.
package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"herbwise/config"
	"herbwise/internal/domain/repository"
	"herbwise/internal/errors"
)

// FileStore is a string key-value store persisted as a single JSON document.
// The whole document is read once at construction and rewritten on every
// mutation; the last writer wins. A corrupt or unreadable file is logged and
// treated as an empty store rather than failing startup.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu   sync.RWMutex
	data map[string]string
}

// NewFileStore loads the store from the configured path.
func NewFileStore(cfg *config.Config, logger *slog.Logger) (repository.KVStore, error) {
	store := &FileStore{
		path:   cfg.Storage.Path,
		logger: logger,
		data:   make(map[string]string),
	}

	raw, err := os.ReadFile(store.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "read key-value store file")
		}

		return store, nil
	}

	if err := json.Unmarshal(raw, &store.data); err != nil {
		logger.Error("Corrupt key-value store file, resetting to empty",
			slog.String("path", store.path),
			slog.Any("error", err))
		store.data = make(map[string]string)
	}

	return store, nil
}

// Get returns the stored value and whether the key exists.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]

	return value, ok, nil
}

// Set stores the value under key and flushes the store to disk.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value

	return s.flush()
}

// Delete removes the key and flushes the store to disk.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)

	return s.flush()
}

// flush writes the document atomically via a temp file rename. Callers must
// hold the write lock.
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal key-value store")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".herbwise-store-*")
	if err != nil {
		return errors.Wrap(err, "create temp store file")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "write temp store file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "close temp store file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "replace store file")
	}

	return nil
}

package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"thermostat_api/internal/models"
)

// DefaultJSONPath is where the snapshot file lives unless configured otherwise.
const DefaultJSONPath = "data/termostato_estado.json"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// JSONFileStore keeps the snapshot in a single JSON file. Writes go to a temp
// file in the same directory that is then renamed over the target.
type JSONFileStore struct {
	path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	if path == "" {
		path = DefaultJSONPath
	}
	return &JSONFileStore{path: path}
}

var _ StateStore = (*JSONFileStore)(nil)

func (s *JSONFileStore) Path() string { return s.path }

// marshalSnapshot encodes with 2-space indentation and without HTML escaping.
func marshalSnapshot(snap models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the snapshot, creating the parent directory when missing.
func (s *JSONFileStore) Save(_ context.Context, snap models.Snapshot) error {
	data, err := marshalSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %w", ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create %q: %w", ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %q: %w", ErrPersistence, dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: write %q: %w", ErrPersistence, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: sync %q: %w", ErrPersistence, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: close %q: %w", ErrPersistence, tmpName, err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		cleanup()
		return fmt.Errorf("%w: chmod %q: %w", ErrPersistence, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("%w: replace %q: %w", ErrPersistence, s.path, err)
	}
	return nil
}

// Load reads the snapshot file. Missing keys fall back to their defaults.
func (s *JSONFileStore) Load(_ context.Context) (models.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Snapshot{}, false, nil
		}
		return models.Snapshot{}, false, fmt.Errorf("%w: read %q: %w", ErrPersistence, s.path, err)
	}
	var rec snapshotRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("%w: decode %q: %w", ErrPersistence, s.path, err)
	}
	return rec.snapshot(), true, nil
}

func (s *JSONFileStore) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: stat %q: %w", ErrPersistence, s.path, err)
}

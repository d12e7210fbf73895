package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"thermostat_api/internal/config"
	"thermostat_api/internal/models"
	"thermostat_api/internal/repository/db"
)

// ErrPersistence wraps every storage failure reported by a StateStore.
var ErrPersistence = errors.New("persistence failure")

// StateStore saves and restores the latest thermostat snapshot.
type StateStore interface {
	// Save replaces any previously stored snapshot.
	Save(ctx context.Context, s models.Snapshot) error
	// Load returns the stored snapshot; found is false when nothing was saved yet.
	Load(ctx context.Context) (snap models.Snapshot, found bool, err error)
	// Exists reports whether a snapshot is stored without decoding it.
	Exists(ctx context.Context) (bool, error)
}

// Repository groups the stores used by the services and owns their resources.
type Repository struct {
	StateRepo StateStore

	db *sql.DB
}

func NewRepository(state StateStore) *Repository {
	return &Repository{StateRepo: state}
}

// NewFromConfig opens the store selected by storage.driver.
func NewFromConfig(cfg config.StorageConfig) (*Repository, error) {
	switch cfg.Driver {
	case config.DriverJSON:
		return NewRepository(NewJSONFileStore(cfg.JSONPath)), nil
	case config.DriverSQLite:
		conn, err := db.InitDB(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("init sqlite store: %w", err)
		}
		return &Repository{StateRepo: NewStateSQLite(conn), db: conn}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// Close releases the database handle, if any.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

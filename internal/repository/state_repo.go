package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"thermostat_api/internal/models"
)

// StateSQLite stores the snapshot as the single row id=1 of thermostat_state.
type StateSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db, now: time.Now}
}

var _ StateStore = (*StateSQLite)(nil)

const (
	thermostatStateRowID = 1

	upsertStateSQL = `
		INSERT INTO thermostat_state (id, ambient_temperature, target_temperature, battery_charge, climate_mode, indicator, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ambient_temperature=excluded.ambient_temperature,
			target_temperature=excluded.target_temperature,
			battery_charge=excluded.battery_charge,
			climate_mode=excluded.climate_mode,
			indicator=excluded.indicator,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT ambient_temperature, target_temperature, battery_charge, climate_mode, indicator
		FROM thermostat_state WHERE id=?
	`

	existsStateSQL = `SELECT EXISTS(SELECT 1 FROM thermostat_state WHERE id=?)`
)

// Save upserts the snapshot row, stamping updated_at in UTC.
func (r *StateSQLite) Save(ctx context.Context, s models.Snapshot) error {
	_, err := r.db.ExecContext(ctx, upsertStateSQL,
		thermostatStateRowID,
		s.AmbientTemperature,
		s.TargetTemperature,
		float64(s.BatteryCharge),
		s.ClimateMode,
		s.Indicator,
		r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: upsert thermostat_state: %w", ErrPersistence, err)
	}
	return nil
}

// Load fetches the snapshot row. NULL columns fall back to their defaults.
func (r *StateSQLite) Load(ctx context.Context) (models.Snapshot, bool, error) {
	var (
		ambient   sql.NullInt64
		target    sql.NullInt64
		battery   sql.NullFloat64
		mode      sql.NullString
		indicator sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectStateSQL, thermostatStateRowID).
		Scan(&ambient, &target, &battery, &mode, &indicator)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, false, nil
		}
		return models.Snapshot{}, false, fmt.Errorf("%w: select thermostat_state: %w", ErrPersistence, err)
	}

	var rec snapshotRecord
	if ambient.Valid {
		v := int(ambient.Int64)
		rec.AmbientTemperature = &v
	}
	if target.Valid {
		v := int(target.Int64)
		rec.TargetTemperature = &v
	}
	if battery.Valid {
		rec.BatteryCharge = &battery.Float64
	}
	if mode.Valid {
		rec.ClimateMode = &mode.String
	}
	if indicator.Valid {
		rec.Indicator = &indicator.String
	}
	return rec.snapshot(), true, nil
}

func (r *StateSQLite) Exists(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsStateSQL, thermostatStateRowID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: check thermostat_state: %w", ErrPersistence, err)
	}
	return exists, nil
}

package repository

import "thermostat_api/internal/models"

// EncodeSnapshot flattens the stored fields plus the current indicator into a snapshot.
func EncodeSnapshot(st models.State, indicator string) models.Snapshot {
	return models.Snapshot{
		AmbientTemperature: st.AmbientTemperature,
		TargetTemperature:  st.TargetTemperature,
		BatteryCharge:      models.Decimal(st.BatteryCharge),
		ClimateMode:        string(st.ClimateMode),
		Indicator:          indicator,
	}
}

// DecodeSnapshot restores the stored fields as saved, without validation.
// The snapshot indicator is ignored.
func DecodeSnapshot(s models.Snapshot) models.State {
	return models.State{
		AmbientTemperature: s.AmbientTemperature,
		TargetTemperature:  s.TargetTemperature,
		BatteryCharge:      float64(s.BatteryCharge),
		ClimateMode:        models.Mode(s.ClimateMode),
	}
}

// snapshotRecord is the on-disk shape; nil fields are keys absent from the record.
// Spanish-keyed files are read through the legacy fields.
type snapshotRecord struct {
	AmbientTemperature *int     `json:"ambient_temperature"`
	TargetTemperature  *int     `json:"target_temperature"`
	BatteryCharge      *float64 `json:"battery_charge"`
	ClimateMode        *string  `json:"climate_mode"`
	Indicator          *string  `json:"indicator"`

	LegacyAmbient   *int     `json:"temperatura_ambiente"`
	LegacyTarget    *int     `json:"temperatura_deseada"`
	LegacyBattery   *float64 `json:"carga_bateria"`
	LegacyMode      *string  `json:"estado_climatizador"`
	LegacyIndicator *string  `json:"indicador"`
}

func either[T any](current, legacy *T) *T {
	if current != nil {
		return current
	}
	return legacy
}

// snapshot fills every missing key with its documented default.
func (r snapshotRecord) snapshot() models.Snapshot {
	s := models.Snapshot{
		AmbientTemperature: models.DefaultAmbient,
		TargetTemperature:  models.DefaultTarget,
		BatteryCharge:      models.DefaultBattery,
		ClimateMode:        string(models.DefaultMode),
	}
	if v := either(r.AmbientTemperature, r.LegacyAmbient); v != nil {
		s.AmbientTemperature = *v
	}
	if v := either(r.TargetTemperature, r.LegacyTarget); v != nil {
		s.TargetTemperature = *v
	}
	if v := either(r.BatteryCharge, r.LegacyBattery); v != nil {
		s.BatteryCharge = models.Decimal(*v)
	}
	if v := either(r.ClimateMode, r.LegacyMode); v != nil {
		s.ClimateMode = *v
	}
	if v := either(r.Indicator, r.LegacyIndicator); v != nil {
		s.Indicator = *v
	}
	return s
}

package models

// Snapshot is the flat record written to durable storage after every mutation.
// Indicator is informational; it is recomputed on load.
type Snapshot struct {
	AmbientTemperature int     `json:"ambient_temperature"`
	TargetTemperature  int     `json:"target_temperature"`
	BatteryCharge      Decimal `json:"battery_charge"`
	ClimateMode        string  `json:"climate_mode"`
	Indicator          string  `json:"indicator"`
}

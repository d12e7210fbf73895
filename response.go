package thermostat_api

import "time"

// ErrorBody is the payload of every error answer.
type ErrorBody struct {
	Code    int    `json:"codigo" example:"400"`
	Message string `json:"mensaje" example:"Valor fuera de rango"`
	Detail  string `json:"detalle,omitempty" example:"temperatura_ambiente debe estar entre 0 y 50"`
}

// ErrorResponse wraps ErrorBody under the "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse acknowledges an accepted write.
type MessageResponse struct {
	Message string `json:"mensaje" example:"dato registrado"`
}

type HealthResponse struct {
	Status        string    `json:"status" example:"ok"`
	Version       string    `json:"version" example:"1.0.0"`
	UptimeSeconds int64     `json:"uptime_seconds" example:"42"`
	Timestamp     time.Time `json:"timestamp"`
}

// ThermostatResponse is the full thermostat state.
type ThermostatResponse struct {
	AmbientTemperature int     `json:"temperatura_ambiente" example:"22"`
	TargetTemperature  int     `json:"temperatura_deseada" example:"24"`
	BatteryCharge      float64 `json:"carga_bateria" example:"5.0"`
	ClimateMode        string  `json:"estado_climatizador" example:"apagado"`
	Indicator          string  `json:"indicador" example:"NORMAL"`
}

type HistoryEntry struct {
	Temperature int    `json:"temperatura" example:"22"`
	Timestamp   string `json:"timestamp" example:"2024-06-01T12:00:00.123456789Z"`
}

type HistoryResponse struct {
	History []HistoryEntry `json:"historial"`
	Total   int            `json:"total" example:"1"`
}

// Request bodies, one per writable field.

type AmbientRequest struct {
	Ambient any `json:"ambiente" swaggertype:"integer" example:"22"`
}

type TargetRequest struct {
	Target any `json:"deseada" swaggertype:"integer" example:"24"`
}

type BatteryRequest struct {
	Battery any `json:"bateria" swaggertype:"number" example:"4.5"`
}

type ModeRequest struct {
	Mode any `json:"climatizador" swaggertype:"string" example:"encendido"`
}

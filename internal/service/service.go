package service

import (
	"context"
)

// Thermostat exposes the validated state operations of one thermostat.
type Thermostat interface {
	SetAmbient(ctx context.Context, raw any) error
	SetTarget(ctx context.Context, raw any) error
	SetBattery(ctx context.Context, raw any) error
	SetMode(ctx context.Context, raw any) error
	Indicator() string
	State() StateView
	History(limit *int) HistoryPage
}

// Monitoring exposes process liveness.
type Monitoring interface {
	Health() HealthReport
}

var (
	_ Thermostat = (*ThermostatService)(nil)
	_ Monitoring = (*MonitoringService)(nil)
)

// Service aggregates the sub-services consumed by the HTTP layer.
type Service struct {
	Thermostat
	Monitoring
}

func NewService(thermostat Thermostat, monitoring Monitoring) *Service {
	return &Service{
		Thermostat: thermostat,
		Monitoring: monitoring,
	}
}

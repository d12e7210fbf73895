package service

import (
	"time"
)

const healthStatusOK = "ok"

// HealthReport is the liveness answer served on the health endpoints.
type HealthReport struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Timestamp     time.Time `json:"timestamp"`
}

type MonitoringService struct {
	version string
	started time.Time
	now     func() time.Time
}

// NewMonitoringService starts the uptime clock at construction.
func NewMonitoringService(version string, now func() time.Time) *MonitoringService {
	if now == nil {
		now = time.Now
	}
	return &MonitoringService{version: version, started: now(), now: now}
}

func (s *MonitoringService) Health() HealthReport {
	now := s.now()
	uptime := now.Sub(s.started)
	if uptime < 0 {
		uptime = 0
	}
	return HealthReport{
		Status:        healthStatusOK,
		Version:       s.version,
		UptimeSeconds: int64(uptime / time.Second),
		Timestamp:     toUTC(now),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

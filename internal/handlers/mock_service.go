package handlers

import (
	"context"
	"sync"
	"time"

	"thermostat_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockThermostat struct {
	mu sync.Mutex

	state     service.StateView
	history   service.HistoryPage
	setErr    error
	lastRaw   any
	lastField string
	setCalls  int
	lastLimit *int
}

func (m *mockThermostat) record(field string, raw any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	m.lastField = field
	m.lastRaw = raw
	return m.setErr
}

func (m *mockThermostat) SetAmbient(_ context.Context, raw any) error { return m.record("ambient", raw) }
func (m *mockThermostat) SetTarget(_ context.Context, raw any) error  { return m.record("target", raw) }
func (m *mockThermostat) SetBattery(_ context.Context, raw any) error { return m.record("battery", raw) }
func (m *mockThermostat) SetMode(_ context.Context, raw any) error    { return m.record("mode", raw) }

func (m *mockThermostat) Indicator() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Indicator
}

func (m *mockThermostat) State() service.StateView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *mockThermostat) History(limit *int) service.HistoryPage {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	return m.history
}

type mockMonitoring struct {
	report service.HealthReport
}

func (m *mockMonitoring) Health() service.HealthReport { return m.report }

// ---- Shared Test Helpers ----

func defaultMockThermostat() *mockThermostat {
	return &mockThermostat{state: service.StateView{
		AmbientTemperature: 20,
		TargetTemperature:  24,
		BatteryCharge:      5.0,
		ClimateMode:        "apagado",
		Indicator:          "NORMAL",
	}}
}

func newMockServices(th *mockThermostat) *service.Service {
	return service.NewService(th, &mockMonitoring{report: service.HealthReport{
		Status:        "ok",
		Version:       "test",
		UptimeSeconds: 3,
		Timestamp:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}})
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

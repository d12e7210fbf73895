// Package notify hands committed thermostat changes to interested parties.
// Publishing is best-effort: a failed publish never undoes a committed change.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"thermostat_api/internal/models"
)

// Event describes the state right after a committed mutation.
type Event struct {
	Field              string         `json:"campo"`
	AmbientTemperature int            `json:"temperatura_ambiente"`
	TargetTemperature  int            `json:"temperatura_deseada"`
	BatteryCharge      models.Decimal `json:"carga_bateria"`
	ClimateMode        string         `json:"estado_climatizador"`
	Indicator          string         `json:"indicador"`
	At                 time.Time      `json:"timestamp"`
}

// Payload is the wire form of an event.
func (e Event) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events to a transport.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	err    error
}

// NewRecorder returns a Recorder whose Publish fails with err when err is non-nil.
// Failed events are still recorded.
func NewRecorder(err error) *Recorder {
	return &Recorder{err: err}
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

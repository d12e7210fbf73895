package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"thermostat_api/internal/history"
	"thermostat_api/internal/indicator"
	"thermostat_api/internal/logger"
	"thermostat_api/internal/models"
	"thermostat_api/internal/notify"
	"thermostat_api/internal/repository"
	"thermostat_api/internal/validation"
)

var (
	// ErrPersistence wraps every state store failure surfaced by the thermostat.
	ErrPersistence = errors.New("thermostat state could not be persisted")

	errNoStore = errors.New("thermostat service requires a state store")
)

// InitialValues seeds a freshly constructed thermostat. The mode always starts off.
type InitialValues struct {
	Ambient int
	Target  int
	Battery float64
}

func DefaultInitialValues() InitialValues {
	return InitialValues{
		Ambient: models.DefaultAmbient,
		Target:  models.DefaultTarget,
		Battery: models.DefaultBattery,
	}
}

// Options configures NewThermostatService. Only Store is required.
type Options struct {
	Rules      *validation.Rules
	Calculator indicator.Calculator
	History    *history.Store
	Store      repository.StateStore
	Notifier   notify.Publisher
	Now        func() time.Time
	Logger     *logger.Logger
	Initial    *InitialValues
}

// StateView is a consistent read of all five thermostat fields.
type StateView struct {
	AmbientTemperature int            `json:"temperatura_ambiente"`
	TargetTemperature  int            `json:"temperatura_deseada"`
	BatteryCharge      models.Decimal `json:"carga_bateria"`
	ClimateMode        string         `json:"estado_climatizador"`
	Indicator          string         `json:"indicador"`
}

// HistoryPage is a newest-first slice of the ambient history plus its full size.
type HistoryPage struct {
	Entries []models.Observation
	Total   int
}

// ThermostatService owns one thermostat's state, history and persistence target.
type ThermostatService struct {
	mu      sync.RWMutex
	state   models.State
	rules   *validation.Rules
	calc    indicator.Calculator
	history *history.Store
	store   repository.StateStore
	notify  notify.Publisher
	now     func() time.Time
	log     *logger.Logger
}

// NewThermostatService validates the initial values and builds the aggregate.
func NewThermostatService(opts Options) (*ThermostatService, error) {
	if opts.Store == nil {
		return nil, errNoStore
	}
	s := &ThermostatService{
		rules:   opts.Rules,
		calc:    opts.Calculator,
		history: opts.History,
		store:   opts.Store,
		notify:  opts.Notifier,
		now:     opts.Now,
		log:     opts.Logger.OrNop(),
	}
	if s.rules == nil {
		s.rules = validation.NewRules(validation.DefaultBounds())
	}
	if s.calc == nil {
		s.calc = indicator.NewThreeLevel(indicator.DefaultNormalThreshold, indicator.DefaultLowThreshold)
	}
	if s.history == nil {
		s.history = history.NewStore(history.DefaultCapacity)
	}
	if s.notify == nil {
		s.notify = notify.Nop{}
	}
	if s.now == nil {
		s.now = time.Now
	}

	seed := DefaultInitialValues()
	if opts.Initial != nil {
		seed = *opts.Initial
	}
	ambient, err := s.rules.Ambient(seed.Ambient)
	if err != nil {
		return nil, fmt.Errorf("initial ambient: %w", err)
	}
	target, err := s.rules.Target(seed.Target)
	if err != nil {
		return nil, fmt.Errorf("initial target: %w", err)
	}
	battery, err := s.rules.Battery(seed.Battery)
	if err != nil {
		return nil, fmt.Errorf("initial battery: %w", err)
	}
	s.state = models.State{
		AmbientTemperature: ambient,
		TargetTemperature:  target,
		BatteryCharge:      battery,
		ClimateMode:        models.ModeOff,
	}
	return s, nil
}

// SetAmbient stores a new ambient temperature and records it in the history.
func (s *ThermostatService) SetAmbient(ctx context.Context, raw any) error {
	return s.mutate(ctx, validation.FieldAmbient, func(st *models.State) error {
		v, err := s.rules.Ambient(raw)
		if err != nil {
			return err
		}
		st.AmbientTemperature = v
		return nil
	}, true)
}

func (s *ThermostatService) SetTarget(ctx context.Context, raw any) error {
	return s.mutate(ctx, validation.FieldTarget, func(st *models.State) error {
		v, err := s.rules.Target(raw)
		if err != nil {
			return err
		}
		st.TargetTemperature = v
		return nil
	}, false)
}

func (s *ThermostatService) SetBattery(ctx context.Context, raw any) error {
	return s.mutate(ctx, validation.FieldBattery, func(st *models.State) error {
		v, err := s.rules.Battery(raw)
		if err != nil {
			return err
		}
		st.BatteryCharge = v
		return nil
	}, false)
}

func (s *ThermostatService) SetMode(ctx context.Context, raw any) error {
	return s.mutate(ctx, validation.FieldMode, func(st *models.State) error {
		v, err := s.rules.Mode(raw)
		if err != nil {
			return err
		}
		st.ClimateMode = v
		return nil
	}, false)
}

// mutate runs validate, persist, commit under the write lock. Nothing in memory
// changes unless the snapshot was saved. Cancelling ctx does not abort the save.
func (s *ThermostatService) mutate(ctx context.Context, field string, apply func(*models.State) error, record bool) error {
	s.mu.Lock()
	next := s.state
	if err := apply(&next); err != nil {
		s.mu.Unlock()
		return err
	}

	snap := repository.EncodeSnapshot(next, s.calc.Calculate(next.BatteryCharge))
	if err := s.store.Save(context.WithoutCancel(ctx), snap); err != nil {
		s.mu.Unlock()
		s.log.Errorw("thermostat_persist_failed", "field", field, "error", err)
		return fmt.Errorf("%w: save %s: %w", ErrPersistence, field, err)
	}

	now := s.now()
	s.state = next
	if record {
		s.history.Append(models.Observation{Temperature: next.AmbientTemperature, RecordedAt: now})
	}
	view := s.viewLocked()
	s.mu.Unlock()

	s.log.Debugw("thermostat_updated", "field", field, "indicator", view.Indicator)
	s.publish(context.WithoutCancel(ctx), field, view, now)
	return nil
}

func (s *ThermostatService) publish(ctx context.Context, field string, v StateView, at time.Time) {
	err := s.notify.Publish(ctx, notify.Event{
		Field:              field,
		AmbientTemperature: v.AmbientTemperature,
		TargetTemperature:  v.TargetTemperature,
		BatteryCharge:      v.BatteryCharge,
		ClimateMode:        v.ClimateMode,
		Indicator:          v.Indicator,
		At:                 at.UTC(),
	})
	if err != nil {
		s.log.Warnw("thermostat_publish_failed", "field", field, "error", err)
	}
}

// Indicator derives the battery level label from the current charge.
func (s *ThermostatService) Indicator() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calc.Calculate(s.state.BatteryCharge)
}

func (s *ThermostatService) State() StateView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked()
}

func (s *ThermostatService) viewLocked() StateView {
	return StateView{
		AmbientTemperature: s.state.AmbientTemperature,
		TargetTemperature:  s.state.TargetTemperature,
		BatteryCharge:      models.Decimal(s.state.BatteryCharge),
		ClimateMode:        string(s.state.ClimateMode),
		Indicator:          s.calc.Calculate(s.state.BatteryCharge),
	}
}

// History lists ambient observations newest-first; nil limit means all of them.
func (s *ThermostatService) History(limit *int) HistoryPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return HistoryPage{
		Entries: s.history.List(limit),
		Total:   s.history.Count(),
	}
}

// LoadState replaces all four fields with the stored snapshot, if there is one.
// Loaded values are trusted as written and are not validated.
func (s *ThermostatService) LoadState(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	exists, err := s.store.Exists(ctx)
	if err != nil {
		return fmt.Errorf("%w: check snapshot: %w", ErrPersistence, err)
	}
	if !exists {
		s.log.Infow("thermostat_state_not_found", "using", "initial_values")
		return nil
	}
	snap, found, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: load snapshot: %w", ErrPersistence, err)
	}
	if !found {
		// removed between the two calls
		return nil
	}
	s.state = repository.DecodeSnapshot(snap)
	s.log.Infow("thermostat_state_restored",
		"ambient", s.state.AmbientTemperature,
		"target", s.state.TargetTemperature,
		"battery", s.state.BatteryCharge,
		"mode", s.state.ClimateMode,
	)
	return nil
}

// Levels lists every label the configured indicator can produce.
func (s *ThermostatService) Levels() []string {
	return s.calc.Levels()
}

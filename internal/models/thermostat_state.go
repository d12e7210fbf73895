package models

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Mode is the climate-control mode of the thermostat.
type Mode string

const (
	ModeOff     Mode = "apagado"
	ModeOn      Mode = "encendido"
	ModeCooling Mode = "enfriando"
	ModeHeating Mode = "calentando"
)

// Modes returns every valid mode, sorted.
func Modes() []Mode {
	modes := []Mode{ModeOff, ModeOn, ModeCooling, ModeHeating}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeOff, ModeOn, ModeCooling, ModeHeating:
		return true
	}
	return false
}

// Defaults used when no initial value is configured and when a snapshot lacks a key.
const (
	DefaultAmbient = 20
	DefaultTarget  = 24
	DefaultBattery = 5.0
	DefaultMode    = ModeOff
)

// State holds the four stored thermostat fields. The indicator is never part of it.
type State struct {
	AmbientTemperature int
	TargetTemperature  int
	BatteryCharge      float64
	ClimateMode        Mode
}

// DefaultState is the state of a thermostat with nothing configured or persisted.
func DefaultState() State {
	return State{
		AmbientTemperature: DefaultAmbient,
		TargetTemperature:  DefaultTarget,
		BatteryCharge:      DefaultBattery,
		ClimateMode:        DefaultMode,
	}
}

// Decimal is a float that always renders with a decimal point in JSON (5.0, not 5).
type Decimal float64

func (d Decimal) MarshalJSON() ([]byte, error) {
	f := float64(d)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("unsupported decimal value %v", f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

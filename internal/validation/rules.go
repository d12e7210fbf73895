// Package validation normalizes raw field values and checks them against the
// configured thermostat bounds.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"thermostat_api/internal/models"
)

// Field names used in rejection messages.
const (
	FieldAmbient = "temperatura_ambiente"
	FieldTarget  = "temperatura_deseada"
	FieldBattery = "carga_bateria"
	FieldMode    = "estado_climatizador"
)

type IntRange struct {
	Min int
	Max int
}

func (r IntRange) contains(v float64) bool {
	return v >= float64(r.Min) && v <= float64(r.Max)
}

type FloatRange struct {
	Min float64
	Max float64
}

func (r FloatRange) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Bounds groups the inclusive limits of every bounded field.
type Bounds struct {
	Ambient IntRange
	Target  IntRange
	Battery FloatRange
}

// DefaultBounds returns 0..50 ambient, 15..30 target and 0.0..5.0 battery.
func DefaultBounds() Bounds {
	return Bounds{
		Ambient: IntRange{Min: 0, Max: 50},
		Target:  IntRange{Min: 15, Max: 30},
		Battery: FloatRange{Min: 0.0, Max: 5.0},
	}
}

// Validate checks that no range is inverted.
func (b Bounds) Validate() error {
	if b.Ambient.Min > b.Ambient.Max {
		return fmt.Errorf("ambient bounds inverted: %d > %d", b.Ambient.Min, b.Ambient.Max)
	}
	if b.Target.Min > b.Target.Max {
		return fmt.Errorf("target bounds inverted: %d > %d", b.Target.Min, b.Target.Max)
	}
	if math.IsNaN(b.Battery.Min) || math.IsNaN(b.Battery.Max) || b.Battery.Min > b.Battery.Max {
		return fmt.Errorf("battery bounds invalid: %v..%v", b.Battery.Min, b.Battery.Max)
	}
	return nil
}

// Rules validates raw inputs for each thermostat field. Safe for concurrent use.
type Rules struct {
	bounds Bounds
}

func NewRules(b Bounds) *Rules {
	return &Rules{bounds: b}
}

func (r *Rules) Bounds() Bounds { return r.bounds }

// Ambient coerces raw to an integer temperature within the ambient bounds.
func (r *Rules) Ambient(raw any) (int, error) {
	return validateInt(FieldAmbient, raw, r.bounds.Ambient)
}

// Target coerces raw to an integer temperature within the target bounds.
func (r *Rules) Target(raw any) (int, error) {
	return validateInt(FieldTarget, raw, r.bounds.Target)
}

// Battery coerces raw to a charge rounded to two decimals within the battery bounds.
// The range check applies to the rounded value.
func (r *Rules) Battery(raw any) (float64, error) {
	f, err := toFloat(raw)
	if err != nil {
		return 0, coercionError(FieldBattery, "un numero", raw, err)
	}
	v := round2(f)
	if !r.bounds.Battery.contains(v) {
		return 0, &RejectedError{
			Field: FieldBattery,
			Kind:  KindOutOfRange,
			Message: fmt.Sprintf("%s debe estar entre %s y %s",
				FieldBattery, formatDecimal(r.bounds.Battery.Min), formatDecimal(r.bounds.Battery.Max)),
		}
	}
	return v, nil
}

// Mode lowercases and trims raw and checks it against the known climate modes.
func (r *Rules) Mode(raw any) (models.Mode, error) {
	s, err := toText(raw)
	if err != nil {
		return "", coercionError(FieldMode, "un texto", raw, err)
	}
	m := models.Mode(strings.TrimSpace(strings.ToLower(s)))
	if !m.Valid() {
		return "", &RejectedError{
			Field: FieldMode,
			Kind:  KindInvalidEnum,
			Message: fmt.Sprintf("%s debe ser uno de: %s. Recibido: '%s'",
				FieldMode, joinModes(models.Modes()), m),
		}
	}
	return m, nil
}

func validateInt(field string, raw any, rng IntRange) (int, error) {
	v, err := toIntegral(raw)
	if err != nil {
		return 0, coercionError(field, "un numero entero", raw, err)
	}
	if !rng.contains(v) {
		return 0, &RejectedError{
			Field:   field,
			Kind:    KindOutOfRange,
			Message: fmt.Sprintf("%s debe estar entre %d y %d", field, rng.Min, rng.Max),
		}
	}
	return int(v), nil
}

func coercionError(field, what string, raw any, err error) *RejectedError {
	return &RejectedError{
		Field:   field,
		Kind:    KindCoercion,
		Message: fmt.Sprintf("%s debe ser %s. Recibido: %v", field, what, describe(raw)),
		Err:     err,
	}
}

func describe(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinModes(modes []models.Mode) string {
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Package indicator derives the battery-level indicator from a battery charge.
package indicator

import "fmt"

// Indicator levels.
const (
	Excellent = "EXCELENTE"
	Good      = "BUENO"
	Normal    = "NORMAL"
	Low       = "BAJO"
	Critical  = "CRITICO"
)

// Default thresholds of the three-level calculator.
const (
	DefaultNormalThreshold = 3.5
	DefaultLowThreshold    = 2.5
)

// Calculator maps a battery charge to an indicator level.
type Calculator interface {
	Calculate(charge float64) string
	Levels() []string
}

// ThreeLevel yields NORMAL above NormalThreshold (exclusive), BAJO from
// LowThreshold (inclusive) and CRITICO below it.
type ThreeLevel struct {
	NormalThreshold float64
	LowThreshold    float64
}

func NewThreeLevel(normal, low float64) ThreeLevel {
	return ThreeLevel{NormalThreshold: normal, LowThreshold: low}
}

func (c ThreeLevel) Calculate(charge float64) string {
	if charge > c.NormalThreshold {
		return Normal
	}
	if charge >= c.LowThreshold {
		return Low
	}
	return Critical
}

func (ThreeLevel) Levels() []string {
	return []string{Normal, Low, Critical}
}

// FiveLevel uses fixed strict-greater thresholds at 4.5, 3.5, 2.5 and 1.5.
type FiveLevel struct{}

func (FiveLevel) Calculate(charge float64) string {
	switch {
	case charge > 4.5:
		return Excellent
	case charge > 3.5:
		return Good
	case charge > 2.5:
		return Normal
	case charge > 1.5:
		return Low
	default:
		return Critical
	}
}

func (FiveLevel) Levels() []string {
	return []string{Excellent, Good, Normal, Low, Critical}
}

// New picks the calculator for the configured number of levels (3 or 5).
// The thresholds only apply to the three-level variant.
func New(levels int, normal, low float64) (Calculator, error) {
	switch levels {
	case 3:
		if low > normal {
			return nil, fmt.Errorf("low threshold %v above normal threshold %v", low, normal)
		}
		return NewThreeLevel(normal, low), nil
	case 5:
		return FiveLevel{}, nil
	default:
		return nil, fmt.Errorf("unsupported indicator levels %d: want 3 or 5", levels)
	}
}

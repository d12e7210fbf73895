package models

import "time"

// Observation is one recorded ambient temperature.
type Observation struct {
	Temperature int
	RecordedAt  time.Time
}

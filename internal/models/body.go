package models

import (
	"time"

	"github.com/google/uuid"
)

// BodyWeight is one body-weight reading.
type BodyWeight struct {
	ID     uuid.UUID `json:"id"`
	UserID int       `json:"user_id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight_kg"`
}

// MeasurementType identifies a tracked body measurement site.
type MeasurementType string

const (
	MeasureArms   MeasurementType = "arms"
	MeasureThighs MeasurementType = "thighs"
	MeasureChest  MeasurementType = "chest"
	MeasureWaist  MeasurementType = "waist"
	MeasureCalves MeasurementType = "calves"
	MeasureNeck   MeasurementType = "neck"
)

// MeasurementTypes lists the valid measurement sites.
var MeasurementTypes = []MeasurementType{
	MeasureArms, MeasureThighs, MeasureChest, MeasureWaist, MeasureCalves, MeasureNeck,
}

// ValidMeasurementType reports whether t is a known site.
func ValidMeasurementType(t MeasurementType) bool {
	for _, m := range MeasurementTypes {
		if m == t {
			return true
		}
	}
	return false
}

// Measurement is one circumference reading in centimeters.
type Measurement struct {
	ID     uuid.UUID       `json:"id"`
	UserID int             `json:"user_id"`
	Date   time.Time       `json:"date"`
	Type   MeasurementType `json:"type"`
	Value  float64         `json:"value_cm"`
}

// DailyWellness is a self-reported daily check-in. Scores are 1-5.
type DailyWellness struct {
	ID             uuid.UUID `json:"id"`
	UserID         int       `json:"user_id"`
	Date           time.Time `json:"date"`
	SleepQuality   int       `json:"sleep_quality"`
	EnergyLevel    int       `json:"energy_level"`
	MuscleSoreness int       `json:"muscle_soreness"`
	Notes          string    `json:"notes,omitempty"`
}

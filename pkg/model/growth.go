package model

import "errors"

// ErrNoMeasurement is returned when a growth entry carries no measurement at
// all; the request is blocked before any network call.
var ErrNoMeasurement = errors.New("growth entry needs at least one measurement")

// GrowthLog mirrors the backend growth record. MeasuredOn is a calendar date;
// every measurement field is optional but at least one must be present.
type GrowthLog struct {
	ID                  string `json:"id"`
	ChildID             string `json:"child_id"`
	MeasuredOn          string `json:"measured_on"`
	WeightGrams         *int   `json:"weight_grams,omitempty"`
	LengthMM            *int   `json:"length_mm,omitempty"`
	HeadCircumferenceMM *int   `json:"head_circumference_mm,omitempty"`
	Notes               string `json:"notes,omitempty"`
	CreatedAt           string `json:"created_at"`
}

// Validate rejects entries with all measurement fields empty.
func (g *GrowthLog) Validate() error {
	if g.WeightGrams == nil && g.LengthMM == nil && g.HeadCircumferenceMM == nil {
		return ErrNoMeasurement
	}
	return nil
}

package ranking

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Calibration maps resume IDs to reference percentages that replace the computed score.
// It is only consulted when supplied explicitly.
type Calibration map[string]float64

// CalibrationError describes an unusable calibration table
type CalibrationError struct {
	Path    string
	Message string
	Cause   error
}

func (e *CalibrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("calibration %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("calibration %s: %s", e.Path, e.Message)
}

func (e *CalibrationError) Unwrap() error {
	return e.Cause
}

// LoadCalibration reads a JSON object of resume ID to percentage
func LoadCalibration(path string) (Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CalibrationError{Path: path, Message: "failed to read file", Cause: err}
	}

	var table Calibration
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &CalibrationError{Path: path, Message: "failed to decode JSON", Cause: err}
	}
	if err := table.Validate(); err != nil {
		return nil, &CalibrationError{Path: path, Message: "invalid entry", Cause: err}
	}
	return table, nil
}

// Validate checks every override is a percentage in [0, 100]
func (c Calibration) Validate() error {
	for id, v := range c {
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("score for %q is %v, want [0, 100]", id, v)
		}
	}
	return nil
}

// Lookup returns the override for a resume, if any
func (c Calibration) Lookup(resumeID string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c[resumeID]
	return v, ok
}

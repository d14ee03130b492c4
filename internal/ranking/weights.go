// Package ranking scores resumes against a job profile along five axes and ranks them.
package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-ranker/internal/types"
)

// weightSumTolerance is how far the weight sum may drift from 1.0
const weightSumTolerance = 1e-9

// Weights are the per-axis contributions to the raw score
type Weights struct {
	Skills     float64 `mapstructure:"skills" json:"skills"`
	Experience float64 `mapstructure:"experience" json:"experience"`
	Education  float64 `mapstructure:"education" json:"education"`
	Semantic   float64 `mapstructure:"semantic_similarity" json:"semantic_similarity"`
	Keyword    float64 `mapstructure:"keyword_relevance" json:"keyword_relevance"`
}

// DefaultWeights returns 0.35 / 0.25 / 0.15 / 0.15 / 0.10
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.35,
		Experience: 0.25,
		Education:  0.15,
		Semantic:   0.15,
		Keyword:    0.10,
	}
}

// For returns the weight of axis
func (w Weights) For(axis types.Axis) float64 {
	switch axis {
	case types.AxisSkills:
		return w.Skills
	case types.AxisExperience:
		return w.Experience
	case types.AxisEducation:
		return w.Education
	case types.AxisSemantic:
		return w.Semantic
	case types.AxisKeyword:
		return w.Keyword
	default:
		return 0
	}
}

// Sum returns the total of all axis weights
func (w Weights) Sum() float64 {
	total := 0.0
	for _, a := range types.Axes() {
		total += w.For(a)
	}
	return total
}

// WeightError describes an invalid weight set
type WeightError struct {
	Axis    types.Axis // Empty when the sum is wrong
	Message string
}

func (e *WeightError) Error() string {
	if e.Axis != "" {
		return fmt.Sprintf("invalid weight for %s: %s", e.Axis, e.Message)
	}
	return fmt.Sprintf("invalid weights: %s", e.Message)
}

// Validate checks every weight lies in [0, 1] and the weights sum to 1
func (w Weights) Validate() error {
	for _, a := range types.Axes() {
		v := w.For(a)
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &WeightError{Axis: a, Message: fmt.Sprintf("%v is outside [0, 1]", v)}
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightSumTolerance {
		return &WeightError{Message: fmt.Sprintf("weights sum to %v, want 1", sum)}
	}
	return nil
}

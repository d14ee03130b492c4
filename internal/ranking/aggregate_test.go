package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestBand(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0, 0.75},
		{1, 0.95},
		{0.5, 0.85},
		{-1, 0.75},
		{2, 0.95},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Band(tt.raw), 1e-12, "raw %v", tt.raw)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 87.65, Percent(0.87654))
	assert.Equal(t, 100.0, Percent(1))
	assert.Equal(t, 0.0, Percent(0))
}

func TestRawScore(t *testing.T) {
	axes := []types.AxisResult{
		{Axis: types.AxisSkills, Score: 1, Weight: 0.5},
		{Axis: types.AxisSemantic, Score: 0.8, Weight: 0.5},
	}
	assert.InDelta(t, 0.9, RawScore(axes), 1e-12)
	assert.Equal(t, 0.0, RawScore(nil))
}

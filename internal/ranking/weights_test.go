package ranking

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestDefaultWeights_Valid(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
	assert.Equal(t, 0.35, w.For(types.AxisSkills))
	assert.Equal(t, 0.10, w.For(types.AxisKeyword))
	assert.Equal(t, 0.0, w.For(types.Axis("unknown")))
}

func TestWeights_Validate(t *testing.T) {
	tests := []struct {
		name     string
		weights  Weights
		wantAxis types.Axis
		wantErr  bool
	}{
		{"custom valid", Weights{Skills: 0.5, Experience: 0.2, Education: 0.1, Semantic: 0.1, Keyword: 0.1}, "", false},
		{"single axis", Weights{Semantic: 1}, "", false},
		{"sum too low", Weights{Skills: 0.5}, "", true},
		{"sum too high", Weights{Skills: 0.5, Experience: 0.6}, "", true},
		{"negative", Weights{Skills: 1.2, Experience: -0.2}, types.AxisSkills, true},
		{"nan", Weights{Skills: math.NaN(), Experience: 1}, types.AxisSkills, true},
		{"negative only", Weights{Skills: 0.5, Experience: 0.5, Education: 0.2, Semantic: -0.2}, types.AxisSemantic, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var we *WeightError
			require.True(t, errors.As(err, &we))
			assert.Equal(t, tt.wantAxis, we.Axis)
		})
	}
}

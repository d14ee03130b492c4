package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeVectors(chunk []string) ([][]float32, error) {
	out := make([][]float32, len(chunk))
	for i, t := range chunk {
		out[i] = []float32{float32(len(t))}
	}
	return out, nil
}

func TestEmbedInBatches_PreservesOrder(t *testing.T) {
	var calls [][]string
	texts := []string{"a", "bb", "ccc", "dddd", "eeeee"}

	vectors, err := embedInBatches(texts, 2, func(chunk []string) ([][]float32, error) {
		calls = append(calls, append([]string(nil), chunk...))
		return fakeVectors(chunk)
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"a", "bb"}, {"ccc", "dddd"}, {"eeeee"}}, calls)
	require.Len(t, vectors, 5)
	for i, v := range vectors {
		assert.Equal(t, float32(i+1), v[0])
	}
}

func TestEmbedInBatches_Empty(t *testing.T) {
	vectors, err := embedInBatches(nil, 10, func([]string) ([][]float32, error) {
		t.Fatal("fn must not be called")
		return nil, nil
	})
	require.NoError(t, err)
	assert.NotNil(t, vectors)
	assert.Empty(t, vectors)
}

func TestEmbedInBatches_CountMismatch(t *testing.T) {
	_, err := embedInBatches([]string{"a", "b"}, 10, func([]string) ([][]float32, error) {
		return [][]float32{{1}}, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count mismatch")
}

func TestEmbedInBatches_PropagatesError(t *testing.T) {
	boom := errors.New("quota exceeded")
	_, err := embedInBatches([]string{"a"}, 10, func([]string) ([][]float32, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

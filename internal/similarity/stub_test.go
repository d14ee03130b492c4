package similarity

import (
	"context"
	"sync"
)

// stubEmbedder returns canned vectors; unknown texts map to {1, 0}
type stubEmbedder struct {
	mu       sync.Mutex
	vectors  map[string][]float32
	err      error
	calls    int
	embedded []string
	closed   bool
}

func (s *stubEmbedder) Embed(_ context.Context, texts ...string) ([][]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		s.embedded = append(s.embedded, t)
		if v, ok := s.vectors[t]; ok {
			out[i] = v
			continue
		}
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func (s *stubEmbedder) Model() string { return "stub-model" }

func (s *stubEmbedder) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

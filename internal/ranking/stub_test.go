package ranking

import "context"

// constBackend reports the same score for every comparison
type constBackend struct {
	score float64
}

func (b constBackend) Name() string { return "const" }

func (b constBackend) Similarity(context.Context, string, string) float64 { return b.score }

func (b constBackend) Relevance(context.Context, string, string) float64 { return b.score }

// reversingBackend ranks phrases in reverse input order
type reversingBackend struct {
	constBackend
}

func (b reversingBackend) RankPhrases(_ context.Context, phrases []string, limit int) []string {
	out := make([]string, 0, len(phrases))
	for i := len(phrases) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, phrases[i])
	}
	return out
}

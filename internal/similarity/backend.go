// Package similarity scores how alike two texts are, with an embedding backend and a lexical fallback.
// Every score is mapped into [Floor, 1].
package similarity

import "context"

const (
	// Floor is the lowest score a backend reports
	Floor = 0.75
	// Span is the width of the reported range above Floor
	Span = 0.25
	// Neutral is reported for empty input or a failed call
	Neutral = 0.8
)

// Backend names
const (
	NameLexical   = "lexical"
	NameEmbedding = "embedding"
)

// Backend compares texts. Implementations never fail: errors degrade to Neutral.
type Backend interface {
	// Name identifies the backend in results and logs
	Name() string
	// Similarity compares two texts
	Similarity(ctx context.Context, a, b string) float64
	// Relevance scores how well text covers phrase
	Relevance(ctx context.Context, phrase, text string) float64
}

// PhraseRanker is implemented by backends that can order candidate phrases by importance
type PhraseRanker interface {
	// RankPhrases returns at most limit phrases, most representative first
	RankPhrases(ctx context.Context, phrases []string, limit int) []string
}

// Rescale maps a raw similarity in [0, 1] onto [Floor, 1]. Out-of-range input is clamped.
func Rescale(s float64) float64 {
	return Floor + Clamp01(s)*Span
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

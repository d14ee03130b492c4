package ranking

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// MaxKeyPhrases bounds the phrases taken from a job description
const MaxKeyPhrases = 10

// minSentenceRunes is the length a sentence must exceed to be a key phrase candidate
const minSentenceRunes = 10

var sentenceBreak = regexp.MustCompile(`[.!?]`)

// Sentences splits text on '.', '!' and '?' and keeps trimmed pieces longer than ten characters
func Sentences(text string) []string {
	var out []string
	for _, s := range sentenceBreak.Split(text, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > minSentenceRunes {
			out = append(out, s)
		}
	}
	return out
}

// KeyPhrases picks the most representative sentences of a job description.
// Backends that rank phrases themselves are used when available; otherwise
// sentences are ranked by mean keyword frequency across the description.
func KeyPhrases(ctx context.Context, description string, backend similarity.Backend) []string {
	sentences := Sentences(description)
	if len(sentences) == 0 {
		return []string{}
	}
	if ranker, ok := backend.(similarity.PhraseRanker); ok {
		return ranker.RankPhrases(ctx, sentences, MaxKeyPhrases)
	}
	return rankByFrequency(description, sentences, MaxKeyPhrases)
}

func rankByFrequency(text string, sentences []string, limit int) []string {
	freq := make(map[string]int)
	for _, w := range similarity.Keywords(text) {
		freq[w]++
	}

	type scored struct {
		sentence string
		score    float64
	}
	ranked := make([]scored, 0, len(sentences))
	for _, s := range sentences {
		words := similarity.Words(s)
		score := 0.0
		if len(words) > 0 {
			total := 0
			for _, w := range words {
				total += freq[w] // stop words have no count
			}
			score = float64(total) / float64(len(words))
		}
		ranked = append(ranked, scored{sentence: s, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.sentence
	}
	return out
}

// ScoreKeywords averages how well the resume covers each key phrase of the description.
// A description without usable phrases scores Neutral.
func ScoreKeywords(ctx context.Context, ev *types.ResumeEvidence, profile *types.JobProfile, backend similarity.Backend) (float64, *types.KeywordDetail) {
	detail := &types.KeywordDetail{Phrases: []types.PhraseRelevance{}}

	phrases := KeyPhrases(ctx, profile.Description, backend)
	if len(phrases) == 0 {
		return similarity.Neutral, detail
	}

	total := 0.0
	for _, p := range phrases {
		r := backend.Relevance(ctx, p, ev.FullText)
		detail.Phrases = append(detail.Phrases, types.PhraseRelevance{Phrase: p, Relevance: r})
		total += r
	}
	return total / float64(len(phrases)), detail
}

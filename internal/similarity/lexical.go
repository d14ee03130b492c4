package similarity

import (
	"context"
	"regexp"
	"strings"
)

var (
	tokenPattern   = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	keywordPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// stopWords are dropped from keyword sets and frequency counts
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true,
	"that": true, "this": true, "are": true, "you": true,
}

// Lexical compares texts by word overlap. It needs no network and is deterministic.
type Lexical struct{}

// NewLexical returns the lexical backend
func NewLexical() *Lexical {
	return &Lexical{}
}

// Name returns "lexical"
func (l *Lexical) Name() string {
	return NameLexical
}

// Similarity is the Jaccard index of the two texts' lowercased word sets, rescaled
func (l *Lexical) Similarity(_ context.Context, a, b string) float64 {
	if a == "" || b == "" {
		return Neutral
	}

	wa := wordSet(a)
	wb := wordSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return Neutral
	}

	overlap := 0
	for w := range wa {
		if wb[w] {
			overlap++
		}
	}
	return Rescale(float64(overlap) / float64(len(wa)+len(wb)-overlap))
}

// Relevance is the fraction of the phrase's keywords found anywhere in text, rescaled.
// Keywords are words of three or more letters that are not stop words.
func (l *Lexical) Relevance(_ context.Context, phrase, text string) float64 {
	keywords := Keywords(phrase)
	if len(keywords) == 0 {
		return Neutral
	}

	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	return Rescale(float64(matches) / float64(len(keywords)))
}

// Words returns the lowercased words of three or more ASCII letters in s, in order
func Words(s string) []string {
	return keywordPattern.FindAllString(strings.ToLower(s), -1)
}

// Keywords is Words minus stop words
func Keywords(s string) []string {
	words := Words(s)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !IsStopWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsStopWord reports whether a lowercased word carries no keyword signal
func IsStopWord(w string) bool {
	return stopWords[w]
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range tokenPattern.FindAllString(strings.ToLower(s), -1) {
		set[w] = true
	}
	return set
}

package skills

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchMode controls how a vocabulary term must appear in text to count as present
type MatchMode string

const (
	// MatchSubstring counts any occurrence, including inside longer words
	// ("java" is found in "javascript"). Score calibration assumes this mode.
	MatchSubstring MatchMode = "substring"
	// MatchWord requires a non-alphanumeric character (or text edge) on both sides of the term.
	MatchWord MatchMode = "word"
)

// ParseMatchMode converts a configuration value to a MatchMode. Empty selects MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchWord:
		return MatchWord, nil
	default:
		return "", fmt.Errorf("unknown skill match mode %q (want %q or %q)", s, MatchSubstring, MatchWord)
	}
}

// Detector finds vocabulary terms in free text
type Detector struct {
	mode  MatchMode
	terms []string
}

// NewDetector returns a Detector over the built-in vocabulary.
func NewDetector(mode MatchMode) *Detector {
	if mode == "" {
		mode = MatchSubstring
	}
	return &Detector{mode: mode, terms: vocabulary}
}

// DefaultDetector returns a substring-mode Detector.
func DefaultDetector() *Detector {
	return NewDetector(MatchSubstring)
}

// Mode returns the detector's match mode.
func (d *Detector) Mode() MatchMode {
	return d.mode
}

// Detect returns every vocabulary term present in text, in vocabulary order.
// Matching is case-insensitive. Empty text yields an empty, non-nil slice.
func (d *Detector) Detect(text string) []string {
	found := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, term := range d.terms {
		if d.contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

func (d *Detector) contains(lower, term string) bool {
	if d.mode != MatchWord {
		return strings.Contains(lower, term)
	}
	return ContainsWord(lower, term)
}

// ContainsWord reports whether term occurs in s with a non-alphanumeric
// character (or the edge of s) on both sides. Matching is case-sensitive.
func ContainsWord(s, term string) bool {
	if term == "" {
		return false
	}

	offset := 0
	for {
		idx := strings.Index(s[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)
		if isBoundaryBefore(s, start) && isBoundaryAfter(s, end) {
			return true
		}
		offset = start + 1
	}
}

func isBoundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func isBoundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

package ranking

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

func TestSentences(t *testing.T) {
	got := Sentences("Short. This sentence is long enough! Another one here?  ")
	assert.Equal(t, []string{"This sentence is long enough", "Another one here"}, got)
	assert.Empty(t, Sentences(""))
}

func TestKeyPhrases_FrequencyRanking(t *testing.T) {
	desc := "Go services. We build Go services in Go daily. Unrelated words appear here."

	got := KeyPhrases(context.Background(), desc, similarity.NewLexical())

	assert.Equal(t, []string{
		"Go services",
		"We build Go services in Go daily",
		"Unrelated words appear here",
	}, got)
}

func TestKeyPhrases_Limit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "Sentence number %d is here. ", i)
	}

	got := KeyPhrases(context.Background(), sb.String(), similarity.NewLexical())

	require.Len(t, got, MaxKeyPhrases)
	// equal scores keep description order
	assert.Equal(t, "Sentence number 0 is here", got[0])
	assert.Equal(t, "Sentence number 9 is here", got[9])
}

func TestKeyPhrases_UsesPhraseRanker(t *testing.T) {
	desc := "First long sentence here. Second long sentence here."

	got := KeyPhrases(context.Background(), desc, reversingBackend{})

	assert.Equal(t, []string{"Second long sentence here", "First long sentence here"}, got)
}

func TestScoreKeywords_EmptyDescription(t *testing.T) {
	score, detail := ScoreKeywords(context.Background(), &types.ResumeEvidence{}, &types.JobProfile{}, similarity.NewLexical())

	assert.Equal(t, similarity.Neutral, score)
	assert.NotNil(t, detail.Phrases)
	assert.Empty(t, detail.Phrases)
}

func TestScoreKeywords_MeanRelevance(t *testing.T) {
	profile := &types.JobProfile{Description: "Design distributed systems. Operate Kubernetes clusters."}
	ev := &types.ResumeEvidence{FullText: "I design distributed systems for a living."}

	score, detail := ScoreKeywords(context.Background(), ev, profile, similarity.NewLexical())

	require.Len(t, detail.Phrases, 2)
	// first phrase: all three keywords present; second: none
	assert.InDelta(t, (1.0+similarity.Floor)/2, score, 1e-9)
}

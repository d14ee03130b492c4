package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

func TestScoreSkills_MissingBelowThreshold(t *testing.T) {
	ev := &types.ResumeEvidence{Skills: []string{"python", "node"}}
	profile := &types.JobProfile{RequiredSkills: []string{"python", "react"}}

	score, detail := ScoreSkills(context.Background(), ev, profile, constBackend{score: 0.5})

	assert.InDelta(t, 0.90, score, 1e-9)
	assert.Equal(t, []string{"python"}, detail.DirectMatches)
	assert.Empty(t, detail.SemanticMatches)
	assert.Equal(t, []string{"react"}, detail.MissingSkills)
}

func TestScoreSkills_SemanticMatch(t *testing.T) {
	ev := &types.ResumeEvidence{Skills: []string{"python", "node"}}
	profile := &types.JobProfile{RequiredSkills: []string{"python", "react"}}

	score, detail := ScoreSkills(context.Background(), ev, profile, constBackend{score: 0.7})

	assert.InDelta(t, 0.8+0.2*(1+0.7)/2, score, 1e-9)
	require.Len(t, detail.SemanticMatches, 1)
	// ties keep the first resume skill
	assert.Equal(t, types.SemanticMatch{RequiredSkill: "react", ResumeSkill: "python", Similarity: 0.7}, detail.SemanticMatches[0])
	assert.Empty(t, detail.MissingSkills)
}

func TestScoreSkills_LexicalFloorCountsAsSemantic(t *testing.T) {
	ev := &types.ResumeEvidence{Skills: []string{"python"}}
	profile := &types.JobProfile{RequiredSkills: []string{"react"}}

	score, detail := ScoreSkills(context.Background(), ev, profile, similarity.NewLexical())

	require.Len(t, detail.SemanticMatches, 1)
	assert.Equal(t, similarity.Floor, detail.SemanticMatches[0].Similarity)
	assert.InDelta(t, 0.8+0.2*similarity.Floor, score, 1e-9)
}

func TestScoreSkills_NoRequirements(t *testing.T) {
	score, detail := ScoreSkills(context.Background(), &types.ResumeEvidence{}, &types.JobProfile{}, constBackend{score: 0.5})

	assert.Equal(t, 1.0, score)
	assert.NotNil(t, detail.DirectMatches)
	assert.NotNil(t, detail.SemanticMatches)
	assert.NotNil(t, detail.MissingSkills)
}

func TestScoreSkills_CaseInsensitive(t *testing.T) {
	ev := &types.ResumeEvidence{Skills: []string{"Python", "Docker"}}
	profile := &types.JobProfile{RequiredSkills: []string{"python", "DOCKER"}}

	score, detail := ScoreSkills(context.Background(), ev, profile, constBackend{score: 0.5})

	assert.Equal(t, 1.0, score)
	assert.Equal(t, []string{"python", "docker"}, detail.DirectMatches)
}

func TestScoreSkills_NoResumeSkills(t *testing.T) {
	profile := &types.JobProfile{RequiredSkills: []string{"go", "sql"}}

	score, detail := ScoreSkills(context.Background(), &types.ResumeEvidence{}, profile, constBackend{score: 0.9})

	assert.Equal(t, 0.8, score)
	assert.Equal(t, []string{"go", "sql"}, detail.MissingSkills)
}

func TestScoreSkills_MonotoneInMatchedRequirements(t *testing.T) {
	ev := &types.ResumeEvidence{Skills: []string{"go", "sql", "docker", "kubernetes"}}
	required := []string{"rust", "go", "haskell", "sql", "docker", "kubernetes"}
	backend := constBackend{score: 0.5}

	profile := &types.JobProfile{RequiredSkills: []string{"rust", "haskell"}}
	prev, _ := ScoreSkills(context.Background(), ev, profile, backend)
	for _, s := range required {
		if !ev.HasSkill(s) {
			continue
		}
		profile.RequiredSkills = append(profile.RequiredSkills, s)
		score, _ := ScoreSkills(context.Background(), ev, profile, backend)
		assert.GreaterOrEqual(t, score, prev, "adding %s", s)
		assert.LessOrEqual(t, score, 1.0)
		prev = score
	}
}

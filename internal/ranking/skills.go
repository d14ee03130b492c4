package ranking

import (
	"context"
	"strings"

	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// SemanticSkillThreshold is the backend similarity at which a resume skill stands in for a required one
const SemanticSkillThreshold = 0.6

// ScoreSkills rates required-skill coverage. Direct matches count 1, semantic matches
// count their similarity. The score is 0.8 + 0.2 * coverage, capped at 1; a job
// with no required skills scores 1.
func ScoreSkills(ctx context.Context, ev *types.ResumeEvidence, profile *types.JobProfile, backend similarity.Backend) (float64, *types.SkillsDetail) {
	detail := &types.SkillsDetail{
		DirectMatches:   []string{},
		SemanticMatches: []types.SemanticMatch{},
		MissingSkills:   []string{},
	}
	if len(profile.RequiredSkills) == 0 {
		return 1.0, detail
	}

	resumeSkills := make([]string, 0, len(ev.Skills))
	have := make(map[string]bool, len(ev.Skills))
	for _, s := range ev.Skills {
		lower := strings.ToLower(s)
		resumeSkills = append(resumeSkills, lower)
		have[lower] = true
	}

	credit := 0.0
	for _, required := range profile.RequiredSkills {
		required = strings.ToLower(required)
		if have[required] {
			detail.DirectMatches = append(detail.DirectMatches, required)
			credit++
			continue
		}

		best, bestScore := "", 0.0
		for _, candidate := range resumeSkills {
			if sim := backend.Similarity(ctx, required, candidate); sim > bestScore {
				best, bestScore = candidate, sim
			}
		}

		if bestScore >= SemanticSkillThreshold {
			detail.SemanticMatches = append(detail.SemanticMatches, types.SemanticMatch{
				RequiredSkill: required,
				ResumeSkill:   best,
				Similarity:    bestScore,
			})
			credit += bestScore
			continue
		}
		detail.MissingSkills = append(detail.MissingSkills, required)
	}

	score := 0.8 + 0.2*credit/float64(len(profile.RequiredSkills))
	if score > 1.0 {
		score = 1.0
	}
	return score, detail
}

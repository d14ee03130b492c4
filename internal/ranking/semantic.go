package ranking

import (
	"context"

	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// ScoreSemantic compares the whole resume with the job description
func ScoreSemantic(ctx context.Context, ev *types.ResumeEvidence, profile *types.JobProfile, backend similarity.Backend) (float64, *types.SemanticDetail) {
	return backend.Similarity(ctx, ev.FullText, profile.Description), &types.SemanticDetail{Backend: backend.Name()}
}

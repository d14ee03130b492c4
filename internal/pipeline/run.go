// Package pipeline provides the high-level orchestration of a ranking run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Steps reported through ProgressCallback
const (
	StepJobProfile = "job_profile"
	StepResumes    = "resumes"
	StepBackend    = "backend"
	StepRanking    = "ranking"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a ranking run
type RunOptions struct {
	JobPath         string
	ResumesDir      string
	CalibrationPath string // Optional explicit score override table

	APIKey         string // Empty selects the lexical backend
	Provider       string
	EmbeddingModel string
	RedisAddr      string
	CacheTTL       time.Duration

	Concurrency int
	SkillMatch  string
	Weights     *ranking.Weights // Nil uses ranking.DefaultWeights

	Logger      *zap.Logger
	Clock       func() time.Time
	NewEmbedder similarity.EmbedderFactory // Nil uses llm.NewEmbedder
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Run ranks every resume in opts.ResumesDir against the job in opts.JobPath.
// An unreadable job, resume directory or calibration table, or invalid settings,
// abort the run; unreadable resume files are skipped and listed in the result.
func Run(ctx context.Context, opts RunOptions) (*types.RankingResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	mode, err := skills.ParseMatchMode(opts.SkillMatch)
	if err != nil {
		return nil, err
	}
	provider, err := llm.ParseProvider(opts.Provider)
	if err != nil {
		return nil, err
	}
	weights := ranking.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}

	// Step 1: Job record -> profile
	record, err := ingestion.LoadJobRecord(opts.JobPath)
	if err != nil {
		return nil, err
	}
	detector := skills.NewDetector(mode)
	profile, err := parsing.NewProfileBuilder(parsing.WithDetector(detector), parsing.WithClock(now)).Build(record)
	if err != nil {
		return nil, fmt.Errorf("failed to build job profile: %w", err)
	}
	logger.Info("parsed job profile",
		zap.String("title", profile.Title),
		zap.Int("required_skills", len(profile.RequiredSkills)),
		zap.Int("required_years", profile.RequiredYears),
		zap.String("required_education", string(profile.RequiredEducation)))
	emitProgress(&opts, StepJobProfile, "Parsed job profile", profile)

	var calibration ranking.Calibration
	if opts.CalibrationPath != "" {
		calibration, err = ranking.LoadCalibration(opts.CalibrationPath)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded calibration table", zap.Int("entries", len(calibration)))
	}

	// Step 2: Resumes -> evidence
	docs, skipped, err := ingestion.LoadResumes(opts.ResumesDir)
	if err != nil {
		return nil, err
	}
	skippedNames := make([]string, 0, len(skipped))
	for _, s := range skipped {
		logger.Warn("skipping unreadable resume", zap.String("path", s.Path), zap.Error(s.Err))
		skippedNames = append(skippedNames, s.String())
	}

	extractor := extraction.NewExtractor(detector)
	evidence := make([]types.ResumeEvidence, len(docs))
	for i, doc := range docs {
		evidence[i] = extractor.Extract(doc.ID, doc.Text)
	}
	logger.Info("extracted resumes", zap.Int("count", len(evidence)), zap.Int("skipped", len(skipped)))
	emitProgress(&opts, StepResumes, fmt.Sprintf("Extracted %d resumes", len(evidence)), evidence)

	// Step 3: Backend, once per run
	backend := similarity.Select(ctx, similarity.Options{
		APIKey:      opts.APIKey,
		LLM:         &llm.Config{Provider: provider, EmbeddingModel: opts.EmbeddingModel},
		RedisAddr:   opts.RedisAddr,
		CacheTTL:    opts.CacheTTL,
		NewEmbedder: opts.NewEmbedder,
	}, logger)
	if closer, ok := backend.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}
	emitProgress(&opts, StepBackend, "Selected "+backend.Name()+" similarity", backend.Name())

	// Step 4: Score and rank
	matcher, err := ranking.NewMatcher(backend,
		ranking.WithWeights(weights),
		ranking.WithCalibration(calibration),
		ranking.WithClock(now),
		ranking.WithConcurrency(opts.Concurrency),
		ranking.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	records, err := matcher.Rank(ctx, evidence, profile)
	if err != nil {
		return nil, err
	}

	result := &types.RankingResult{
		RunID:       uuid.New(),
		JobTitle:    profile.Title,
		Company:     profile.Company,
		Backend:     backend.Name(),
		GeneratedAt: now().UTC(),
		Records:     records,
		Skipped:     skippedNames,
	}
	emitProgress(&opts, StepRanking, fmt.Sprintf("Ranked %d resumes", len(records)), result)

	return result, nil
}

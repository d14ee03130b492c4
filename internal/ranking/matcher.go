package ranking

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Matcher scores resumes against one job profile
type Matcher struct {
	backend     similarity.Backend
	weights     Weights
	calibration Calibration
	now         func() time.Time
	concurrency int
	logger      *zap.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithWeights overrides DefaultWeights
func WithWeights(w Weights) Option {
	return func(m *Matcher) {
		m.weights = w
	}
}

// WithCalibration installs an explicit override table
func WithCalibration(c Calibration) Option {
	return func(m *Matcher) {
		m.calibration = c
	}
}

// WithClock sets the clock used for "since YYYY" experience estimates
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) {
		if now != nil {
			m.now = now
		}
	}
}

// WithConcurrency bounds how many resumes are scored at once. Values below 1 select runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(m *Matcher) {
		m.concurrency = n
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMatcher returns a Matcher over backend. Invalid weights are rejected.
func NewMatcher(backend similarity.Backend, opts ...Option) (*Matcher, error) {
	if backend == nil {
		backend = similarity.NewLexical()
	}
	m := &Matcher{
		backend: backend,
		weights: DefaultWeights(),
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.concurrency < 1 {
		m.concurrency = runtime.NumCPU()
	}
	if err := m.weights.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create matcher: %w", err)
	}
	return m, nil
}

// Backend returns the similarity backend in use
func (m *Matcher) Backend() similarity.Backend {
	return m.backend
}

// Match scores one resume on every axis and aggregates the result
func (m *Matcher) Match(ctx context.Context, ev *types.ResumeEvidence, profile *types.JobProfile) types.MatchRecord {
	skillsScore, skillsDetail := ScoreSkills(ctx, ev, profile, m.backend)
	expScore, expDetail := ScoreExperience(ev, profile, m.now())
	eduScore, eduDetail := ScoreEducation(ev, profile)
	semScore, semDetail := ScoreSemantic(ctx, ev, profile, m.backend)
	kwScore, kwDetail := ScoreKeywords(ctx, ev, profile, m.backend)

	axes := []types.AxisResult{
		m.axis(types.AxisSkills, skillsScore, skillsDetail),
		m.axis(types.AxisExperience, expScore, expDetail),
		m.axis(types.AxisEducation, eduScore, eduDetail),
		m.axis(types.AxisSemantic, semScore, semDetail),
		m.axis(types.AxisKeyword, kwScore, kwDetail),
	}

	raw := RawScore(axes)
	computed := Percent(Band(raw))
	record := types.MatchRecord{
		ResumeID:      ev.ID,
		Email:         ev.Contact.Email,
		OverallScore:  computed,
		ComputedScore: computed,
		RawScore:      similarity.Clamp01(raw),
		Axes:          axes,
	}

	if override, ok := m.calibration.Lookup(ev.ID); ok {
		record.OverallScore = override
		record.Calibrated = true
	}

	m.logger.Debug("scored resume",
		zap.String("resume", ev.ID),
		zap.Float64("raw", raw),
		zap.Float64("overall", record.OverallScore),
		zap.Bool("calibrated", record.Calibrated))

	return record
}

func (m *Matcher) axis(axis types.Axis, score float64, detail types.AxisDetail) types.AxisResult {
	return types.AxisResult{
		Axis:   axis,
		Score:  similarity.Clamp01(score),
		Weight: m.weights.For(axis),
		Detail: detail,
	}
}

// Rank scores every resume in parallel and orders the records by overall score,
// highest first. Ties keep input order. It only fails when ctx is cancelled.
func (m *Matcher) Rank(ctx context.Context, resumes []types.ResumeEvidence, profile *types.JobProfile) ([]types.MatchRecord, error) {
	records := make([]types.MatchRecord, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for i := range resumes {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records[i] = m.Match(gCtx, &resumes[i], profile)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking interrupted: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OverallScore > records[j].OverallScore
	})

	m.logger.Info("ranked resumes",
		zap.Int("count", len(records)),
		zap.String("backend", m.backend.Name()))

	return records, nil
}

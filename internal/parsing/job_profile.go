// Package parsing turns job records into structured JobProfiles using keyword heuristics.
package parsing

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

var skillDelimiters = regexp.MustCompile(`[|,;]`)

// ProfileBuilder derives JobProfiles from JobRecords
type ProfileBuilder struct {
	detector *skills.Detector
	now      func() time.Time
}

// BuilderOption configures a ProfileBuilder
type BuilderOption func(*ProfileBuilder)

// WithDetector sets the skill detector used on requirement lines and the description
func WithDetector(d *skills.Detector) BuilderOption {
	return func(b *ProfileBuilder) {
		if d != nil {
			b.detector = d
		}
	}
}

// WithClock sets the clock used to resolve "since YYYY" requirements
func WithClock(now func() time.Time) BuilderOption {
	return func(b *ProfileBuilder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewProfileBuilder returns a builder using the default substring detector and the wall clock
func NewProfileBuilder(opts ...BuilderOption) *ProfileBuilder {
	b := &ProfileBuilder{
		detector: skills.DefaultDetector(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildJobProfile builds a profile with a default ProfileBuilder
func BuildJobProfile(record *types.JobRecord) (*types.JobProfile, error) {
	return NewProfileBuilder().Build(record)
}

// Build derives the structured profile of a job record. Only a nil record is an error.
func (b *ProfileBuilder) Build(record *types.JobRecord) (*types.JobProfile, error) {
	if record == nil {
		return nil, &ValidationError{Field: "record", Message: "job record is required"}
	}

	now := b.now()
	requiredYears := 0
	for _, line := range record.JobRequirements {
		if years := ExtractYears(line, now); years > requiredYears {
			requiredYears = years
		}
	}

	return &types.JobProfile{
		Title:                   record.JobTitle,
		Company:                 record.Company,
		RequiredSkills:          b.requiredSkills(record),
		RequiredYears:           requiredYears,
		RequiredEducation:       RequiredEducation(record.JobRequirements),
		CategorizedRequirements: CategorizeRequirements(record.JobRequirements),
		Description:             record.Description,
	}, nil
}

// requiredSkills merges the explicit skills field, skills named in requirement
// lines, then skills named in the description. First occurrence wins.
func (b *ProfileBuilder) requiredSkills(record *types.JobRecord) []string {
	sources := [][]string{SplitSkills(record.JobSkills)}
	for _, line := range record.JobRequirements {
		sources = append(sources, b.detector.Detect(line))
	}
	sources = append(sources, b.detector.Detect(record.Description))
	return skills.Merge(sources...)
}

// SplitSkills splits a delimited skills field on '|', ',' and ';'
func SplitSkills(field string) []string {
	if strings.TrimSpace(field) == "" {
		return []string{}
	}
	parts := skillDelimiters.Split(field, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := skills.NormalizeSkillName(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseJobRecord validates a job record document against the job record schema and decodes it
func ParseJobRecord(data []byte) (*types.JobRecord, error) {
	if err := schemas.ValidateJobRecord(data); err != nil {
		return nil, &ParseError{
			Message: "job record does not match schema",
			Cause:   err,
		}
	}

	var record types.JobRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ParseError{
			Message: "failed to decode job record",
			Cause:   err,
		}
	}

	return &record, nil
}

package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Axis names one of the five independent scoring dimensions
type Axis string

// Scoring axes, in aggregation order
const (
	AxisSkills     Axis = "skills"
	AxisExperience Axis = "experience"
	AxisEducation  Axis = "education"
	AxisSemantic   Axis = "semantic_similarity"
	AxisKeyword    Axis = "keyword_relevance"
)

// Axes returns every axis in aggregation order.
func Axes() []Axis {
	return []Axis{AxisSkills, AxisExperience, AxisEducation, AxisSemantic, AxisKeyword}
}

// AxisDetail is the axis-specific diagnostic payload of an AxisResult
type AxisDetail interface {
	Summary() string
}

// AxisResult is the outcome of one axis scorer for one resume
type AxisResult struct {
	Axis   Axis       `json:"axis"`
	Score  float64    `json:"score"`  // 0-1
	Weight float64    `json:"weight"` // 0-1
	Detail AxisDetail `json:"detail,omitempty"`
}

// UnmarshalJSON decodes Detail into the concrete type for Axis. Unknown axes leave Detail nil.
func (r *AxisResult) UnmarshalJSON(data []byte) error {
	type alias AxisResult
	aux := struct {
		*alias
		Detail json.RawMessage `json:"detail,omitempty"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Detail = nil
	if len(aux.Detail) == 0 || string(aux.Detail) == "null" {
		return nil
	}

	var detail AxisDetail
	switch r.Axis {
	case AxisSkills:
		detail = &SkillsDetail{}
	case AxisExperience:
		detail = &ExperienceDetail{}
	case AxisEducation:
		detail = &EducationDetail{}
	case AxisSemantic:
		detail = &SemanticDetail{}
	case AxisKeyword:
		detail = &KeywordDetail{}
	default:
		return nil
	}
	if err := json.Unmarshal(aux.Detail, detail); err != nil {
		return fmt.Errorf("failed to decode %s detail: %w", r.Axis, err)
	}
	r.Detail = detail
	return nil
}

// SemanticMatch is a required skill satisfied by a similar resume skill
type SemanticMatch struct {
	RequiredSkill string  `json:"required_skill"`
	ResumeSkill   string  `json:"resume_skill"`
	Similarity    float64 `json:"similarity"`
}

// SkillsDetail explains the skills axis
type SkillsDetail struct {
	DirectMatches   []string        `json:"direct_matches"`
	SemanticMatches []SemanticMatch `json:"semantic_matches"`
	MissingSkills   []string        `json:"missing_skills"`
}

// Summary implements AxisDetail
func (d *SkillsDetail) Summary() string {
	s := fmt.Sprintf("%d direct, %d semantic, %d missing", len(d.DirectMatches), len(d.SemanticMatches), len(d.MissingSkills))
	if len(d.MissingSkills) > 0 {
		s += " (" + strings.Join(d.MissingSkills, ", ") + ")"
	}
	return s
}

// ExperienceDetail explains the experience axis
type ExperienceDetail struct {
	EstimatedYears float64 `json:"estimated_years"`
	RequiredYears  int     `json:"required_years"`
	Level          string  `json:"experience_level"`
	Method         string  `json:"method"` // How EstimatedYears was derived
}

// Summary implements AxisDetail
func (d *ExperienceDetail) Summary() string {
	return fmt.Sprintf("%.1f of %d years (%s, %s)", d.EstimatedYears, d.RequiredYears, d.Level, d.Method)
}

// EducationDetail explains the education axis
type EducationDetail struct {
	DetectedLevel string `json:"detected_level"`
	RequiredLevel string `json:"required_level"`
	FieldMatch    bool   `json:"field_match"`
}

// Summary implements AxisDetail
func (d *EducationDetail) Summary() string {
	field := "no relevant field"
	if d.FieldMatch {
		field = "relevant field"
	}
	return fmt.Sprintf("detected %s, required %s, %s", d.DetectedLevel, d.RequiredLevel, field)
}

// SemanticDetail explains the semantic similarity axis
type SemanticDetail struct {
	Backend string `json:"backend"`
}

// Summary implements AxisDetail
func (d *SemanticDetail) Summary() string {
	return "backend " + d.Backend
}

// PhraseRelevance is the relevance of one job key phrase to a resume
type PhraseRelevance struct {
	Phrase    string  `json:"phrase"`
	Relevance float64 `json:"relevance"`
}

// KeywordDetail explains the keyword relevance axis
type KeywordDetail struct {
	Phrases []PhraseRelevance `json:"phrases"`
}

// Summary implements AxisDetail
func (d *KeywordDetail) Summary() string {
	return fmt.Sprintf("%d key phrases", len(d.Phrases))
}

// MatchRecord is the scored match of one resume against one job
type MatchRecord struct {
	ResumeID      string       `json:"resume_id"`
	Email         string       `json:"email"`
	OverallScore  float64      `json:"overall_score"`  // 0-100, reported score
	ComputedScore float64      `json:"computed_score"` // 0-100, before any calibration override
	RawScore      float64      `json:"raw_score"`      // 0-1 weighted sum
	Calibrated    bool         `json:"calibrated,omitempty"`
	Axes          []AxisResult `json:"axes"`
}

// Axis returns the result for the named axis, or nil if absent.
func (m *MatchRecord) Axis(axis Axis) *AxisResult {
	for i := range m.Axes {
		if m.Axes[i].Axis == axis {
			return &m.Axes[i]
		}
	}
	return nil
}

// Recommendation is a human readable tier derived from the overall score
type Recommendation string

// Recommendation tiers
const (
	RecommendationExcellent Recommendation = "excellent"
	RecommendationStrong    Recommendation = "strong"
	RecommendationGood      Recommendation = "good"
	RecommendationModerate  Recommendation = "moderate"
	RecommendationWeak      Recommendation = "weak"
)

// Recommendation maps OverallScore to a tier (>=80 excellent, >=70 strong, >=60 good, >=50 moderate).
func (m *MatchRecord) Recommendation() Recommendation {
	switch {
	case m.OverallScore >= 80:
		return RecommendationExcellent
	case m.OverallScore >= 70:
		return RecommendationStrong
	case m.OverallScore >= 60:
		return RecommendationGood
	case m.OverallScore >= 50:
		return RecommendationModerate
	default:
		return RecommendationWeak
	}
}

// RankingResult is the ranked output of one run for one job
type RankingResult struct {
	RunID       uuid.UUID     `json:"run_id"`
	JobTitle    string        `json:"job_title"`
	Company     string        `json:"company"`
	Backend     string        `json:"backend"`
	GeneratedAt time.Time     `json:"generated_at"`
	Records     []MatchRecord `json:"records"`
	Skipped     []string      `json:"skipped,omitempty"` // Resumes that could not be read
}

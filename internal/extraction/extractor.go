package extraction

import (
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Extractor builds ResumeEvidence from plain resume text
type Extractor struct {
	detector *skills.Detector
}

// NewExtractor returns an Extractor that detects skills with detector.
// A nil detector selects the default substring detector.
func NewExtractor(detector *skills.Detector) *Extractor {
	if detector == nil {
		detector = skills.DefaultDetector()
	}
	return &Extractor{detector: detector}
}

// Extract segments rawText into evidence. It never fails: empty text yields
// empty skills and sections.
func (x *Extractor) Extract(id, rawText string) types.ResumeEvidence {
	sections := Segment(rawText)

	return types.ResumeEvidence{
		ID:             id,
		Skills:         x.detector.Detect(rawText),
		EducationText:  sections.Education,
		ExperienceText: sections.Experience,
		FullText:       rawText,
		Contact:        ExtractContact(id, rawText),
	}
}

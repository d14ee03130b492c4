package ranking

import (
	"strings"

	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// degreeLevel is one rung of the education scale as it appears in resumes
type degreeLevel struct {
	ordinal  int
	label    string
	variants []string
}

var degreeLevels = []degreeLevel{
	{1, "High School", []string{"high school", "secondary school"}},
	{2, "Associate", []string{"associate", "associates", "associate's"}},
	{3, "Bachelor", []string{"bachelor", "bachelors", "b.s", "b.a", "bs", "ba", "bsc", "b.sc", "b.eng", "undergraduate"}},
	{4, "Master", []string{"master", "masters", "m.s", "m.a", "msc", "m.sc", "m.eng", "mba", "graduate"}},
	{5, "PhD/Doctorate", []string{"phd", "ph.d.", "ph.d", "doctorate", "doctoral"}},
}

// relevantFields earn a bonus when they appear in the education section
var relevantFields = []string{
	"computer science",
	"information technology",
	"software engineering",
	"computer engineering",
	"electrical engineering",
	"data science",
	"mathematics",
	"statistics",
	"information systems",
}

// DetectedUnknown labels an education section with no recognizable degree
const DetectedUnknown = "Unknown"

// DetectEducation returns the highest degree ordinal and label named in text.
// Variants must appear as whole words.
func DetectEducation(text string) (int, string) {
	lower := strings.ToLower(text)
	best, label := 0, DetectedUnknown
	for _, level := range degreeLevels {
		for _, v := range level.variants {
			if skills.ContainsWord(lower, v) {
				if level.ordinal > best {
					best, label = level.ordinal, level.label
				}
				break
			}
		}
	}
	return best, label
}

// HasRelevantField reports whether text names a field relevant to technical roles
func HasRelevantField(text string) bool {
	lower := strings.ToLower(text)
	for _, f := range relevantFields {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// RequiredLabel is the report label of a job's education requirement
func RequiredLabel(level types.EducationLevel) string {
	switch level {
	case types.EducationBachelor:
		return "Bachelor"
	case types.EducationMaster:
		return "Master"
	case types.EducationPhD:
		return "PhD"
	default:
		return "None"
	}
}

// ScoreEducation rates the detected degree against the requirement. Meeting it scores 1,
// falling short scores 0.8 + 0.2 * detected/required, and a relevant field adds 0.1 (capped at 1).
func ScoreEducation(ev *types.ResumeEvidence, profile *types.JobProfile) (float64, *types.EducationDetail) {
	detected, label := DetectEducation(ev.EducationText)
	detail := &types.EducationDetail{
		DetectedLevel: label,
		RequiredLevel: RequiredLabel(profile.RequiredEducation),
	}

	required := profile.RequiredEducation.Ordinal()
	if required == 0 {
		return 1.0, detail
	}

	score := 1.0
	if detected < required {
		score = 0.8 + 0.2*float64(detected)/float64(required)
	}

	if HasRelevantField(ev.EducationText) {
		detail.FieldMatch = true
		score += 0.1
		if score > 1.0 {
			score = 1.0
		}
	}
	return score, detail
}

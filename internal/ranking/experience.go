package ranking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Experience level labels
const (
	LevelEntry     = "Entry Level"
	LevelMid       = "Mid Level"
	LevelMidSenior = "Mid-Senior Level"
	LevelSenior    = "Senior/Expert"
)

// How estimated years were derived
const (
	MethodNotRequired = "not required"
	MethodExplicit    = "explicit"
	MethodDates       = "dates"
	MethodStructural  = "structural"
	MethodNone        = "none"
)

var (
	yearMentionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*(?:years|year|yrs|yr)(?:\s+of\s+|\s+)(?:experience|work)`),
		regexp.MustCompile(`(?:experience|work)(?:\s+of\s+|\s+)(\d+)\+?\s*(?:years|year|yrs|yr)`),
		regexp.MustCompile(`(\d+)(?:-\d+)?\+?\s*(?:years|year|yrs|yr)`),
	}
	startYearPattern = regexp.MustCompile(`(?:since|from)\s+(\d{4})`)

	positionPattern  = regexp.MustCompile(`(?:position|title|role|worked|employed)(?:\s*:\s*|\s+as\s+|\s+at\s+|\s+with\s+|\s+for\s+)`)
	dateRangePattern = regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\s*(?:-|–|to)\s*(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|Present|Current)[a-z]*\s*\d{0,4}`)
)

var actionVerbs = []string{"develop", "implement", "manage", "lead", "create", "design"}

// EstimateYears guesses a candidate's years of experience from their experience text.
// Explicit "N years" mentions and "since/from YYYY" dates are tried first, taking the
// maximum. Without either, a structural estimate counts positions, month-year date
// ranges and substantial action-verb paragraphs.
func EstimateYears(text string, now time.Time) (float64, string) {
	lower := strings.ToLower(text)

	explicit := 0
	for _, p := range yearMentionPatterns {
		for _, m := range p.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > explicit {
				explicit = n
			}
		}
	}

	dated := 0
	for _, m := range startYearPattern.FindAllStringSubmatch(lower, -1) {
		since, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years := now.Year() - since; years > 0 && years < parsing.MaxPlausibleYears && years > dated {
			dated = years
		}
	}

	switch {
	case explicit > 0 && explicit >= dated:
		return float64(explicit), MethodExplicit
	case dated > 0:
		return float64(dated), MethodDates
	}

	if estimate := structuralYears(text); estimate > 0 {
		return estimate, MethodStructural
	}
	return 0, MethodNone
}

func structuralYears(text string) float64 {
	positions := float64(len(positionPattern.FindAllStringIndex(text, -1))) * 2
	ranges := float64(len(dateRangePattern.FindAllStringIndex(text, -1))) * 1.5

	jobParagraphs := 0
	for _, para := range strings.Split(text, "\n\n") {
		if utf8.RuneCountInString(para) <= 100 {
			continue
		}
		lower := strings.ToLower(para)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				jobParagraphs++
				break
			}
		}
	}
	paragraphs := float64(jobParagraphs) * 1.5

	floor := 0.0
	if utf8.RuneCountInString(text) > 200 {
		floor = 1
	}

	return math.Max(math.Max(positions, ranges), math.Max(paragraphs, floor))
}

// ExperienceLevel labels estimated years for reports
func ExperienceLevel(years float64) string {
	switch {
	case years >= 10:
		return LevelSenior
	case years >= 5:
		return LevelMidSenior
	case years >= 2:
		return LevelMid
	default:
		return LevelEntry
	}
}

// ExperienceStep maps estimated against required years onto the experience score steps
func ExperienceStep(estimated float64, required int) float64 {
	req := float64(required)
	switch {
	case estimated >= req:
		return 1.0
	case estimated >= req*0.7:
		return 0.95
	case estimated >= req*0.5:
		return 0.90
	case estimated >= req*0.3:
		return 0.85
	case estimated > 0:
		return 0.80
	default:
		return 0.75
	}
}

// ScoreExperience rates estimated years against the job's requirement.
// No requirement scores 1 without examining the resume.
func ScoreExperience(ev *types.ResumeEvidence, profile *types.JobProfile, now time.Time) (float64, *types.ExperienceDetail) {
	if profile.RequiredYears == 0 {
		return 1.0, &types.ExperienceDetail{
			Level:  LevelEntry,
			Method: MethodNotRequired,
		}
	}

	years, method := EstimateYears(ev.ExperienceText, now)
	return ExperienceStep(years, profile.RequiredYears), &types.ExperienceDetail{
		EstimatedYears: years,
		RequiredYears:  profile.RequiredYears,
		Level:          ExperienceLevel(years),
		Method:         method,
	}
}

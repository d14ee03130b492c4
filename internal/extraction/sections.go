// Package extraction turns raw resume text into ResumeEvidence: skills, section text and contact details.
package extraction

import (
	"strings"
	"unicode"
)

// State is the position of a section machine relative to the section it captures
type State int

// Section machine states
const (
	StateOutside State = iota
	StateInEducation
	StateInExperience
)

func (s State) String() string {
	switch s {
	case StateInEducation:
		return "IN_EDUCATION"
	case StateInExperience:
		return "IN_EXPERIENCE"
	default:
		return "OUTSIDE"
	}
}

// Transition labels what a section machine did with one line
type Transition string

// Transition labels. Open, Append and Fill capture the line.
const (
	TransitionOpen   Transition = "open"   // header line, enter the section
	TransitionAppend Transition = "append" // line carries a section keyword
	TransitionFill   Transition = "fill"   // blank or date-like line inside the section
	TransitionClose  Transition = "close"  // line carries another section's keyword
	TransitionSkip   Transition = "skip"   // line ignored
)

// Captures reports whether the transition keeps the line in the section text.
func (t Transition) Captures() bool {
	return t == TransitionOpen || t == TransitionAppend || t == TransitionFill
}

var educationKeywords = []string{
	"education", "university", "college", "school", "institute", "academy",
	"bachelor", "master", "phd", "doctorate", "degree", "diploma", "certificate",
	"bsc", "msc", "ba", "ma", "b.tech", "m.tech", "b.e.", "m.e.",
	"computer science", "information technology", "software engineering",
	"electrical engineering", "electronics", "mathematics", "physics",
	"engineering", "gpa", "grade", "graduated", "graduation",
}

var experienceKeywords = []string{
	"experience", "work", "employment", "job", "career", "position",
	"role", "responsibility", "project", "achievement", "accomplishment",
	"developed", "implemented", "designed", "created", "built", "managed",
	"led", "coordinated", "collaborated", "team", "client", "customer",
	"software engineer", "developer", "programmer", "architect", "analyst",
	"consultant", "manager", "director", "lead", "senior", "junior",
	"intern", "internship", "co-op", "freelance", "contract", "full-time",
	"part-time", "remote", "onsite", "company", "organization", "startup",
	"enterprise", "corporation", "business", "industry", "sector",
}

// sectionRules are the labeled transition predicates of one section machine
type sectionRules struct {
	inside  State
	headers []string // open the section
	keep    []string // append while inside
	closers []string // close while inside, on a non-blank line
	filler  func(line string) bool
}

var educationRules = sectionRules{
	inside:  StateInEducation,
	headers: []string{"education", "academic", "qualification"},
	keep:    educationKeywords,
	closers: []string{"experience", "work", "employment", "skills", "projects"},
	filler: func(line string) bool {
		return strings.TrimSpace(line) == "" || hasDigit(line)
	},
}

var experienceRules = sectionRules{
	inside:  StateInExperience,
	headers: []string{"experience", "employment", "work history"},
	keep:    experienceKeywords,
	closers: []string{"education", "skills", "projects", "certifications", "references"},
	filler: func(line string) bool {
		return strings.TrimSpace(line) == "" || hasDigit(line) || strings.Contains(line, "-")
	},
}

// step applies the section's transition predicates to one line.
// A header line always opens (or re-opens) the section.
func (r *sectionRules) step(state State, line string) (State, Transition) {
	lower := strings.ToLower(line)

	if containsAny(lower, r.headers) {
		return r.inside, TransitionOpen
	}
	if state != r.inside {
		return StateOutside, TransitionSkip
	}
	if containsAny(lower, r.keep) {
		return r.inside, TransitionAppend
	}
	if strings.TrimSpace(line) != "" && containsAny(lower, r.closers) {
		return StateOutside, TransitionClose
	}
	if r.filler(line) {
		return r.inside, TransitionFill
	}
	return r.inside, TransitionSkip
}

// Sections is the captured education and experience evidence
type Sections struct {
	Education  string
	Experience string
}

// Step records what both section machines did with one line
type Step struct {
	Line            string
	EducationState  State
	Education       Transition
	ExperienceState State
	Experience      Transition
}

// Segment runs the education and experience machines over text and returns the captured sections.
// The two machines are independent, so a line may be captured by both.
func Segment(text string) Sections {
	sections, _ := scan(text, false)
	return sections
}

// Trace is Segment with a per-line record of states and transitions.
func Trace(text string) []Step {
	_, steps := scan(text, true)
	return steps
}

func scan(text string, trace bool) (Sections, []Step) {
	var steps []Step
	if text == "" {
		return Sections{}, steps
	}

	var edu, exp strings.Builder
	eduState, expState := StateOutside, StateOutside

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		var eduT, expT Transition
		eduState, eduT = educationRules.step(eduState, line)
		expState, expT = experienceRules.step(expState, line)

		if eduT.Captures() {
			edu.WriteString(line)
			edu.WriteString("\n")
		}
		if expT.Captures() {
			exp.WriteString(line)
			exp.WriteString("\n")
		}

		if trace {
			steps = append(steps, Step{
				Line:            line,
				EducationState:  eduState,
				Education:       eduT,
				ExperienceState: expState,
				Experience:      expT,
			})
		}
	}

	return Sections{
		Education:  strings.TrimSpace(edu.String()),
		Experience: strings.TrimSpace(exp.String()),
	}, steps
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

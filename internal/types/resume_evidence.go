package types

import "strings"

// ResumeEvidence is everything the matcher knows about one resume
type ResumeEvidence struct {
	ID             string   `json:"id"`
	Skills         []string `json:"skills"` // Case-folded, deduplicated
	EducationText  string   `json:"education_text"`
	ExperienceText string   `json:"experience_text"`
	FullText       string   `json:"full_text"`
	Contact        Contact  `json:"contact"`
}

// Contact holds the first email and phone found in a resume
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// HasSkill reports whether the resume lists the skill, ignoring case and surrounding whitespace.
func (e *ResumeEvidence) HasSkill(skill string) bool {
	want := strings.ToLower(strings.TrimSpace(skill))
	if want == "" {
		return false
	}
	for _, s := range e.Skills {
		if strings.ToLower(s) == want {
			return true
		}
	}
	return false
}

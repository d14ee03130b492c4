// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRecord is the job description as supplied by the caller
type JobRecord struct {
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	JobSkills       string   `json:"job_skills"` // Delimited by '|', ',' or ';'
	JobRequirements []string `json:"job_requirements"`
	Description     string   `json:"description"`
}

// JobProfile is the structured need derived from a JobRecord
type JobProfile struct {
	Title                   string                `json:"title"`
	Company                 string                `json:"company"`
	RequiredSkills          []string              `json:"required_skills"`
	RequiredYears           int                   `json:"required_years"`
	RequiredEducation       EducationLevel        `json:"required_education"`
	CategorizedRequirements map[Category][]string `json:"categorized_requirements"`
	Description             string                `json:"description"`
}

// EducationLevel is the minimum degree a job asks for
type EducationLevel string

// Education levels recognized in job requirements
const (
	EducationNone     EducationLevel = "none"
	EducationBachelor EducationLevel = "bachelor"
	EducationMaster   EducationLevel = "master"
	EducationPhD      EducationLevel = "phd"
)

// Ordinal returns the level's rank on the shared education scale
// (high school=1, associate=2, bachelor=3, master=4, phd=5). None is 0.
func (l EducationLevel) Ordinal() int {
	switch l {
	case EducationBachelor:
		return 3
	case EducationMaster:
		return 4
	case EducationPhD:
		return 5
	default:
		return 0
	}
}

// Category is a bucket for a single requirement line
type Category string

// Requirement categories, in matching priority order
const (
	CategoryEducation  Category = "education"
	CategoryExperience Category = "experience"
	CategorySkills     Category = "skills"
	CategoryTools      Category = "tools"
	CategorySoftSkills Category = "soft_skills"
	CategoryOther      Category = "other"
)

// Categories lists every category in the order requirements are matched against them.
// CategoryOther is last and catches anything unmatched.
func Categories() []Category {
	return []Category{
		CategoryEducation,
		CategoryExperience,
		CategorySkills,
		CategoryTools,
		CategorySoftSkills,
		CategoryOther,
	}
}

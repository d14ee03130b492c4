package parsing

import (
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

var categoryKeywords = map[types.Category][]string{
	types.CategoryEducation:  {"degree", "bachelor", "master", "phd", "education", "university", "college", "academic"},
	types.CategoryExperience: {"experience", "year", "work", "industry", "background", "history"},
	types.CategorySkills:     {"skill", "proficiency", "knowledge", "familiar", "ability", "capable", "competent"},
	types.CategoryTools:      {"tool", "software", "framework", "library", "platform", "system", "technology"},
	types.CategorySoftSkills: {"communication", "teamwork", "leadership", "problem-solving", "analytical", "interpersonal"},
}

// Categorize returns the category a requirement line belongs to: the first
// category, in types.Categories order, with a keyword in the line, else CategoryOther.
func Categorize(line string) types.Category {
	lower := strings.ToLower(line)
	for _, c := range types.Categories() {
		for _, kw := range categoryKeywords[c] {
			if strings.Contains(lower, kw) {
				return c
			}
		}
	}
	return types.CategoryOther
}

// CategorizeRequirements buckets each line into exactly one category.
// Every category is present once there is at least one line; no lines yields an empty map.
func CategorizeRequirements(lines []string) map[types.Category][]string {
	out := make(map[types.Category][]string)
	if len(lines) == 0 {
		return out
	}

	for _, c := range types.Categories() {
		out[c] = []string{}
	}
	for _, line := range lines {
		c := Categorize(line)
		out[c] = append(out[c], line)
	}
	return out
}

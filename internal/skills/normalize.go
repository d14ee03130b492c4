package skills

import "strings"

// NormalizeSkillName case-folds a skill name and collapses internal whitespace.
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(skillName)), " ")
}

// Merge concatenates skill lists, normalizing each name and keeping only the
// first occurrence of every normalized name. Empty names are dropped.
func Merge(lists ...[]string) []string {
	merged := make([]string, 0)
	seen := make(map[string]bool)

	for _, list := range lists {
		for _, skill := range list {
			normalized := NormalizeSkillName(skill)
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			merged = append(merged, normalized)
		}
	}

	return merged
}

package parsing

import (
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// degreeMarkers are checked in order; the first level with a marker in the line wins.
// "undergraduate" is listed under bachelor so it is seen before master's "graduate".
var degreeMarkers = []struct {
	level   types.EducationLevel
	markers []string
}{
	{types.EducationBachelor, []string{"bachelor", "b.s.", "b.a.", "undergraduate"}},
	{types.EducationMaster, []string{"master", "m.s.", "m.a.", "graduate"}},
	{types.EducationPhD, []string{"phd", "ph.d", "doctorate"}},
}

// ExtractEducationLevel returns the degree one requirement line mentions, or EducationNone.
func ExtractEducationLevel(line string) types.EducationLevel {
	lower := strings.ToLower(line)
	for _, d := range degreeMarkers {
		for _, m := range d.markers {
			if strings.Contains(lower, m) {
				return d.level
			}
		}
	}
	return types.EducationNone
}

// RequiredEducation folds requirement lines into the highest degree asked for.
// PhD ends the scan.
func RequiredEducation(lines []string) types.EducationLevel {
	required := types.EducationNone
	for _, line := range lines {
		level := ExtractEducationLevel(line)
		if level == types.EducationPhD {
			return level
		}
		if level.Ordinal() > required.Ordinal() {
			required = level
		}
	}
	return required
}

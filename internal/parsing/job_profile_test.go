package parsing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestBuild_FullRecord(t *testing.T) {
	record := &types.JobRecord{
		JobTitle:  "Backend Engineer",
		Company:   "Acme",
		JobSkills: "Python | Docker; aws",
		JobRequirements: []string{
			"Bachelor's degree in Computer Science required, 3+ years experience",
			"Experience with Kubernetes and react",
		},
		Description: "We use Python and PostgreSQL.",
	}

	profile, err := NewProfileBuilder(WithClock(fixedClock)).Build(record)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", profile.Title)
	assert.Equal(t, "Acme", profile.Company)
	// "sql" comes from the substring hit inside "postgresql"
	assert.Equal(t, []string{"python", "docker", "aws", "react", "kubernetes", "sql", "postgresql"}, profile.RequiredSkills)
	assert.Equal(t, 3, profile.RequiredYears)
	assert.Equal(t, types.EducationBachelor, profile.RequiredEducation)
	assert.Equal(t, []string{record.JobRequirements[0]}, profile.CategorizedRequirements[types.CategoryEducation])
	assert.Equal(t, []string{record.JobRequirements[1]}, profile.CategorizedRequirements[types.CategoryExperience])
	assert.Empty(t, profile.CategorizedRequirements[types.CategoryOther])
	assert.Len(t, profile.CategorizedRequirements, len(types.Categories()))
	assert.Equal(t, record.Description, profile.Description)
}

func TestBuild_BachelorAndYears(t *testing.T) {
	profile, err := BuildJobProfile(&types.JobRecord{
		JobRequirements: []string{"Bachelor's degree in Computer Science required, 3+ years experience"},
	})
	require.NoError(t, err)

	assert.Equal(t, types.EducationBachelor, profile.RequiredEducation)
	assert.Equal(t, 3, profile.RequiredYears)
}

func TestBuild_EmptyRecord(t *testing.T) {
	profile, err := BuildJobProfile(&types.JobRecord{})
	require.NoError(t, err)

	require.NotNil(t, profile.RequiredSkills)
	assert.Empty(t, profile.RequiredSkills)
	assert.Equal(t, 0, profile.RequiredYears)
	assert.Equal(t, types.EducationNone, profile.RequiredEducation)
	require.NotNil(t, profile.CategorizedRequirements)
	assert.Empty(t, profile.CategorizedRequirements)
}

func TestBuild_NilRecord(t *testing.T) {
	_, err := BuildJobProfile(nil)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "record", validationErr.Field)
}

func TestBuild_WordModeDetector(t *testing.T) {
	record := &types.JobRecord{Description: "JavaScript and PostgreSQL"}

	profile, err := NewProfileBuilder(WithDetector(skills.NewDetector(skills.MatchWord))).Build(record)
	require.NoError(t, err)

	assert.Equal(t, []string{"javascript", "postgresql"}, profile.RequiredSkills)
}

func TestBuild_MaxYearsAcrossLines(t *testing.T) {
	profile, err := NewProfileBuilder(WithClock(fixedClock)).Build(&types.JobRecord{
		JobRequirements: []string{"2 years of Go", "Senior engineer", "Working with us since 2016"},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, profile.RequiredYears)
}

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"Python", []string{"python"}},
		{"Python|React , Node.js;  Machine  Learning", []string{"python", "react", "node.js", "machine learning"}},
		{"a||b,,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSkills(tt.in))
		})
	}
}

func TestParseJobRecord(t *testing.T) {
	data := []byte(`{
		"job_title": "Data Engineer",
		"company": "Initech",
		"job_skills": "python, spark",
		"job_requirements": ["Master's degree", "5+ years"],
		"description": "Pipelines."
	}`)

	record, err := ParseJobRecord(data)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", record.JobTitle)
	assert.Equal(t, "Initech", record.Company)
	assert.Equal(t, "python, spark", record.JobSkills)
	assert.Equal(t, []string{"Master's degree", "5+ years"}, record.JobRequirements)
	assert.Equal(t, "Pipelines.", record.Description)
}

func TestParseJobRecord_SchemaViolation(t *testing.T) {
	_, err := ParseJobRecord([]byte(`{"job_requirements": "5 years"}`))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))

	var schemaErr *schemas.ValidationError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestParseJobRecord_Malformed(t *testing.T) {
	_, err := ParseJobRecord([]byte(`{not json`))
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Message: "failed", Cause: errors.New("boom")}
	assert.Equal(t, "parse error: failed: boom", err.Error())
	assert.Equal(t, "boom", errors.Unwrap(err).Error())

	assert.Equal(t, "parse error: failed", (&ParseError{Message: "failed"}).Error())
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error in record: missing", (&ValidationError{Field: "record", Message: "missing"}).Error())
	assert.Equal(t, "validation error: missing", (&ValidationError{Message: "missing"}).Error())
}

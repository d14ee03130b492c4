package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/skills"
)

func TestExtract_SampleResume(t *testing.T) {
	ev := NewExtractor(nil).Extract("john.txt", sampleResume)

	assert.Equal(t, "john.txt", ev.ID)
	assert.Equal(t, sampleResume, ev.FullText)
	assert.Contains(t, ev.Skills, "python")
	assert.Contains(t, ev.Skills, "docker")
	assert.Contains(t, ev.Skills, "microservices")
	assert.Contains(t, ev.EducationText, "State University")
	assert.Contains(t, ev.ExperienceText, "Software Engineer at Acme")
	assert.Equal(t, "john@example.com", ev.Contact.Email)
	assert.Equal(t, "(555) 123-4567", ev.Contact.Phone)
}

func TestExtract_EmptyText(t *testing.T) {
	ev := NewExtractor(nil).Extract("empty.txt", "")

	require.NotNil(t, ev.Skills)
	assert.Empty(t, ev.Skills)
	assert.Empty(t, ev.EducationText)
	assert.Empty(t, ev.ExperienceText)
	assert.Empty(t, ev.Contact.Email)
	assert.Empty(t, ev.Contact.Phone)
}

func TestExtract_UsesDetectorMode(t *testing.T) {
	text := "JavaScript developer"

	substring := NewExtractor(skills.NewDetector(skills.MatchSubstring)).Extract("a", text)
	word := NewExtractor(skills.NewDetector(skills.MatchWord)).Extract("a", text)

	assert.Contains(t, substring.Skills, "java")
	assert.NotContains(t, word.Skills, "java")
	assert.Contains(t, word.Skills, "javascript")
}

func TestExtractContact(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		text      string
		wantEmail string
		wantPhone string
	}{
		{"email and phone", "r.txt", "Reach me: a.b-c@mail.example.org or 555.123.4567", "a.b-c@mail.example.org", "555.123.4567"},
		{"international phone", "r.txt", "+1 555 123 4567", "", "+1 555 123 4567"},
		{"first email wins", "r.txt", "x@a.io y@b.io", "x@a.io", ""},
		{"falls back to file name", "jane.doe@mail.com.txt", "no contact here", "jane.doe@mail.com", ""},
		{"text email beats file name", "jane@mail.com.md", "me@site.dev", "me@site.dev", ""},
		{"nothing", "resume.txt", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ExtractContact(tt.id, tt.text)
			assert.Equal(t, tt.wantEmail, c.Email)
			assert.Equal(t, tt.wantPhone, c.Phone)
		})
	}
}

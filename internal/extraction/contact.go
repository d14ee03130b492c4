package extraction

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]??)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ExtractEmail returns the first email-shaped string in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped string in text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// ExtractContact pulls email and phone from text. When the text has no email,
// the resume id (usually a file name) is searched instead.
func ExtractContact(id, text string) types.Contact {
	email := ExtractEmail(text)
	if email == "" {
		email = ExtractEmail(trimResumeExt(id))
	}
	return types.Contact{
		Email: email,
		Phone: ExtractPhone(text),
	}
}

func trimResumeExt(id string) string {
	switch strings.ToLower(filepath.Ext(id)) {
	case ".txt", ".md":
		return strings.TrimSuffix(id, filepath.Ext(id))
	}
	return id
}

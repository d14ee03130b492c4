package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/types"
)

// resumeExtensions are the file types read as resumes
var resumeExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// Document is one resume read from disk
type Document struct {
	ID   string // File name, used as the resume ID
	Path string
	Text string // Cleaned text
}

// Skipped is a resume file that could not be read
type Skipped struct {
	Path string
	Err  error
}

func (s Skipped) String() string {
	return fmt.Sprintf("%s: %v", filepath.Base(s.Path), s.Err)
}

// LoadResumes reads every .txt and .md file in dir, in lexical name order.
// Unreadable files are reported as skipped; only an unreadable dir is an error.
func LoadResumes(dir string) ([]Document, []Skipped, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !resumeExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	var skipped []Skipped
	for _, name := range names {
		path := filepath.Join(dir, name)
		doc, err := LoadResume(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		docs = append(docs, *doc)
	}
	return docs, skipped, nil
}

// LoadResume reads and cleans a single resume file
func LoadResume(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &Document{
		ID:   filepath.Base(path),
		Path: path,
		Text: CleanText(string(content)),
	}, nil
}

// LoadJobRecord reads, validates and decodes a job record file.
// An HTML description is reduced to its text.
func LoadJobRecord(path string) (*types.JobRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job record: %w", err)
	}

	record, err := parsing.ParseJobRecord(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job record %s: %w", path, err)
	}

	if LooksLikeHTML(record.Description) {
		text, err := StripHTML(record.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to strip job description markup: %w", err)
		}
		record.Description = text
	}
	return record, nil
}

// WriteJSON writes v as indented JSON, creating parent directories as needed
func WriteJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

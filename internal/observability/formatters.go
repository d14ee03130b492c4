// Package observability provides logging and formatted console output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for humans
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to limit runes, ending in "..." when cut
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// PrintJobProfile outputs a human-readable summary of the parsed job profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:    %s\n", profile.Company))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Experience: %d+ years\n", profile.RequiredYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.RequiredEducation))
	sb.WriteString("\n")

	if len(profile.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Required Skills (%d):\n", len(profile.RequiredSkills)))
		count := min(len(profile.RequiredSkills), maxItemsToShow*2)
		sb.WriteString("  " + strings.Join(profile.RequiredSkills[:count], ", ") + "\n")
		if len(profile.RequiredSkills) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.RequiredSkills)-count))
		}
		sb.WriteString("\n")
	}

	for _, cat := range types.Categories() {
		lines := profile.CategorizedRequirements[cat]
		if len(lines) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", cat, len(lines)))
		count := min(len(lines), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", lines[i]))
		}
		if len(lines) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lines)-3))
		}
	}

	p.printBox("PARSED JOB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the ranked table of resumes: rank, resume, score and email.
func (p *Printer) PrintRanking(result *types.RankingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	header := result.JobTitle
	if result.Company != "" {
		header += " @ " + result.Company
	}
	sb.WriteString(fmt.Sprintf("%s (backend: %s)\n\n", header, result.Backend))

	if len(result.Records) == 0 {
		sb.WriteString("No resumes ranked")
	} else {
		sb.WriteString(fmt.Sprintf("%-4s %-28s %7s  %s\n", "#", "RESUME", "SCORE", "EMAIL"))
		for i, r := range result.Records {
			score := fmt.Sprintf("%.2f%%", r.OverallScore)
			if r.Calibrated {
				score += "*"
			}
			sb.WriteString(fmt.Sprintf("%-4d %-28s %7s  %s\n", i+1, truncate(r.ResumeID, 28), score, r.Email))
		}
	}

	if len(result.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped %d unreadable files:\n", len(result.Skipped)))
		for _, s := range result.Skipped {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", s))
		}
	}

	p.printBox("RESUME RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the per-axis breakdown of one match and its recommendation tier.
func (p *Printer) PrintMatchReport(record *types.MatchRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.2f%% (%s)\n", record.OverallScore, record.Recommendation()))
	if record.Calibrated {
		sb.WriteString(fmt.Sprintf("Computed: %.2f%% (calibrated)\n", record.ComputedScore))
	}
	if record.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.Email))
	}
	sb.WriteString("\n")

	for _, a := range record.Axes {
		sb.WriteString(fmt.Sprintf("%-20s %.2f × %.2f\n", a.Axis, a.Score, a.Weight))
		if a.Detail != nil {
			sb.WriteString(fmt.Sprintf("  %s\n", a.Detail.Summary()))
		}
	}

	if skills := record.Axis(types.AxisSkills); skills != nil {
		if d, ok := skills.Detail.(*types.SkillsDetail); ok && len(d.MissingSkills) > 0 {
			count := min(len(d.MissingSkills), maxItemsToShow)
			sb.WriteString("\nMissing Skills:\n")
			for _, s := range d.MissingSkills[:count] {
				sb.WriteString(fmt.Sprintf("  • %s\n", s))
			}
			if len(d.MissingSkills) > count {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(d.MissingSkills)-count))
			}
		}
	}

	p.printBox("MATCH REPORT: "+record.ResumeID, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvidence outputs what was extracted from one resume.
func (p *Printer) PrintEvidence(ev *types.ResumeEvidence) {
	if ev == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Email:  %s\n", ev.Contact.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", ev.Contact.Phone))
	sb.WriteString(fmt.Sprintf("Skills: %d found\n", len(ev.Skills)))
	if len(ev.Skills) > 0 {
		sb.WriteString("  " + strings.Join(ev.Skills, ", ") + "\n")
	}
	sb.WriteString(fmt.Sprintf("Education section:  %d lines\n", countLines(ev.EducationText)))
	sb.WriteString(fmt.Sprintf("Experience section: %d lines", countLines(ev.ExperienceText)))

	p.printBox("RESUME EVIDENCE: "+ev.ID, sb.String())
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

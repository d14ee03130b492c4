package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/skills"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills, sections and contact details from one resume",
	Long:  "Read a plain-text resume and write the ResumeEvidence the ranker scores: detected skills, education and experience sections, and contact details.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractSkillMatch string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (required)")
	extractCmd.Flags().StringVar(&extractSkillMatch, "skill-match", "", "Skill detection: substring or word")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print the extracted evidence")

	_ = extractCmd.MarkFlagRequired("in")
	_ = extractCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	mode, err := skills.ParseMatchMode(extractSkillMatch)
	if err != nil {
		return err
	}

	doc, err := ingestion.LoadResume(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	ev := extraction.NewExtractor(skills.NewDetector(mode)).Extract(doc.ID, doc.Text)
	if err := ingestion.WriteJSON(extractOutputFile, ev); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if extractVerbose {
		observability.NewPrinter(out).PrintEvidence(&ev)
	}
	_, _ = fmt.Fprintf(out, "Extracted %d skills from %s\n", len(ev.Skills), doc.ID)
	_, _ = fmt.Fprintf(out, "Output: %s\n", extractOutputFile)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/skills"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job record into structured JobProfile JSON",
	Long:  "Validate a job record JSON file against the job record schema and derive the JobProfile used for ranking: required skills, years, education and categorized requirements.",
	RunE:  runParseJob,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseSkillMatch string
	parseVerbose    bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to job record JSON (required)")
	parseJobCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (required)")
	parseJobCmd.Flags().StringVar(&parseSkillMatch, "skill-match", "", "Skill detection: substring or word")
	parseJobCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print the parsed profile")

	_ = parseJobCmd.MarkFlagRequired("in")
	_ = parseJobCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	mode, err := skills.ParseMatchMode(parseSkillMatch)
	if err != nil {
		return err
	}

	record, err := ingestion.LoadJobRecord(parseInputFile)
	if err != nil {
		return err
	}

	profile, err := parsing.NewProfileBuilder(parsing.WithDetector(skills.NewDetector(mode))).Build(record)
	if err != nil {
		return fmt.Errorf("failed to parse job profile: %w", err)
	}

	if err := ingestion.WriteJSON(parseOutputFile, profile); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if parseVerbose {
		observability.NewPrinter(out).PrintJobProfile(profile)
	}
	_, _ = fmt.Fprintf(out, "Successfully parsed job profile\n")
	_, _ = fmt.Fprintf(out, "Output: %s\n", parseOutputFile)
	return nil
}

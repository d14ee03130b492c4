// Package main provides the resume_ranker command line tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "resume_ranker",
	Short:        "Rank resumes against a job description",
	Long:         "resume_ranker scores a directory of plain-text resumes against a structured job record along five axes (skills, experience, education, semantic similarity, keyword relevance) and writes a ranked result.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// An interrupt cancels in-flight embedding calls
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

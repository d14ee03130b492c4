package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a directory of resumes against a job record",
	Long: `Scores every .txt and .md resume in --resumes against the job record in --job and writes the ranked RankingResult JSON to --out.

Configuration can be loaded from a JSON or YAML file using --config and RESUME_RANKER_* environment variables. Command-line flags override both.`,
	RunE: runRank,
}

var (
	rankConfigPath  string
	rankJob         string
	rankResumes     string
	rankOut         string
	rankCalibration string
	rankAPIKey      string
	rankProvider    string
	rankModel       string
	rankRedisAddr   string
	rankConcurrency int
	rankSkillMatch  string
	rankVerbose     bool
	rankJSONLogs    bool
)

func init() {
	// Config file flag (processed first)
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config file (values can be overridden by other flags)")

	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job record JSON")
	rankCmd.Flags().StringVarP(&rankResumes, "resumes", "r", "", "Directory of .txt/.md resumes")
	rankCmd.Flags().StringVarP(&rankOut, "out", "o", "", "Path to output JSON file (default ranking.json)")
	rankCmd.Flags().StringVar(&rankCalibration, "calibration", "", "Optional JSON table of resume ID to reference score")
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var; lexical similarity without one)")
	rankCmd.Flags().StringVar(&rankProvider, "provider", "", "Embedding SDK: gemini or genai")
	rankCmd.Flags().StringVar(&rankModel, "embedding-model", "", "Embedding model name")
	rankCmd.Flags().StringVar(&rankRedisAddr, "redis-addr", "", "Redis address for a shared vector cache (optional)")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Resumes scored at once (0 uses every CPU)")
	rankCmd.Flags().StringVar(&rankSkillMatch, "skill-match", "", "Skill detection: substring or word")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print debug logs and per-resume reports")
	rankCmd.Flags().BoolVar(&rankJSONLogs, "json-logs", false, "Write logs as JSON")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file and environment
	cfg, err := config.LoadConfig(rankConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Step 2: Apply CLI overrides (only flags explicitly set)
	flags := cmd.Flags()
	if flags.Changed("job") {
		cfg.Job = rankJob
	}
	if flags.Changed("resumes") {
		cfg.Resumes = rankResumes
	}
	if flags.Changed("out") {
		cfg.Out = rankOut
	}
	if flags.Changed("calibration") {
		cfg.Calibration = rankCalibration
	}
	if flags.Changed("api-key") {
		cfg.APIKey = rankAPIKey
	}
	if flags.Changed("provider") {
		cfg.Provider = rankProvider
	}
	if flags.Changed("embedding-model") {
		cfg.EmbeddingModel = rankModel
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = rankRedisAddr
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = rankConcurrency
	}
	if flags.Changed("skill-match") {
		cfg.SkillMatch = rankSkillMatch
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rankVerbose
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = rankJSONLogs
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Step 3: Validate merged config
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in config)")
	}
	if cfg.Resumes == "" {
		return fmt.Errorf("--resumes is required (or set 'resumes' in config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	weights := cfg.Weights
	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		JobPath:         cfg.Job,
		ResumesDir:      cfg.Resumes,
		CalibrationPath: cfg.Calibration,
		APIKey:          cfg.APIKey,
		Provider:        cfg.Provider,
		EmbeddingModel:  cfg.EmbeddingModel,
		RedisAddr:       cfg.RedisAddr,
		CacheTTL:        cfg.CacheTTL,
		Concurrency:     cfg.Concurrency,
		SkillMatch:      cfg.SkillMatch,
		Weights:         &weights,
		Logger:          logger,
		OnProgress: func(e pipeline.ProgressEvent) {
			if cfg.Verbose && e.Step == pipeline.StepJobProfile {
				if profile, ok := e.Content.(*types.JobProfile); ok {
					printer.PrintJobProfile(profile)
				}
			}
		},
	})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	// Step 4: Validate against schema before writing
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := schemas.ValidateRankingResult(data); err != nil {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	}
	if err := ingestion.WriteJSON(cfg.Out, result); err != nil {
		return err
	}
	logger.Info("wrote ranking", zap.String("path", cfg.Out), zap.String("run_id", result.RunID.String()))

	printer.PrintRanking(result)
	if cfg.Verbose {
		for i := range result.Records {
			printer.PrintMatchReport(&result.Records[i])
		}
	}

	_, _ = fmt.Fprintf(out, "Output: %s\n", cfg.Out)
	return nil
}

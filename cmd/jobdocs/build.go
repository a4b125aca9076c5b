package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobdocs/internal/build"
	"github.com/jonathan/jobdocs/internal/classify"
	"github.com/jonathan/jobdocs/internal/config"
	"github.com/jonathan/jobdocs/internal/logger"
	"github.com/jonathan/jobdocs/internal/observability"
	"github.com/jonathan/jobdocs/internal/oracle"
	"github.com/jonathan/jobdocs/internal/registry"
	"github.com/jonathan/jobdocs/internal/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a customized CV and cover letter for a job posting",
	Long: "Classify the posting in the given text file, resolve the winning " +
		"category's templates, and write customized documents to the output directory.",
	RunE: runBuild,
}

var (
	buildJobFile     string
	buildJobURL      string
	buildCompany     string
	buildTitle       string
	buildTemplateDir string
	buildOutDir      string
	buildConfigFile  string
	buildAPIKey      string
	buildVerbose     bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildJobFile, "job", "j", "", "Path to the job posting text file (required)")
	buildCmd.Flags().StringVar(&buildJobURL, "url", "", "Source URL of the posting (metadata only)")
	buildCmd.Flags().StringVar(&buildCompany, "company", "", "Company name (overrides extraction)")
	buildCmd.Flags().StringVar(&buildTitle, "title", "", "Job title (overrides extraction)")
	buildCmd.Flags().StringVarP(&buildTemplateDir, "templates", "t", "", "Template directory root")
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", ".", "Output directory")
	buildCmd.Flags().StringVarP(&buildConfigFile, "config", "c", "", "Path to JSON config file")
	buildCmd.Flags().StringVar(&buildAPIKey, "api-key", "", "Oracle API key (overrides GEMINI_API_KEY)")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print classification details")

	_ = buildCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(buildConfigFile)
	if err != nil {
		return err
	}
	if buildAPIKey != "" {
		cfg.OracleAPIKey = buildAPIKey
	}
	if buildTemplateDir != "" {
		cfg.TemplateDir = buildTemplateDir
	}
	if cfg.TemplateDir == "" {
		return fmt.Errorf("template directory is required (use --templates or the config file)")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	jobText, err := os.ReadFile(buildJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	ctx := context.Background()

	orchestrator, cleanup, err := newEngine(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := orchestrator.Build(ctx, types.BuildRequest{
		JobText:       string(jobText),
		SourceURL:     buildJobURL,
		ManualCompany: buildCompany,
		ManualTitle:   buildTitle,
	})
	if err != nil {
		return err
	}

	if err := writeDocuments(buildOutDir, result); err != nil {
		return err
	}

	if buildVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintClassification(result.Classification)
		printer.PrintBuildResult(result)
	}

	if result.NeedsManualInput {
		fmt.Fprintln(os.Stderr, "Note: company or job title could not be determined; search the output for [[ sentinels and fill them in.")
	}

	return nil
}

// newEngine assembles the engine from configuration. The returned cleanup
// closes the oracle client.
func newEngine(ctx context.Context, cfg *config.Config, log *zap.Logger) (*build.Orchestrator, func(), error) {
	categories, err := registry.NewRegistry(registry.DefaultCategories())
	if err != nil {
		return nil, nil, err
	}

	templates, err := registry.NewTemplateRegistry(categories, registry.FSSource{Root: cfg.TemplateDir}, log)
	if err != nil {
		// Missing default templates are a startup configuration error.
		return nil, nil, err
	}

	adapter, err := oracle.NewAdapter(ctx, oracle.Config{
		APIKey:  cfg.OracleAPIKey,
		Model:   cfg.OracleModel,
		Timeout: cfg.OracleTimeout(),
	}, categories, log)
	if err != nil {
		return nil, nil, err
	}

	classifier := classify.NewOrchestrator(adapter, classify.NewKeyword(categories), categories, log)
	orchestrator := build.NewOrchestrator(classifier, categories, templates, log)

	cleanup := func() { _ = adapter.Close() }
	return orchestrator, cleanup, nil
}

// writeDocuments writes both generated documents to the output directory.
func writeDocuments(outDir string, result *types.BuildResult) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cvPath := filepath.Join(outDir, "cv.tex")
	if err := os.WriteFile(cvPath, []byte(result.CV), 0o644); err != nil {
		return fmt.Errorf("failed to write CV: %w", err)
	}

	letterPath := filepath.Join(outDir, "cover_letter.tex")
	if err := os.WriteFile(letterPath, []byte(result.CoverLetter), 0o644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}

	return nil
}

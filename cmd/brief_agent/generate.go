package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshwakefield/jd-brief/internal/config"
	"github.com/joshwakefield/jd-brief/internal/generator"
	"github.com/joshwakefield/jd-brief/internal/ledger"
	"github.com/joshwakefield/jd-brief/internal/llm"
	"github.com/joshwakefield/jd-brief/internal/observability"
	"github.com/joshwakefield/jd-brief/internal/rendering"
	"github.com/joshwakefield/jd-brief/internal/storage"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a one-page brief PDF from a job description file",
	Long:  "Generate an evidence-grounded brief from a job description text file, render it to PDF, and optionally upload it for sharing.",
	RunE:  runGenerate,
}

var (
	genJDPath     string
	genOutputPath string
	genRole       string
	genCompany    string
	genAPIKey     string
	genBucket     string
	genConfigPath string
	genVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&genJDPath, "jd", "i", "", "Path to job description text file (required)")
	generateCmd.Flags().StringVarP(&genOutputPath, "out", "o", "", "Path for the rendered PDF (default: whyjosh-<company>-<role>-<date>.pdf)")
	generateCmd.Flags().StringVar(&genRole, "role", "", "Role title to echo into the brief")
	generateCmd.Flags().StringVar(&genCompany, "company", "", "Company name to echo into the brief")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&genBucket, "bucket", "", "GCS bucket; when set, the PDF is also uploaded and a share link printed")
	generateCmd.Flags().StringVarP(&genConfigPath, "config", "c", "", "Path to JSON config file")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		JD:      genJDPath,
		Output:  genOutputPath,
		Role:    genRole,
		Company: genCompany,
		APIKey:  genAPIKey,
		Bucket:  genBucket,
		Verbose: genVerbose,
	}

	// Config file values act as defaults; flags win
	if genConfigPath != "" {
		fileCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.JD == "" {
		return fmt.Errorf("a job description file is required (use --jd)")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	jdText, err := os.ReadFile(cfg.JD)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	ctx := context.Background()

	led, err := ledger.Load()
	if err != nil {
		return fmt.Errorf("failed to load context pack: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	printer := observability.NewPrinter(os.Stdout)

	brief, err := generator.New(client, led).Generate(ctx, string(jdText), cfg.Role, cfg.Company)
	if err != nil {
		var sv *generator.SchemaViolationError
		if cfg.Verbose && errors.As(err, &sv) {
			printer.PrintViolations(sv.Violations)
		}
		return fmt.Errorf("failed to generate brief: %w", err)
	}

	if cfg.Verbose {
		printer.PrintBrief(brief)
		printer.PrintSkillsMatrix(brief)
	}

	renderer := rendering.NewChromeRenderer()
	renderer.Verbose = cfg.Verbose

	pdf, err := renderer.Render(ctx, brief)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	now := time.Now().UTC()
	outputPath := cfg.Output
	if outputPath == "" {
		outputPath = storage.Filename(brief.JDFields.Company, brief.JDFields.Role, now)
	}

	if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Printf("Brief written to %s (%d bytes)\n", outputPath, len(pdf))

	if cfg.Bucket != "" {
		store, err := storage.NewGCSStore(ctx, cfg.Bucket)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		defer store.Close()

		key := storage.NewObjectKey(brief.JDFields.Company, now)
		record, err := store.Upload(ctx, key, pdf)
		if err != nil {
			return fmt.Errorf("failed to upload brief: %w", err)
		}

		shareURL, err := store.SignedURL(key, 0)
		if err != nil {
			return fmt.Errorf("failed to create share link: %w", err)
		}

		fmt.Printf("Share link (valid until %s):\n%s\n", record.ExpiresAt.Format(time.RFC3339), shareURL)
	}

	return nil
}

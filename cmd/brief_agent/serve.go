package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshwakefield/jd-brief/internal/generator"
	"github.com/joshwakefield/jd-brief/internal/ledger"
	"github.com/joshwakefield/jd-brief/internal/llm"
	"github.com/joshwakefield/jd-brief/internal/rendering"
	"github.com/joshwakefield/jd-brief/internal/server"
	"github.com/joshwakefield/jd-brief/internal/storage"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating, fetching and deleting briefs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := servePort
	if !cmd.Flags().Changed("port") {
		if env := os.Getenv("PORT"); env != "" {
			parsed, err := strconv.Atoi(env)
			if err != nil {
				return fmt.Errorf("invalid PORT value %q: %w", env, err)
			}
			port = parsed
		}
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		return fmt.Errorf("GCS_BUCKET environment variable is required")
	}

	botToken := os.Getenv("BRIEF_BOT_TOKEN")
	if botToken == "" {
		return fmt.Errorf("BRIEF_BOT_TOKEN environment variable is required")
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

	store, err := storage.NewGCSStore(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	cfg := server.Config{
		Port:     port,
		BotToken: botToken,
	}

	srv, err := server.New(cfg, generator.New(client, led), rendering.NewChromeRenderer(), store)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

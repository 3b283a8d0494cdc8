// Package main provides the entry point for the JD Brief HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brief_agent",
	Short: "JD Brief HTTP API Server",
	Long:  "JD Brief turns a pasted job description into an evidence-grounded, schema-validated one-page PDF brief with a time-limited share link.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the visibility insights service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insights",
	Short: "Visibility Insights dashboard server",
	Long:  "Visibility Insights generates customer LLM-visibility analyses with ranked actionable briefs, served through a password-gated dashboard API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/visiblehq/visibility-insights/internal/analysis"
	"github.com/visiblehq/visibility-insights/internal/config"
	"github.com/visiblehq/visibility-insights/internal/db"
	"github.com/visiblehq/visibility-insights/internal/export"
	"github.com/visiblehq/visibility-insights/internal/llm"
	"github.com/visiblehq/visibility-insights/internal/types"
)

var analyzeRequestPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis from a JSON request file",
	Long:  `Run the full analysis pipeline once, outside the server, and print the markdown report. The request file uses the same shape as POST /analyses.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRequestPath, "request", "", "Path to the analysis request JSON file (required)")
	_ = analyzeCmd.MarkFlagRequired("request")
	rootCmd.AddCommand(analyzeCmd)
}

// operatorAuthorizer authenticates every call: the CLI runs on the operator's
// own credentials, not behind the dashboard gate.
type operatorAuthorizer struct{}

func (operatorAuthorizer) Authenticated(context.Context) bool { return true }

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(analyzeRequestPath)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}
	var req types.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := database.Bootstrap(ctx); err != nil {
		return err
	}

	gateway, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return err
	}
	defer gateway.Close() //nolint:errcheck

	orch := analysis.New(gateway, database, operatorAuthorizer{}, nil)
	result, err := orch.Run(ctx, &req)
	if err != nil {
		return err
	}

	a, err := database.GetAnalysis(ctx, result.AnalysisID)
	if err != nil {
		return err
	}
	briefs, err := database.GetBriefs(ctx, result.AnalysisID)
	if err != nil {
		return err
	}

	fmt.Println(export.Markdown(a, briefs))
	fmt.Fprintln(os.Stderr, result.Summary)
	return nil
}

// Package export renders analyses and their briefs as markdown reports and
// HTML for the dashboard.
package export

import (
	"fmt"
	"strings"

	"github.com/visiblehq/visibility-insights/internal/types"
)

// Markdown renders a full analysis report: header, technical signals,
// narrative, and one section per brief in stored order (selected briefs come
// first when the store ordered them that way).
func Markdown(a *types.Analysis, briefs []types.Brief) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Visibility Analysis: %s\n\n", a.CustomerName))
	sb.WriteString(fmt.Sprintf("**Visibility score:** %d/100  \n", a.VisibilityScore))
	if len(a.Competitors) > 0 {
		sb.WriteString(fmt.Sprintf("**Competitors:** %s  \n", strings.Join(a.Competitors, ", ")))
	}
	if len(a.Topics) > 0 {
		sb.WriteString(fmt.Sprintf("**Topics:** %s  \n", strings.Join(a.Topics, ", ")))
	}
	sb.WriteString(fmt.Sprintf("**Status:** %s  \n", a.Status))
	sb.WriteString(fmt.Sprintf("**Created:** %s\n\n", a.CreatedAt.Format("2006-01-02 15:04")))

	sb.WriteString("## Technical Signals\n\n")
	sb.WriteString("| Signal | Value |\n|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Crawler accessible | %s |\n", yesNo(a.TechnicalData.CrawlerAccessible)))
	sb.WriteString(fmt.Sprintf("| Structured data | %s |\n", yesNo(a.TechnicalData.StructuredDataPresent)))
	sb.WriteString(fmt.Sprintf("| Response latency | %s |\n", orDash(a.TechnicalData.ResponseLatency)))
	sb.WriteString(fmt.Sprintf("| Wikipedia presence | %s |\n", yesNo(a.TechnicalData.WikipediaPresent)))
	sb.WriteString(fmt.Sprintf("| News sentiment | %s |\n", orDash(a.TechnicalData.NewsSentiment)))
	sb.WriteString(fmt.Sprintf("| Reviews present | %s |\n", yesNo(a.TechnicalData.ReviewsPresent)))
	sb.WriteString(fmt.Sprintf("| Social media active | %s |\n\n", yesNo(a.TechnicalData.SocialMediaActive)))

	if a.Narrative != "" {
		sb.WriteString("## Competitive Insight\n\n")
		sb.WriteString(strings.TrimSpace(a.Narrative))
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("## Briefs (%d)\n\n", len(briefs)))
	for i, b := range briefs {
		writeBrief(&sb, i+1, b)
	}

	return sb.String()
}

func writeBrief(sb *strings.Builder, n int, b types.Brief) {
	marker := ""
	if b.Selected {
		marker = " ★"
	}
	sb.WriteString(fmt.Sprintf("### %d. %s%s\n\n", n, b.Title, marker))
	sb.WriteString(fmt.Sprintf("*%s* — effort %d/10, impact %d/10, score %d\n\n",
		b.Category, b.Effort, b.Impact, b.CompositeScore))

	if b.Description != "" {
		sb.WriteString(b.Description)
		sb.WriteString("\n\n")
	}
	if b.WhyItMatters != "" {
		sb.WriteString(fmt.Sprintf("**Why it matters:** %s\n\n", b.WhyItMatters))
	}
	if len(b.ImplementationSteps) > 0 {
		sb.WriteString("**Implementation steps:**\n\n")
		for i, step := range b.ImplementationSteps {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
		sb.WriteString("\n")
	}
	if b.Timeline != "" {
		sb.WriteString(fmt.Sprintf("**Timeline:** %s\n\n", b.Timeline))
	}
	if len(b.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("**Keywords:** %s\n\n", strings.Join(b.Keywords, ", ")))
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

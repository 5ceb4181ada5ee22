// Package prompt builds the text-generation prompts for the analysis pipeline.
//
// Templates use square-bracket placeholder tokens ([CUSTOMER_NAME],
// [COMPETITORS], [VISIBILITY_SCORE], [TOPICS]). Unrecognized bracketed tokens
// pass through unchanged. The composed string is handed to the gateway
// byte-for-byte; no escaping is performed.
package prompt

import (
	"fmt"
	"strings"

	"github.com/visiblehq/visibility-insights/internal/types"
)

// Recognized placeholder tokens.
const (
	TokenCustomerName    = "[CUSTOMER_NAME]"
	TokenCompetitors     = "[COMPETITORS]"
	TokenVisibilityScore = "[VISIBILITY_SCORE]"
	TokenTopics          = "[TOPICS]"
)

// Context holds the values substituted into a template.
type Context struct {
	CustomerName      string
	Competitors       []string
	VisibilityScore   int
	Topics            []string
	TechnicalData     types.TechnicalData
	TechnicalFindings string
}

// Build substitutes every occurrence of each recognized token in template with
// the stringified context value and appends the technical-context block. An
// empty template uses DefaultTemplate.
func Build(template string, ctx Context) string {
	if template == "" {
		template = DefaultTemplate
	}

	result := template
	result = strings.ReplaceAll(result, TokenCustomerName, ctx.CustomerName)
	result = strings.ReplaceAll(result, TokenCompetitors, strings.Join(ctx.Competitors, ", "))
	result = strings.ReplaceAll(result, TokenVisibilityScore, fmt.Sprintf("%d", ctx.VisibilityScore))
	result = strings.ReplaceAll(result, TokenTopics, strings.Join(ctx.Topics, ", "))

	return result + technicalBlock(ctx.TechnicalData, ctx.TechnicalFindings)
}

// technicalBlock renders the structured technical signals as a fixed block,
// booleans as "Yes"/"No" and enumerated values verbatim. The free-text findings
// addendum is included only when non-blank.
func technicalBlock(data types.TechnicalData, findings string) string {
	var sb strings.Builder

	sb.WriteString("\n\nTechnical context:\n")
	sb.WriteString("- Crawler accessibility: " + yesNo(data.CrawlerAccessible) + "\n")
	sb.WriteString("- Structured data present: " + yesNo(data.StructuredDataPresent) + "\n")
	sb.WriteString("- Response latency: " + orUnknown(data.ResponseLatency) + "\n")
	sb.WriteString("- Wikipedia presence: " + yesNo(data.WikipediaPresent) + "\n")
	sb.WriteString("- News sentiment: " + orUnknown(data.NewsSentiment) + "\n")
	sb.WriteString("- Reviews present: " + yesNo(data.ReviewsPresent) + "\n")
	sb.WriteString("- Social media active: " + yesNo(data.SocialMediaActive) + "\n")

	if strings.TrimSpace(findings) != "" {
		sb.WriteString("\nTechnical findings:\n")
		sb.WriteString(findings)
		sb.WriteString("\n")
	}

	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

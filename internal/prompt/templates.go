package prompt

import (
	"fmt"
	"strings"
)

// DefaultTemplate is the prompt used for the shared competitive-analysis call
// when the caller supplies no custom template.
const DefaultTemplate = `You are an expert in generative engine optimization and brand visibility inside large language models.

Analyze the current LLM visibility of [CUSTOMER_NAME]. The customer currently scores [VISIBILITY_SCORE] out of 100 on our visibility index. Their main competitors are: [COMPETITORS].

The analysis should focus on the following topics: [TOPICS]. For each topic, assess how often and how favorably the customer is surfaced compared to its competitors when users ask assistants for recommendations.

List 20 reasons why the customer is or is not being recommended by large language models today. Ground every reason in the customer's observable web presence, content, and reputation signals rather than speculation.

Close with a short competitive-insight narrative (three to five paragraphs) that a marketing team could act on, written in plain business language.`

// briefTemplate is the per-category prompt requesting candidate briefs as a
// JSON array. The scoring step only requires effort and impact to be numeric.
const briefTemplate = `Based on the following competitive visibility analysis, propose actionable recommendations ("briefs") for the category %q.

Analysis:
%s

Return ONLY a JSON array. Each element must have this exact structure:
[
  {
    "title": "short actionable title",
    "description": "what to do",
    "why_it_matters": "why this improves LLM visibility",
    "implementation_steps": ["step 1", "step 2"],
    "effort": 5,
    "impact": 8,
    "keywords": ["keyword"],
    "timeline": "e.g. 2-4 weeks"
  }
]

"effort" and "impact" are integers from 1 (lowest) to 10 (highest). Return ONLY the JSON array, no markdown, no explanation.`

// ForBriefs builds the per-category brief-generation prompt from the shared
// competitive-analysis narrative.
func ForBriefs(category, narrative string) string {
	return fmt.Sprintf(briefTemplate, category, strings.TrimSpace(narrative))
}

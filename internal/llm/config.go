package llm

// Output bounds for the two call shapes of the analysis pipeline.
const (
	// NarrativeMaxTokens bounds the shared competitive-analysis call.
	NarrativeMaxTokens int32 = 4096
	// BriefsMaxTokens bounds each per-category brief-generation call.
	BriefsMaxTokens int32 = 8192
)

// Config holds the model configuration for the gateway.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:       "gemini-2.5-flash",
		Temperature: 0.1, // low temperature for consistent output
	}
}

package briefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCandidates_ParsesCleanArray(t *testing.T) {
	text := `[{"title":"Add schema markup","effort":2,"impact":9,"keywords":["schema.org"]}]`

	candidates, err := BracketExtractor{}.ExtractCandidates(text)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Add schema markup", candidates[0].Title)
	assert.Equal(t, 2, candidates[0].Effort)
	assert.Equal(t, 9, candidates[0].Impact)
	assert.Equal(t, []string{"schema.org"}, candidates[0].Keywords)
}

func TestExtractCandidates_FindsArrayInsideProse(t *testing.T) {
	text := "Here are my recommendations:\n\n" +
		`[{"title":"One","effort":1,"impact":5},{"title":"Two","effort":3,"impact":7}]` +
		"\n\nLet me know if you need more detail."

	candidates, err := BracketExtractor{}.ExtractCandidates(text)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "One", candidates[0].Title)
	assert.Equal(t, "Two", candidates[1].Title)
}

func TestExtractCandidates_NoBracketsYieldsEmptyNotError(t *testing.T) {
	candidates, err := BracketExtractor{}.ExtractCandidates("I cannot produce recommendations for this input.")

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestExtractCandidates_EmptyArrayLiteral(t *testing.T) {
	candidates, err := BracketExtractor{}.ExtractCandidates("[]")

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestExtractCandidates_InvalidJSONIsMalformedResponse(t *testing.T) {
	_, err := BracketExtractor{}.ExtractCandidates("[{title: unquoted}]")

	require.Error(t, err)
	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestExtractCandidates_MissingFieldsPassThroughAsDefaults(t *testing.T) {
	// Only effort and impact matter downstream; absent fields are zero values,
	// not a rejection.
	candidates, err := BracketExtractor{}.ExtractCandidates(`[{"effort":4,"impact":6}]`)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].Title)
	assert.Empty(t, candidates[0].ImplementationSteps)
	assert.Equal(t, 4, candidates[0].Effort)
	assert.Equal(t, 6, candidates[0].Impact)
}

func TestExtractCandidates_GreedyMatchSpansNestedArrays(t *testing.T) {
	// The match runs from the first '[' to the last ']' across the whole
	// string, so inner arrays stay part of the parsed payload.
	text := `[{"title":"A","implementation_steps":["x","y"],"effort":2,"impact":8}]`

	candidates, err := BracketExtractor{}.ExtractCandidates(text)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, []string{"x", "y"}, candidates[0].ImplementationSteps)
}

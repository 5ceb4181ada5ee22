package briefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(title string, score int) Scored {
	return Scored{Candidate: Candidate{Title: title}, CompositeScore: score}
}

func TestSelectTop_SortsDescendingAndTruncates(t *testing.T) {
	pool := []Scored{
		scored("low", 10),
		scored("high", 150),
		scored("mid", 90),
		scored("negative", -40),
	}

	selected := SelectTop(pool, 3)

	require.Len(t, selected, 3)
	assert.Equal(t, "high", selected[0].Title)
	assert.Equal(t, "mid", selected[1].Title)
	assert.Equal(t, "low", selected[2].Title)
}

func TestSelectTop_ReturnsMinOfCountAndPoolSize(t *testing.T) {
	pool := []Scored{scored("a", 50), scored("b", 40)}

	assert.Len(t, SelectTop(pool, 10), 2)
	assert.Len(t, SelectTop(pool, 1), 1)
	assert.Empty(t, SelectTop(nil, 5))
}

func TestSelectTop_TiesKeepEncounterOrder(t *testing.T) {
	// Two candidates with equal score in known insertion order must come out
	// in that order on every run.
	pool := []Scored{
		scored("first inserted", 80),
		scored("second inserted", 80),
		scored("third inserted", 80),
	}

	for range 10 {
		selected := SelectTop(pool, 3)
		require.Len(t, selected, 3)
		assert.Equal(t, "first inserted", selected[0].Title)
		assert.Equal(t, "second inserted", selected[1].Title)
		assert.Equal(t, "third inserted", selected[2].Title)
	}
}

func TestSelectTop_DoesNotMutateInput(t *testing.T) {
	pool := []Scored{scored("low", 1), scored("high", 99)}

	_ = SelectTop(pool, 2)

	assert.Equal(t, "low", pool[0].Title)
	assert.Equal(t, "high", pool[1].Title)
}

func TestSelectTop_NegativeScoresEligible(t *testing.T) {
	pool := []Scored{scored("negative", -80), scored("positive", 20)}

	selected := SelectTop(pool, 5)

	require.Len(t, selected, 2)
	assert.Equal(t, "negative", selected[1].Title)
}

func TestToBrief_CarriesFieldsAndPosition(t *testing.T) {
	s := Scored{
		Candidate: Candidate{
			Title:               "Publish benchmark data",
			Description:         "Release proprietary statistics",
			WhyItMatters:        "Models cite original data",
			ImplementationSteps: []string{"collect", "publish"},
			Effort:              3,
			Impact:              8,
			Keywords:            []string{"benchmarks"},
			Timeline:            "4-6 weeks",
		},
		Category:       "Data Authority and Proprietary Statistics",
		CompositeScore: 130,
	}

	b := s.ToBrief(2)

	assert.Equal(t, "Publish benchmark data", b.Title)
	assert.Equal(t, "Data Authority and Proprietary Statistics", b.Category)
	assert.Equal(t, 130, b.CompositeScore)
	assert.Equal(t, 2, b.Position)
	assert.Equal(t, []string{"collect", "publish"}, b.ImplementationSteps)
}

package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTechnicalData_ValidDocument(t *testing.T) {
	raw := []byte(`{
		"crawler_accessible": true,
		"structured_data_present": false,
		"response_latency": "fast",
		"news_sentiment": "positive",
		"reviews_present": true
	}`)

	data, err := ParseTechnicalData(raw)

	require.NoError(t, err)
	assert.True(t, data.CrawlerAccessible)
	assert.False(t, data.StructuredDataPresent)
	assert.Equal(t, "fast", data.ResponseLatency)
	assert.Equal(t, "positive", data.NewsSentiment)
	assert.True(t, data.ReviewsPresent)
	assert.False(t, data.SocialMediaActive, "missing fields decode as zero values")
}

func TestParseTechnicalData_EmptyObjectIsValid(t *testing.T) {
	data, err := ParseTechnicalData([]byte(`{}`))

	require.NoError(t, err)
	assert.False(t, data.CrawlerAccessible)
}

func TestParseTechnicalData_UnknownFieldRejected(t *testing.T) {
	_, err := ParseTechnicalData([]byte(`{"crawler_accessible": true, "surprise": 1}`))

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestParseTechnicalData_BadEnumValueRejected(t *testing.T) {
	_, err := ParseTechnicalData([]byte(`{"response_latency": "lightning"}`))

	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestParseTechnicalData_WrongTypeRejected(t *testing.T) {
	_, err := ParseTechnicalData([]byte(`{"crawler_accessible": "yes"}`))

	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestParseTechnicalData_MalformedJSON(t *testing.T) {
	_, err := ParseTechnicalData([]byte(`{not json`))

	require.Error(t, err)
	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve, "syntax errors are not schema validation errors")
}

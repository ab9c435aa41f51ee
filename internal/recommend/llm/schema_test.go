package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationSchema(t *testing.T) {
	schema := recommendationSchema()

	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []string{"results"}, schema["required"])

	results, ok := schema["properties"].(map[string]any)["results"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, results["minItems"])
	assert.Equal(t, 10, results["maxItems"])

	item, ok := results["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, item["additionalProperties"])
	assert.ElementsMatch(t,
		[]string{"rank", "title", "url", "relevanceScore", "datasetFormat", "description", "papers", "reasons"},
		item["required"])

	papers, ok := item["properties"].(map[string]any)["papers"].(map[string]any)
	require.True(t, ok)
	paper, ok := papers["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, paper["additionalProperties"])
	assert.ElementsMatch(t, []string{"title", "url", "year"}, paper["required"])
}

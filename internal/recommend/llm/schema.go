package llm

// schemaName labels the structured-output format in the OpenAI request.
const schemaName = "dataset_recommendations"

// recommendationSchema is the strict JSON schema the model's output must
// conform to: an object with a results array of 1-10 fully-populated
// candidates. additionalProperties is false at every level so the output
// parses directly into the domain types without stray fields.
func recommendationSchema() map[string]any {
	paperSchema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"url":   map[string]any{"type": "string"},
			"year":  map[string]any{"type": "integer"},
		},
		"required": []string{"title", "url", "year"},
	}

	itemSchema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"rank":           map[string]any{"type": "integer"},
			"title":          map[string]any{"type": "string"},
			"url":            map[string]any{"type": "string"},
			"relevanceScore": map[string]any{"type": "number"},
			"datasetFormat":  map[string]any{"type": "string"},
			"description":    map[string]any{"type": "string"},
			"papers": map[string]any{
				"type":  "array",
				"items": paperSchema,
			},
			"reasons": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{
			"rank",
			"title",
			"url",
			"relevanceScore",
			"datasetFormat",
			"description",
			"papers",
			"reasons",
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"results": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 10,
				"items":    itemSchema,
			},
		},
		"required": []string{"results"},
	}
}

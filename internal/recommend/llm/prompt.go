package llm

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the instruction block sent to the model. The raw
// user query goes in verbatim at the end; maxResults must already be
// clamped by the caller.
func BuildPrompt(query string, maxResults int) string {
	lines := []string{
		"You are a dataset recommendation assistant for researchers.",
		"Read the user's research theme and dataset requirements, then return candidate datasets ordered by relevance.",
		"Every candidate must include: the dataset title, its official URL, the data format, a description, and papers that used it.",
		"Include at least one supporting paper per candidate, preferably two to three when available.",
		"relevanceScore is 0-100; assign rank starting at 1 in order of descending relevance.",
		"Do not fabricate details you cannot verify; only return information you can confirm.",
		fmt.Sprintf("Return at most %d results.", maxResults),
		"",
		"User request:\n" + query,
	}
	return strings.Join(lines, "\n")
}

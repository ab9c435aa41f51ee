package domain

// DefaultTopK is used when the caller does not ask for a specific
// number of results.
const DefaultTopK = 5

// MaxTopK caps how many candidates a single response may carry.
const MaxTopK = 10

// RecommendationRequest is the body of POST /api/recommend.
type RecommendationRequest struct {
	Query string `json:"query"`
	TopK  *int   `json:"topK,omitempty"`
}

// PaperReference points at a published paper that used the dataset.
type PaperReference struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Year  int    `json:"year"`
}

// DatasetRecommendation is one ranked candidate dataset.
type DatasetRecommendation struct {
	Rank           int              `json:"rank"`
	Title          string           `json:"title"`
	URL            string           `json:"url"`
	RelevanceScore float64          `json:"relevanceScore"`
	DatasetFormat  string           `json:"datasetFormat"`
	Description    string           `json:"description"`
	Papers         []PaperReference `json:"papers"`
	Reasons        []string         `json:"reasons"`
}

// RecommendationResponse is the success body of POST /api/recommend.
// Results are sorted descending by relevance score with rank reassigned
// contiguously from 1.
type RecommendationResponse struct {
	Results []DatasetRecommendation `json:"results"`
}

// ClampTopK normalizes a requested result count to [1, MaxTopK].
// A nil or non-positive value falls back to DefaultTopK.
func ClampTopK(topK *int) int {
	k := DefaultTopK
	if topK != nil && *topK > 0 {
		k = *topK
	}
	if k > MaxTopK {
		k = MaxTopK
	}
	return k
}

package service

import (
	"context"
	"sort"
	"strings"

	"github.com/dataset-scout/backend/internal/recommend/domain"
)

// Recommender is the provider capability: turn a research query into a
// structured candidate list. The production implementation calls OpenAI;
// tests substitute a stub.
type Recommender interface {
	Recommend(ctx context.Context, query string, maxResults int) ([]domain.DatasetRecommendation, error)
}

// RecommendService validates requests, invokes the provider once, and
// normalizes the returned list. It holds no per-request state.
type RecommendService struct {
	recommender Recommender
}

// NewRecommendService creates the service. recommender may be nil when no
// API credential was configured; requests then fail with
// domain.ErrAPIKeyMissing before any external call.
func NewRecommendService(recommender Recommender) *RecommendService {
	return &RecommendService{recommender: recommender}
}

// Recommend handles one recommendation request end to end. Validation
// runs first, then the configuration check, so a bad request never
// reaches the provider.
func (s *RecommendService) Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, domain.ErrQueryRequired
	}
	if s.recommender == nil {
		return nil, domain.ErrAPIKeyMissing
	}

	maxResults := domain.ClampTopK(req.TopK)

	results, err := s.recommender.Recommend(ctx, req.Query, maxResults)
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}

	return &domain.RecommendationResponse{Results: normalize(results)}, nil
}

// normalize re-ranks the provider's list: stable sort descending by
// relevance score, then overwrite rank with the 1-based position. The
// provider's own rank values are not trusted.
func normalize(results []domain.DatasetRecommendation) []domain.DatasetRecommendation {
	sorted := make([]domain.DatasetRecommendation, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RelevanceScore > sorted[j].RelevanceScore
	})
	for i := range sorted {
		sorted[i].Rank = i + 1
	}
	return sorted
}

package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/dataset-scout/backend/internal/recommend/domain"
	"github.com/dataset-scout/backend/internal/recommend/service"
	"github.com/gin-gonic/gin"
)

// upstreamErrorMessage is the generic client-facing text for provider
// failures; the underlying cause travels in the detail field.
const upstreamErrorMessage = "Failed to fetch recommendations from OpenAI."

// maxBodyBytes bounds the request body size (1 MB).
const maxBodyBytes = 1 << 20

// Handler exposes the recommendation service over HTTP.
type Handler struct {
	svc *service.RecommendService
}

func NewHandler(svc *service.RecommendService) *Handler {
	return &Handler{svc: svc}
}

// Recommend handles POST /api/recommend.
func (h *Handler) Recommend(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req domain.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrQueryRequired.Error()})
		return
	}

	resp, err := h.svc.Recommend(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrQueryRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAPIKeyMissing):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.As(err, &upstream):
		log.Printf("[recommend] upstream failure: %v", upstream.Err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  upstreamErrorMessage,
			"detail": upstream.Detail(),
		})
	default:
		log.Printf("[recommend] unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamErrorMessage})
	}
}

// RegisterRoutes mounts the recommendation endpoint on the given router
// group (typically /api).
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/recommend", h.Recommend)
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/rest/response"
)

// RecommendationHandler serves community recommendations
type RecommendationHandler struct {
	Service domain.RecommendationUsecase
}

func NewRecommendationHandler(svc domain.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{
		Service: svc,
	}
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	recs, err := h.Service.Recommend(c.Request.Context(), viewerOf(c), c.Query("cursor"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewRecommendationsFromDomain(&recs))
}

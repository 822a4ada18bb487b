package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/rest/response"
)

// FeedHandler represent the httphandler for ranked post feeds
type FeedHandler struct {
	Service domain.FeedUsecase
}

func NewFeedHandler(svc domain.FeedUsecase) *FeedHandler {
	return &FeedHandler{
		Service: svc,
	}
}

// Fetch returns one page of the viewer's feed. Out of range page sizes are
// clamped by the service; a bad cursor yields an empty page.
func (h *FeedHandler) Fetch(c *gin.Context) {
	pageSize, err := strconv.Atoi(c.Query("page_size"))
	if err != nil {
		pageSize = 0
	}

	page, err := h.Service.Fetch(c.Request.Context(), viewerOf(c), c.Query("cursor"), pageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostListFromDomain(&page))
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/rest/request"
	"github.com/cldprgm/Network-vibe/internal/rest/response"
)

type CommunityHandler struct {
	Service domain.CommunityUsecase
}

func NewCommunityHandler(svc domain.CommunityUsecase) *CommunityHandler {
	return &CommunityHandler{
		Service: svc,
	}
}

// Update edits a community, creator only
func (h *CommunityHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.Community
	if !bindJSON(c, &req) {
		return
	}
	cm := req.ToDomain(id)
	if err := h.Service.Update(c.Request.Context(), viewerOf(c).UserID, &cm); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommunityFromDomain(&domain.CommunityItem{Community: cm}))
}

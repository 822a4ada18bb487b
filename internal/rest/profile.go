package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/rest/response"
)

// ProfileHandler serves the lists on a user's profile page
type ProfileHandler struct {
	Service domain.ProfileUsecase
}

func NewProfileHandler(svc domain.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		Service: svc,
	}
}

// UserPosts lists the author's posts, ?filter=popular|new
func (h *ProfileHandler) UserPosts(c *gin.Context) {
	filter := domain.ParsePostFilter(c.Query("filter"))
	page, err := h.Service.UserPosts(c.Request.Context(), viewerOf(c), c.Param("slug"), filter, c.Query("cursor"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostListFromDomain(&page))
}

func (h *ProfileHandler) UserCommunities(c *gin.Context) {
	page, err := h.Service.UserCommunities(c.Request.Context(), viewerOf(c), c.Param("slug"), c.Query("cursor"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommunityListFromDomain(&page))
}

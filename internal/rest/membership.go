package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cldprgm/Network-vibe/domain"
)

// MembershipHandler joins and leaves communities
type MembershipHandler struct {
	Service domain.MembershipUsecase
}

func NewMembershipHandler(svc domain.MembershipUsecase) *MembershipHandler {
	return &MembershipHandler{
		Service: svc,
	}
}

// pathID parses :id, anything but a positive integer is a 404
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func (h *MembershipHandler) Join(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Service.Join(c.Request.Context(), viewerOf(c).UserID, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"community_id": id, "is_member": true})
}

func (h *MembershipHandler) Leave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Service.Leave(c.Request.Context(), viewerOf(c).UserID, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cldprgm/Network-vibe/domain"
	"github.com/cldprgm/Network-vibe/internal/rest/request"
)

// ContentHandler serves post, comment and vote writes
type ContentHandler struct {
	Service domain.ContentUsecase
}

func NewContentHandler(svc domain.ContentUsecase) *ContentHandler {
	return &ContentHandler{
		Service: svc,
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		return false
	}
	return true
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req request.Post
	if !bindJSON(c, &req) {
		return
	}
	p := req.ToDomain(viewerOf(c).UserID)
	if err := h.Service.CreatePost(c.Request.Context(), &p); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": p.ID, "slug": p.Slug, "status": p.Status})
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Service.DeletePost(c.Request.Context(), viewerOf(c).UserID, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) Vote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.Vote
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Service.Vote(c.Request.Context(), viewerOf(c).UserID, id, req.Value); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post_id": id, "user_vote": req.Value})
}

func (h *ContentHandler) Unvote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Service.Unvote(c.Request.Context(), viewerOf(c).UserID, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) CreateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.Comment
	if !bindJSON(c, &req) {
		return
	}
	cm := req.ToDomain(id, viewerOf(c).UserID)
	if err := h.Service.Comment(c.Request.Context(), &cm); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": cm.ID, "post_id": cm.PostID})
}

func (h *ContentHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteComment(c.Request.Context(), viewerOf(c).UserID, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

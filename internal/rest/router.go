package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cldprgm/Network-vibe/internal/rest/middleware"
)

// Handlers groups everything the router serves
type Handlers struct {
	Feed           *FeedHandler
	Recommendation *RecommendationHandler
	Profile        *ProfileHandler
	Membership     *MembershipHandler
	Content        *ContentHandler
	Community      *CommunityHandler
}

// Register mounts the routes. auth resolves the optional viewer on every API
// route; write routes additionally require it.
func Register(route *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	route.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := route.Group("/")
	api.Use(auth)
	{
		api.GET("/feed", h.Feed.Fetch)
		api.GET("/communities/recommendations", h.Recommendation.Recommend)
		api.GET("/users/:slug/posts", h.Profile.UserPosts)
		api.GET("/users/:slug/communities", h.Profile.UserCommunities)
	}

	authorized := api.Group("/")
	authorized.Use(middleware.RequireAuth())
	{
		authorized.POST("/communities/:id/join", h.Membership.Join)
		authorized.DELETE("/communities/:id/join", h.Membership.Leave)
		authorized.PATCH("/communities/:id", h.Community.Update)

		authorized.POST("/posts", h.Content.CreatePost)
		authorized.DELETE("/posts/:id", h.Content.DeletePost)
		authorized.POST("/posts/:id/vote", h.Content.Vote)
		authorized.DELETE("/posts/:id/vote", h.Content.Unvote)
		authorized.POST("/posts/:id/comments", h.Content.CreateComment)
		authorized.DELETE("/comments/:id", h.Content.DeleteComment)
	}
}

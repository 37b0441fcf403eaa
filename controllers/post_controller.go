package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emilsberzins2000/AnonForum/config"
	"github.com/emilsberzins2000/AnonForum/middleware"
	"github.com/emilsberzins2000/AnonForum/store"
	"github.com/emilsberzins2000/AnonForum/utils"
)

const postsListCacheKey = "cache:posts:list"

// PostController handles post and comment submission plus the combined
// posts-with-comments listing.
type PostController struct {
	store *store.ForumStore
}

// NewPostController creates a new PostController instance.
func NewPostController(st *store.ForumStore) *PostController {
	return &PostController{store: st}
}

// ListPosts returns every post, newest first, each with its ordered
// comments and the author's display name. The response is cached in Redis
// when available and invalidated on every write.
func (p *PostController) ListPosts(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(postsListCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	views, err := p.store.ListPostsWithComments()
	if err != nil {
		respondStoreError(ctx, 50030, err)
		return
	}

	payload := gin.H{"posts": views}
	ttl := time.Duration(config.Get().CacheTTLSeconds) * time.Second
	utils.CacheSetJSON(postsListCacheKey, payload, ttl)
	ctx.JSON(http.StatusOK, payload)
}

// CreatePost stores a new post for the current session user, or as guest
// when no identity is bound.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	userID := middleware.CurrentUserID(ctx)
	if _, err := p.store.CreatePost(userID, utils.Sanitize(req.Title), utils.Sanitize(req.Body)); err != nil {
		respondStoreError(ctx, 40031, err)
		return
	}

	utils.InvalidateByPrefix(postsListCacheKey)
	utils.NoContent(ctx)
}

// CreateComment stores a new comment on a post. The post is not checked
// for existence, matching the schema's relaxed referential policy.
func (p *PostController) CreateComment(ctx *gin.Context) {
	var req struct {
		PostID uint   `json:"post_id" binding:"required"`
		Body   string `json:"body" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}

	userID := middleware.CurrentUserID(ctx)
	if _, err := p.store.CreateComment(userID, req.PostID, utils.Sanitize(req.Body)); err != nil {
		respondStoreError(ctx, 40041, err)
		return
	}

	utils.InvalidateByPrefix(postsListCacheKey)
	utils.NoContent(ctx)
}

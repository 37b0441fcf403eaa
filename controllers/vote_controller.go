package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilsberzins2000/AnonForum/middleware"
	"github.com/emilsberzins2000/AnonForum/store"
	"github.com/emilsberzins2000/AnonForum/utils"
)

// VoteController handles upvotes and downvotes on posts and comments.
type VoteController struct {
	store *store.ForumStore
}

// NewVoteController creates a new VoteController instance.
func NewVoteController(st *store.ForumStore) *VoteController {
	return &VoteController{store: st}
}

// CastVote records a +1/-1 ballot for the current voter identity. Guests
// vote under their network address. A repeat vote on the same target
// replaces the earlier value.
func (v *VoteController) CastVote(ctx *gin.Context) {
	var req struct {
		TargetType string `json:"target_type" binding:"required"`
		TargetID   uint   `json:"target_id" binding:"required"`
		Value      int    `json:"value" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request payload")
		return
	}

	voter := middleware.VoterIdentity(ctx)
	if err := v.store.CastVote(voter, req.TargetType, req.TargetID, req.Value); err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("vote failed target=%s/%d: %v", req.TargetType, req.TargetID, err)
		}
		respondStoreError(ctx, 40051, err)
		return
	}

	utils.InvalidateByPrefix(postsListCacheKey)
	utils.NoContent(ctx)
}

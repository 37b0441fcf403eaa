package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/emilsberzins2000/AnonForum/middleware"
	"github.com/emilsberzins2000/AnonForum/store"
	"github.com/emilsberzins2000/AnonForum/utils"
)

// AuthController manages the anonymous sign-in lifecycle: it creates an
// identity, binds its anon token to the cookie session, and clears it on
// sign-out. There are no credentials; the token is the whole identity.
type AuthController struct {
	store *store.ForumStore
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(st *store.ForumStore) *AuthController {
	return &AuthController{store: st}
}

// SignIn creates a fresh anonymous identity under the chosen display name.
func (a *AuthController) SignIn(ctx *gin.Context) {
	var req struct {
		DisplayName string `json:"display_name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	user, err := a.store.CreateUser(utils.Sanitize(req.DisplayName))
	if err != nil {
		respondStoreError(ctx, 40011, err)
		return
	}

	sess := sessions.Default(ctx)
	sess.Set(middleware.SessionAnonIDKey, user.AnonID)
	if err := sess.Save(); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to save session")
		return
	}
	utils.NoContent(ctx)
}

// SignOut drops the session identity. The user row itself is never deleted.
func (a *AuthController) SignOut(ctx *gin.Context) {
	sess := sessions.Default(ctx)
	sess.Delete(middleware.SessionAnonIDKey)
	if err := sess.Save(); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to save session")
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

// Me reports the current session identity so the front end can render the
// signed-in name. Guests get a null user.
func (a *AuthController) Me(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		utils.Success(ctx, gin.H{"user": nil})
		return
	}
	utils.Success(ctx, gin.H{"user": gin.H{
		"id":           user.ID,
		"display_name": user.DisplayName,
	}})
}

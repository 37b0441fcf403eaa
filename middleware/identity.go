package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/emilsberzins2000/AnonForum/models"
	"github.com/emilsberzins2000/AnonForum/store"
	"github.com/emilsberzins2000/AnonForum/utils"
)

const (
	// SessionAnonIDKey is the session key holding the anon identity token.
	SessionAnonIDKey = "anon_id"
	// ContextUserKey stores the resolved current user in Gin context.
	ContextUserKey = "current_user"
)

// LoadIdentity resolves the session's anon token to a user once per request
// and stores it in the request context. A missing or stale token leaves the
// request as guest; handlers read the result via CurrentUser, never from
// ambient state.
func LoadIdentity(st *store.ForumStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := sessions.Default(ctx)
		if anon, ok := sess.Get(SessionAnonIDKey).(string); ok && anon != "" {
			user, err := st.GetUserByAnonID(anon)
			if err != nil && utils.Sugar != nil {
				utils.Sugar.Warnf("identity lookup failed: %v", err)
			}
			if user != nil {
				ctx.Set(ContextUserKey, user)
			}
		}
		ctx.Next()
	}
}

// CurrentUser returns the signed-in user for this request, or nil for a
// guest.
func CurrentUser(ctx *gin.Context) *models.User {
	if v, ok := ctx.Get(ContextUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// CurrentUserID returns the signed-in user's id, or nil for a guest.
func CurrentUserID(ctx *gin.Context) *uint {
	if user := CurrentUser(ctx); user != nil {
		id := user.ID
		return &id
	}
	return nil
}

// VoterIdentity returns the vote-deduplication key for this request: the
// session's anon token when signed in, otherwise the caller's network
// address.
func VoterIdentity(ctx *gin.Context) string {
	if user := CurrentUser(ctx); user != nil {
		return user.AnonID
	}
	return ctx.ClientIP()
}

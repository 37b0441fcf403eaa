package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emilsberzins2000/AnonForum/config"
	"github.com/emilsberzins2000/AnonForum/controllers"
	"github.com/emilsberzins2000/AnonForum/middleware"
	"github.com/emilsberzins2000/AnonForum/store"
	"github.com/emilsberzins2000/AnonForum/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(cfg.SessionCookieName, sessionStore))

	st := store.New(db)
	r.Use(middleware.LoadIdentity(st))
	r.Use(middleware.PageViewRecorder(db))

	r.Static("/static", "./static")
	r.GET("/", func(ctx *gin.Context) {
		ctx.File("./static/index.html")
	})

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(st)
	postController := controllers.NewPostController(st)
	voteController := controllers.NewVoteController(st)
	statsController := controllers.NewStatsController(db)

	r.GET("/posts", postController.ListPosts)
	r.GET("/me", authController.Me)
	r.GET("/stats", statsController.GetStats)

	mutating := r.Group("")
	mutating.Use(middleware.RateLimit())
	mutating.POST("/signin", authController.SignIn)
	mutating.POST("/signout", authController.SignOut)
	mutating.POST("/post", postController.CreatePost)
	mutating.POST("/comment", postController.CreateComment)
	mutating.POST("/vote", voteController.CastVote)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}

package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emilsberzins2000/AnonForum/utils"
)

// AccessLog writes one structured line per request through the zap sugar
// logger, including the request id assigned by RequestID.
func AccessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if utils.Sugar == nil {
			return
		}
		utils.Sugar.Infow("http",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", ctx.ClientIP(),
			"request_id", ctx.GetString(RequestIDHeader),
		)
	}
}

// Recovery converts panics into 500 responses and logs the stack via zap.
func Recovery() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if utils.Sugar != nil {
					utils.Sugar.Errorw("panic recovered",
						"error", r,
						"path", ctx.Request.URL.Path,
						"request_id", ctx.GetString(RequestIDHeader),
					)
				}
				ctx.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		ctx.Next()
	}
}

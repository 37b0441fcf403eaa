package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emilsberzins2000/AnonForum/models"
)

// PageViewRecorder records page views per day and path.
func PageViewRecorder(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		// Only successful GETs against content pages count as views.
		if ctx.Request.Method != "GET" {
			return
		}
		status := ctx.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		path := ctx.Request.URL.Path
		if path == "/health" || path == "/stats" || strings.HasPrefix(path, "/static/") {
			return
		}

		// Local midnight aligns with the DATE column.
		now := time.Now().In(time.Local)
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		// Atomic upsert avoids duplicate key errors under concurrency.
		_ = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "path"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
		}).Create(&models.PageView{Date: day, Path: path, Count: 1}).Error
	}
}

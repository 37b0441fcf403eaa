package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emilsberzins2000/AnonForum/models"
	"github.com/emilsberzins2000/AnonForum/utils"
)

// StatsController exposes aggregate counters for the site.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns entity counts plus total and today's page views.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var users, posts, comments int64
	s.db.Model(&models.User{}).Count(&users)
	s.db.Model(&models.Post{}).Count(&posts)
	s.db.Model(&models.Comment{}).Count(&comments)

	var viewsTotal, viewsToday int64
	s.db.Model(&models.PageView{}).Select("COALESCE(SUM(count), 0)").Scan(&viewsTotal)
	now := time.Now().In(time.Local)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	s.db.Model(&models.PageView{}).Where("date = ?", day).Select("COALESCE(SUM(count), 0)").Scan(&viewsToday)

	utils.Success(ctx, gin.H{
		"users":       users,
		"posts":       posts,
		"comments":    comments,
		"views_total": viewsTotal,
		"views_today": viewsToday,
	})
}

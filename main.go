package main

import (
	"github.com/joho/godotenv"

	"github.com/emilsberzins2000/AnonForum/config"
	"github.com/emilsberzins2000/AnonForum/models"
	"github.com/emilsberzins2000/AnonForum/routes"
	"github.com/emilsberzins2000/AnonForum/utils"
)

func main() {
	// .env is optional; config falls back to config.json and real env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		&models.PageView{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("starting AnonForum on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Adisheth/car-rental-website/config"
	"github.com/Adisheth/car-rental-website/routes"
	"github.com/Adisheth/car-rental-website/storage"
	"github.com/Adisheth/car-rental-website/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.UsingDefaultSecret() {
		log.Warn("JWT_SECRET is not set, using the insecure default signing key")
	}

	db, err := config.ConnectDatabase(context.Background(), cfg.DBPath)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}

	if err := utils.SeedAdminUser(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("seed admin user", zap.Error(err))
	}

	images, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("init image store", zap.Error(err))
	}

	r := routes.SetupRouter(db, cfg, images, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

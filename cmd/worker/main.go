package main

import (
	"go-ems/internal/app"
	"go-ems/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load[config.Worker]()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if config.IsProduction(cfg.Env) {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}

package main

import (
	"go-ems/internal/app"
	"go-ems/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load[config.Consumer]()
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

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}

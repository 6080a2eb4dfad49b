package main

import (
	"go-ems/internal/app"
	"go-ems/internal/bootstrap"
	"go-ems/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load[config.Web]()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if config.IsProduction(cfg.Env) {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	r := gin.New()
	r.Use(gin.Recovery())
	app.BuildWeb(r, cfg, logger)

	if err := bootstrap.StartHTTPServer(r, cfg.HTTPServer(), bootstrap.NewStdoutAuditLogger(logger)); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}

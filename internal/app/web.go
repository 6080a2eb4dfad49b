package app

import (
	"go-ems/internal/apiclient"
	"go-ems/internal/config"
	"go-ems/internal/dashboard"
	"go-ems/internal/middleware"
	"go-ems/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildWeb registers the form and dashboard pages. The frontend talks to the API over HTTP only.
func BuildWeb(router *gin.Engine, cfg *config.Web, logger *zap.Logger) {
	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	handler := web.NewHandler(client, dashboard.NewLoader(client, logger), logger)

	router.SetHTMLTemplate(web.Templates())
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
	)
	web.RegisterRoutes(router, handler)
}

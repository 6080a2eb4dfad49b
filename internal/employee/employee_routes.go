package employee

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type RouteOptions struct {
	// AddLimit and AddBurst throttle POST /add-employee per client IP; zero disables it.
	AddLimit rate.Limit
	AddBurst int
	Redis    *redis.Client
}

func RegisterRoutes(r gin.IRouter, handler *Handler, opts RouteOptions) {
	add := []gin.HandlerFunc{}
	if opts.AddLimit > 0 {
		add = append(add, middleware.RateLimitByIP(opts.AddLimit, opts.AddBurst))
	}
	add = append(add, middleware.Idempotency(opts.Redis), handler.AddEmployee)

	r.POST("/add-employee", add...)
	r.GET("/read-employees", handler.ReadEmployees)
}

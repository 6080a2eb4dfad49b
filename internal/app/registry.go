package app

import (
	"database/sql"

	"go-ems/internal/config"
	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.API,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db, kafka.DefaultRetryPolicy)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	router.GET("/healthz", healthHandler(db))
	employee.RegisterRoutes(router, employeeHandler, employee.RouteOptions{
		AddLimit: rate.Limit(cfg.AddRateLimit),
		AddBurst: cfg.AddRateBurst,
		Redis:    rdb,
	})
}

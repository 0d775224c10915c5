package app

import (
	"path/filepath"

	"go-shift-admin/internal/dashboard"
	"go-shift-admin/internal/employee"
	"go-shift-admin/internal/group"
	"go-shift-admin/internal/history"
	"go-shift-admin/internal/messaging/kafka"
	"go-shift-admin/internal/middleware"
	"go-shift-admin/internal/rbac"
	"go-shift-admin/internal/rbac/infra"
	"go-shift-admin/internal/rbac/rbac_http"
	"go-shift-admin/internal/role"
	"go-shift-admin/internal/shared/counter"
	"go-shift-admin/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(20, 40))

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	groupRepo := group.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	tracker := history.NewTracker(historyRepo)
	shiftService := shift.NewService(gormDB, shiftRepo, tracker, outboxRepo)
	historyService := history.NewService(historyRepo, shiftService)
	employeeService := employee.NewService(gormDB, employeeRepo, historyRepo, tracker, counterRepo, outboxRepo, rdb)
	groupService := group.NewService(groupRepo)
	roleService := role.NewService(roleRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	// --- Handlers ---
	shiftHandler := shift.NewHandlerWithRedis(shiftService, rdb)
	historyHandler := history.NewHandler(historyService)
	employeeHandler := employee.NewHandler(employeeService)
	groupHandler := group.NewHandler(groupService)
	roleHandler := role.NewHandler(roleService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	rbacHandler := rbac.NewHandler(rbacService, rbacRepo)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		shift.RegisterRoutes(api, shiftHandler, rbacService, rdb, logger)
		history.RegisterRoutes(api, historyHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		group.RegisterRoutes(api, groupHandler, rbacService, logger)
		role.RegisterRoutes(api, roleHandler, rbacService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, logger)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}

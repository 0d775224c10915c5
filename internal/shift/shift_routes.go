package shift

import (
	"go-shift-admin/internal/middleware"
	"go-shift-admin/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	shifts.Use(middleware.ContextLogger(logger))
	{
		shifts.GET("/calendar",
			middleware.RBACAuthorize(rbacService, "shift", "read"),
			handler.GetCalendar,
		)

		shifts.GET("/table",
			middleware.RBACAuthorize(rbacService, "shift", "read"),
			handler.GetTable,
		)

		shifts.POST("",
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "shift", "write"),
			handler.Create,
		)

		shifts.PUT("/bulk",
			middleware.RBACAuthorize(rbacService, "shift", "write"),
			handler.BulkEdit,
		)

		shifts.GET("/:id",
			middleware.RBACAuthorize(rbacService, "shift", "read"),
			handler.GetByID,
		)

		shifts.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "shift", "write"),
			handler.Update,
		)

		shifts.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "shift", "write"),
			handler.Delete,
		)

		shifts.POST("/import",
			middleware.Idempotency(rdb),
			middleware.RateLimitByUser(1, 2),
			middleware.RBACAuthorize(rbacService, "shift", "write"),
			handler.BulkImport,
		)
	}
}

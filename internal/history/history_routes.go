package history

import (
	"go-shift-admin/internal/middleware"
	"go-shift-admin/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	hist := r.Group("/history")
	hist.Use(middleware.AuthMiddleware())
	hist.Use(middleware.ContextLogger(logger))
	{
		hist.GET("/shifts",
			middleware.RBACAuthorize(rbacService, "history", "read"),
			handler.GetShiftHistory,
		)

		hist.GET("/shifts/:id/versions",
			middleware.RBACAuthorize(rbacService, "history", "read"),
			handler.GetShiftVersions,
		)

		hist.POST("/shifts/:id/restore",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "history", "restore"),
			handler.RestoreShiftVersion,
		)

		hist.GET("/employees/:id",
			middleware.RBACAuthorize(rbacService, "history", "read"),
			handler.GetEmployeeHistory,
		)

		hist.DELETE("/records/:id",
			middleware.RBACAuthorize(rbacService, "history", "purge"),
			handler.PurgeShiftChange,
		)
	}
}

package dashboard

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
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware())
	dash.Use(middleware.ContextLogger(logger))
	{
		dash.GET("/stats",
			middleware.RBACAuthorize(rbacService, "shift", "read"),
			handler.GetStats,
		)

		dash.GET("/today",
			middleware.RBACAuthorize(rbacService, "shift", "read"),
			handler.GetTodayOverview,
		)
	}
}

package group

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
	groups := r.Group("/groups")
	groups.Use(middleware.AuthMiddleware())
	groups.Use(middleware.ContextLogger(logger))
	{
		groups.GET("",
			middleware.RBACAuthorize(rbacService, "group", "read"),
			handler.GetAll,
		)

		groups.POST("",
			middleware.RBACAuthorize(rbacService, "group", "write"),
			handler.Create,
		)

		groups.GET("/:id",
			middleware.RBACAuthorize(rbacService, "group", "read"),
			handler.GetByID,
		)

		groups.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "group", "write"),
			handler.Update,
		)

		groups.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "group", "write"),
			handler.Delete,
		)
	}
}

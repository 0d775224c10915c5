package role

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
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	roles.Use(middleware.ContextLogger(logger))
	{
		roles.GET("",
			middleware.RBACAuthorize(rbacService, "role", "read"),
			handler.GetAll,
		)

		roles.POST("",
			middleware.RBACAuthorize(rbacService, "role", "write"),
			handler.Create,
		)

		roles.GET("/:id",
			middleware.RBACAuthorize(rbacService, "role", "read"),
			handler.GetByID,
		)

		roles.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "role", "write"),
			handler.Update,
		)

		roles.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "role", "write"),
			handler.Delete,
		)
	}
}

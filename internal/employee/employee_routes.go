package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.List,
		)

		employees.GET("/options",
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetOptions,
		)

		employees.POST("",
			middleware.RBACAuthorize(rbacService, "employee", "write"),
			handler.Create,
		)

		employees.GET("/:id",
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetByID,
		)

		employees.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "employee", "write"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, "employee", "write"),
			handler.Delete,
		)
	}
}

package rbac_http

import (
	"go-shift-admin/internal/middleware"
	"go-shift-admin/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler, service rbac.Service) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/enforce", handler.Enforce)

		// Management
		group.GET("/permissions", middleware.RBACAuthorize(service, "role", "manage"), handler.ListPermissions)
		group.GET("/roles/:id/permissions", middleware.RBACAuthorize(service, "role", "read"), handler.GetRolePermissions)
		group.PUT("/roles/:id/permissions", middleware.RBACAuthorize(service, "role", "manage"), handler.UpdateRolePermissions)
	}
}

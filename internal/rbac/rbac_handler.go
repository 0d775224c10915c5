package rbac

import (
	"net/http"
	"strconv"
	"strings"

	"go-shift-admin/internal/domain"
	"go-shift-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	repo    Repository
}

func NewHandler(service Service, repo Repository) *Handler {
	return &Handler{service: service, repo: repo}
}

func (h *Handler) Enforce(c *gin.Context) {
	var body EnforceRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "user_id, resource, and action are required", err.Error())
		return
	}

	req := domain.EnforceRequest{
		UserID:   strings.TrimSpace(body.UserID),
		Resource: strings.TrimSpace(body.Resource),
		Action:   strings.TrimSpace(body.Action),
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) ListPermissions(c *gin.Context) {
	rows, err := h.repo.ListPermissions()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	res := make([]PermissionResponse, len(rows))
	for i, p := range rows {
		res[i] = PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetRolePermissions(c *gin.Context) {
	roleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid role ID", nil)
		return
	}

	rows, err := h.repo.GetPermissionsByRoleID(roleID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	res := make([]PermissionResponse, len(rows))
	for i, p := range rows {
		res[i] = PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateRolePermissions(c *gin.Context) {
	roleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid role ID", nil)
		return
	}

	var req UpdateRolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "permission_ids is required", err.Error())
		return
	}

	if err := h.repo.UpdateRolePermissions(roleID, req.PermissionIDs); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true}, nil)
}

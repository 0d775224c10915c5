package role

type CreateRoleRequest struct {
	RoleCode string `json:"role_code" binding:"required,max=20"`
	RoleName string `json:"role_name" binding:"required,max=100"`
	RoleType string `json:"role_type" binding:"required"`
}

type UpdateRoleRequest struct {
	RoleName string `json:"role_name" binding:"required,max=100"`
	IsActive *bool  `json:"is_active"`
}

type RoleResponse struct {
	ID       int64  `json:"id"`
	RoleCode string `json:"role_code"`
	RoleName string `json:"role_name"`
	RoleType string `json:"role_type"`
	IsActive bool   `json:"is_active"`
}

func mapToResponse(r FunctionRole) RoleResponse {
	return RoleResponse{
		ID:       r.ID,
		RoleCode: r.RoleCode,
		RoleName: r.RoleName,
		RoleType: r.RoleType,
		IsActive: r.IsActive,
	}
}

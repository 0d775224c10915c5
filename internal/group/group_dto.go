package group

type CreateGroupRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateGroupRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	DisplayOrder int    `json:"display_order"`
}

type GroupResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	MemberCount  int64  `json:"member_count"`
}

func mapToResponse(g Group, memberCount int64) GroupResponse {
	return GroupResponse{
		ID:           g.ID,
		Name:         g.Name,
		DisplayOrder: g.DisplayOrder,
		MemberCount:  memberCount,
	}
}

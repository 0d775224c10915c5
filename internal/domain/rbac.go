package domain

// EnforceRequest is the question asked of the RBAC layer:
// may this user perform this action on this resource?
type EnforceRequest struct {
	UserID   string
	Resource string
	Action   string
}

package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the RBAC model from model.conf. Policy and grouping
// rules are not file-backed; the service loads them from the database.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath)
}

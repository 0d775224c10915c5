package role

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *FunctionRole) error
	Update(ctx context.Context, r *FunctionRole) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*FunctionRole, error)
	FindAll(ctx context.Context, roleType string) ([]FunctionRole, error)
	CountAssignedEmployees(ctx context.Context, roleID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, role *FunctionRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) Update(ctx context.Context, role *FunctionRole) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&FunctionRole{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*FunctionRole, error) {
	var role FunctionRole
	err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) FindAll(ctx context.Context, roleType string) ([]FunctionRole, error) {
	q := r.db.WithContext(ctx).Model(&FunctionRole{})
	if roleType != "" {
		q = q.Where("role_type = ?", roleType)
	}

	var rows []FunctionRole
	err := q.Order("role_code ASC").Find(&rows).Error
	return rows, err
}

// CountAssignedEmployees counts employees holding the role either as a
// function role or as a position.
func (r *repository) CountAssignedEmployees(ctx context.Context, roleID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("role_id = ? OR position_id = ?", roleID, roleID).
		Count(&count).Error
	return count, err
}

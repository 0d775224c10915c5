package group

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=group_repo.go -destination=mock/group_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, g *Group) error
	Update(ctx context.Context, g *Group) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Group, error)
	FindAll(ctx context.Context) ([]Group, error)
	CountActiveMembers(ctx context.Context, groupID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) Update(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Group{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Group, error) {
	var g Group
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Group, error) {
	var rows []Group
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

// CountActiveMembers counts employees still assigned to the group. A group
// with members cannot be deleted.
func (r *repository) CountActiveMembers(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("group_id = ?", groupID).
		Where("termination_date IS NULL OR termination_date >= ?", time.Now().Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

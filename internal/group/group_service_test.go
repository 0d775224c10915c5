package group_test

import (
	"context"
	"testing"

	"go-shift-admin/internal/group"
	grouperrors "go-shift-admin/internal/group/errors"
	groupMock "go-shift-admin/internal/group/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := groupMock.NewMockRepository(ctrl)
	svc := group.NewService(repo)

	t.Run("creates group", func(t *testing.T) {
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *group.Group) error {
				g.ID = 3
				return nil
			})

		res, err := svc.Create(context.Background(), group.CreateGroupRequest{
			Name:         "Front Desk",
			DisplayOrder: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), res.ID)
		assert.Equal(t, "Front Desk", res.Name)
		assert.Equal(t, 2, res.DisplayOrder)
		assert.Equal(t, int64(0), res.MemberCount)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_group_name"})

		_, err := svc.Create(context.Background(), group.CreateGroupRequest{Name: "Front Desk"})

		assert.ErrorIs(t, err, grouperrors.ErrDuplicateGroupName)
	})
}

func TestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := groupMock.NewMockRepository(ctrl)
	svc := group.NewService(repo)

	repo.EXPECT().FindAll(gomock.Any()).Return([]group.Group{
		{ID: 1, Name: "Kitchen", DisplayOrder: 1},
		{ID: 2, Name: "Front Desk", DisplayOrder: 2},
	}, nil)
	repo.EXPECT().CountActiveMembers(gomock.Any(), int64(1)).Return(int64(4), nil)
	repo.EXPECT().CountActiveMembers(gomock.Any(), int64(2)).Return(int64(0), nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, int64(4), res[0].MemberCount)
	assert.Equal(t, int64(0), res[1].MemberCount)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := groupMock.NewMockRepository(ctrl)
	svc := group.NewService(repo)

	t.Run("renames group", func(t *testing.T) {
		repo.EXPECT().
			FindByID(gomock.Any(), int64(1)).
			Return(&group.Group{ID: 1, Name: "Kitchen", DisplayOrder: 1}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *group.Group) error {
				assert.Equal(t, "Back of House", g.Name)
				return nil
			})
		repo.EXPECT().CountActiveMembers(gomock.Any(), int64(1)).Return(int64(4), nil)

		res, err := svc.Update(context.Background(), 1, group.UpdateGroupRequest{
			Name:         "Back of House",
			DisplayOrder: 1,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Back of House", res.Name)
		assert.Equal(t, int64(4), res.MemberCount)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().
			FindByID(gomock.Any(), int64(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(context.Background(), 99, group.UpdateGroupRequest{Name: "X"})

		assert.ErrorIs(t, err, grouperrors.ErrGroupNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := groupMock.NewMockRepository(ctrl)
	svc := group.NewService(repo)

	t.Run("rejects delete while members remain", func(t *testing.T) {
		repo.EXPECT().CountActiveMembers(gomock.Any(), int64(1)).Return(int64(3), nil)

		err := svc.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, grouperrors.ErrGroupInUse)
	})

	t.Run("deletes empty group", func(t *testing.T) {
		repo.EXPECT().CountActiveMembers(gomock.Any(), int64(2)).Return(int64(0), nil)
		repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)

		err := svc.Delete(context.Background(), 2)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().CountActiveMembers(gomock.Any(), int64(9)).Return(int64(0), nil)
		repo.EXPECT().Delete(gomock.Any(), int64(9)).Return(gorm.ErrRecordNotFound)

		err := svc.Delete(context.Background(), 9)

		assert.ErrorIs(t, err, grouperrors.ErrGroupNotFound)
	})
}

package group

import (
	"context"
	"errors"

	grouperrors "go-shift-admin/internal/group/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=group_service.go -destination=mock/group_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateGroupRequest) (GroupResponse, error)
	GetAll(ctx context.Context) ([]GroupResponse, error)
	GetByID(ctx context.Context, id int64) (GroupResponse, error)
	Update(ctx context.Context, id int64, req UpdateGroupRequest) (GroupResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("group.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("group.service")
	}
	return &service{repo: repo, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return grouperrors.ErrGroupNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return grouperrors.ErrDuplicateGroupName
	}
	return err
}

func (s *service) Create(ctx context.Context, req CreateGroupRequest) (GroupResponse, error) {
	g := &Group{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("group created", zap.Int64("group_id", g.ID), zap.String("name", g.Name))
	return mapToResponse(*g, 0), nil
}

func (s *service) GetAll(ctx context.Context) ([]GroupResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]GroupResponse, len(rows))
	for i, g := range rows {
		count, err := s.repo.CountActiveMembers(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		res[i] = mapToResponse(g, count)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (GroupResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}
	count, err := s.repo.CountActiveMembers(ctx, id)
	if err != nil {
		return GroupResponse{}, err
	}
	return mapToResponse(*g, count), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateGroupRequest) (GroupResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}

	g.Name = req.Name
	g.DisplayOrder = req.DisplayOrder

	if err := s.repo.Update(ctx, g); err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}

	count, err := s.repo.CountActiveMembers(ctx, id)
	if err != nil {
		return GroupResponse{}, err
	}
	return mapToResponse(*g, count), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.CountActiveMembers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return grouperrors.ErrGroupInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("group deleted", zap.Int64("group_id", id))
	return nil
}

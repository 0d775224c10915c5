package role

import (
	"context"
	"errors"

	roleerrors "go-shift-admin/internal/role/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context, roleType string) ([]RoleResponse, error)
	GetByID(ctx context.Context, id int64) (RoleResponse, error)
	Update(ctx context.Context, id int64, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{repo: repo, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return roleerrors.ErrRoleNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return roleerrors.ErrDuplicateRoleCode
	}
	return err
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	if !validRoleType(req.RoleType) {
		return RoleResponse{}, roleerrors.ErrInvalidRoleType
	}

	role := &FunctionRole{
		RoleCode: req.RoleCode,
		RoleName: req.RoleName,
		RoleType: req.RoleType,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("role created",
		zap.Int64("role_id", role.ID),
		zap.String("role_code", role.RoleCode),
		zap.String("role_type", role.RoleType),
	)
	return mapToResponse(*role), nil
}

func (s *service) GetAll(ctx context.Context, roleType string) ([]RoleResponse, error) {
	if roleType != "" && !validRoleType(roleType) {
		return nil, roleerrors.ErrInvalidRoleType
	}

	rows, err := s.repo.FindAll(ctx, roleType)
	if err != nil {
		return nil, err
	}

	res := make([]RoleResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*role), nil
}

// Update changes the display name and active flag. The code and type are
// fixed at creation because employee records reference them by meaning.
func (s *service) Update(ctx context.Context, id int64, req UpdateRoleRequest) (RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	role.RoleName = req.RoleName
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*role), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.CountAssignedEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return roleerrors.ErrRoleInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("role deleted", zap.Int64("role_id", id))
	return nil
}

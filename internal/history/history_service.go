package history

import (
	"context"
	"errors"
	"time"

	historyerrors "go-shift-admin/internal/history/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RestoredShiftFields is the full tracked field set taken from a historical
// version's old-image and re-applied to the live row.
type RestoredShiftFields struct {
	ShiftCode   *string
	StartTime   *time.Time
	EndTime     *time.Time
	IsHoliday   bool
	IsPaidLeave bool
	IsRemote    bool
}

// ShiftRestorer is implemented by the shift service. Restoring goes back
// through the normal update path so the change is itself tracked, producing
// a new forward version instead of rewinding the log.
type ShiftRestorer interface {
	ApplyRestore(ctx context.Context, shiftID int64, fields RestoredShiftFields) error
}

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	GetShiftHistory(ctx context.Context, filter ChangeFilter, page, pageSize int) ([]ShiftChangeResponse, int64, error)
	GetShiftVersions(ctx context.Context, shiftID int64) ([]ShiftChangeResponse, error)
	GetEmployeeHistory(ctx context.Context, employeeID int64) (EmployeeHistoryResponse, error)
	RestoreShiftVersion(ctx context.Context, shiftID int64, version int) error
	PurgeShiftChange(ctx context.Context, historyID int64) error
}

type service struct {
	repo     Repository
	restorer ShiftRestorer
	logger   *zap.Logger
}

func NewService(repo Repository, restorer ShiftRestorer, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{repo: repo, restorer: restorer, logger: l}
}

func (s *service) GetShiftHistory(ctx context.Context, filter ChangeFilter, page, pageSize int) ([]ShiftChangeResponse, int64, error) {
	rows, total, err := s.repo.FindShiftChanges(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	res := make([]ShiftChangeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapShiftChange(r)
	}
	return res, total, nil
}

func (s *service) GetShiftVersions(ctx context.Context, shiftID int64) ([]ShiftChangeResponse, error) {
	rows, err := s.repo.FindShiftVersions(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	res := make([]ShiftChangeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapShiftChange(r)
	}
	return res, nil
}

func (s *service) GetEmployeeHistory(ctx context.Context, employeeID int64) (EmployeeHistoryResponse, error) {
	changes, err := s.repo.FindEmployeeChanges(ctx, employeeID)
	if err != nil {
		return EmployeeHistoryResponse{}, err
	}
	names, err := s.repo.FindNameRecords(ctx, employeeID)
	if err != nil {
		return EmployeeHistoryResponse{}, err
	}

	res := EmployeeHistoryResponse{
		EmployeeID:  employeeID,
		Assignments: make([]EmployeeChangeResponse, len(changes)),
		Names:       make([]NameRecordResponse, len(names)),
	}
	for i, c := range changes {
		res.Assignments[i] = mapEmployeeChange(c)
	}
	for i, n := range names {
		res.Names[i] = mapNameRecord(n)
	}
	return res, nil
}

// RestoreShiftVersion re-applies the target version's old-image, the state
// as of just before that version's change, through the live update path.
// Versions 1..latest stay untouched; the restore shows up as a new version.
func (s *service) RestoreShiftVersion(ctx context.Context, shiftID int64, version int) error {
	rec, err := s.repo.FindShiftVersion(ctx, shiftID, version)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return historyerrors.ErrVersionNotFound
		}
		return err
	}

	if rec.ChangeType == ChangeDelete {
		// There is no live row behind a DELETE version; recreating one
		// would be a create, and the caller must be told so.
		return historyerrors.ErrCannotRestoreDeletion
	}

	fields := RestoredShiftFields{
		ShiftCode: rec.OldShiftCode,
		StartTime: rec.OldStartTime,
		EndTime:   rec.OldEndTime,
	}
	if rec.OldIsHoliday != nil {
		fields.IsHoliday = *rec.OldIsHoliday
	}
	if rec.OldIsPaidLeave != nil {
		fields.IsPaidLeave = *rec.OldIsPaidLeave
	}
	if rec.OldIsRemote != nil {
		fields.IsRemote = *rec.OldIsRemote
	}

	if err := s.restorer.ApplyRestore(ctx, shiftID, fields); err != nil {
		return err
	}

	s.logger.Info("shift version restored",
		zap.Int64("shift_id", shiftID),
		zap.Int("version", version),
	)
	return nil
}

// PurgeShiftChange is the operator-only escape hatch from immutability.
// Surviving versions are not renumbered; a later restore against a purged
// version reports "version not found".
func (s *service) PurgeShiftChange(ctx context.Context, historyID int64) error {
	err := s.repo.DeleteShiftChange(ctx, historyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return historyerrors.ErrHistoryNotFound
		}
		return err
	}

	s.logger.Warn("shift history record purged", zap.Int64("history_id", historyID))
	return nil
}

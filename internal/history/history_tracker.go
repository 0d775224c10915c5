package history

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Tracker is the single choke point through which every tracked mutation
// must pass. It runs inside the caller's transaction: a state write never
// commits without its history record, and vice versa. Errors are never
// swallowed here; any failure aborts the enclosing transaction.
//
// The returned version is the delta-log version allocated for the change,
// or 0 when no record was written (no tracked field changed).
//
//go:generate mockgen -source=history_tracker.go -destination=mock/history_tracker_mock.go -package=mock
type Tracker interface {
	RecordShiftChange(ctx context.Context, tx *gorm.DB, op ChangeType, before, after *ShiftImage) (int, error)
	RecordEmployeeChange(ctx context.Context, tx *gorm.DB, op ChangeType, before, after *EmployeeImage) (int, error)
}

type tracker struct {
	repo   Repository
	logger *zap.Logger
}

func NewTracker(repo Repository, logger ...*zap.Logger) Tracker {
	l := zap.L().Named("history.tracker")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.tracker")
	}
	return &tracker{repo: repo, logger: l}
}

var (
	errMissingAfterImage  = errors.New("after-image is required for this operation")
	errMissingBeforeImage = errors.New("before-image is required for this operation")
	errUnknownOperation   = errors.New("unknown change operation")
)

func (t *tracker) RecordShiftChange(ctx context.Context, tx *gorm.DB, op ChangeType, before, after *ShiftImage) (int, error) {
	repo := t.repo.WithTx(tx)

	switch op {
	case ChangeInsert:
		if after == nil {
			return 0, errMissingAfterImage
		}
	case ChangeUpdate:
		if before == nil {
			return 0, errMissingBeforeImage
		}
		if after == nil {
			return 0, errMissingAfterImage
		}
		// No-op writes leave no trace in the log.
		if before.TrackedEqual(after) {
			return 0, nil
		}
	case ChangeDelete:
		if before == nil {
			return 0, errMissingBeforeImage
		}
	default:
		return 0, errUnknownOperation
	}

	subject := after
	if subject == nil {
		subject = before
	}

	version, err := repo.NextShiftVersion(ctx, subject.ShiftID)
	if err != nil {
		return 0, err
	}

	rec := &ShiftChange{
		ShiftID:    subject.ShiftID,
		EmployeeID: subject.EmployeeID,
		ShiftDate:  subject.ShiftDate,
		ChangeType: op,
		Version:    version,
	}
	if before != nil {
		rec.OldShiftCode = before.ShiftCode
		rec.OldStartTime = before.StartTime
		rec.OldEndTime = before.EndTime
		rec.OldIsHoliday = boolPtr(before.IsHoliday)
		rec.OldIsPaidLeave = boolPtr(before.IsPaidLeave)
		rec.OldIsRemote = boolPtr(before.IsRemote)
	}
	if op != ChangeDelete {
		rec.NewShiftCode = after.ShiftCode
		rec.NewStartTime = after.StartTime
		rec.NewEndTime = after.EndTime
		rec.NewIsHoliday = boolPtr(after.IsHoliday)
		rec.NewIsPaidLeave = boolPtr(after.IsPaidLeave)
		rec.NewIsRemote = boolPtr(after.IsRemote)
	}

	if err := repo.CreateShiftChange(ctx, rec); err != nil {
		return 0, err
	}

	t.logger.Debug("shift change recorded",
		zap.Int64("shift_id", subject.ShiftID),
		zap.String("change_type", string(op)),
		zap.Int("version", version),
	)
	return version, nil
}

func (t *tracker) RecordEmployeeChange(ctx context.Context, tx *gorm.DB, op ChangeType, before, after *EmployeeImage) (int, error) {
	repo := t.repo.WithTx(tx)
	now := time.Now().UTC()

	switch op {
	case ChangeInsert:
		if after == nil {
			return 0, errMissingAfterImage
		}
		// First SCD record opens on creation.
		if err := repo.CreateNameRecord(ctx, &NameRecord{
			EmployeeID: after.EmployeeID,
			Name:       after.Name,
			NameKana:   after.NameKana,
			ValidFrom:  now,
			IsCurrent:  true,
		}); err != nil {
			return 0, err
		}

		version, err := repo.NextEmployeeVersion(ctx, after.EmployeeID)
		if err != nil {
			return 0, err
		}
		rec := &EmployeeChange{
			EmployeeID:    after.EmployeeID,
			ChangeType:    ChangeInsert,
			Version:       version,
			NewGroupID:    after.GroupID,
			NewRoleID:     after.RoleID,
			NewPositionID: after.PositionID,
		}
		if err := repo.CreateEmployeeChange(ctx, rec); err != nil {
			return 0, err
		}
		return version, nil

	case ChangeUpdate:
		if before == nil {
			return 0, errMissingBeforeImage
		}
		if after == nil {
			return 0, errMissingAfterImage
		}

		nameChanged := !before.NameEqual(after)
		assignmentChanged := !before.AssignmentEqual(after)
		if !nameChanged && !assignmentChanged {
			return 0, nil
		}

		if nameChanged {
			// Close-old and open-new ride the same transaction, so a crash
			// can never leave zero or two current records.
			if err := repo.CloseCurrentNameRecord(ctx, before.EmployeeID, now); err != nil {
				return 0, err
			}
			if err := repo.CreateNameRecord(ctx, &NameRecord{
				EmployeeID: after.EmployeeID,
				Name:       after.Name,
				NameKana:   after.NameKana,
				ValidFrom:  now,
				IsCurrent:  true,
			}); err != nil {
				return 0, err
			}
		}

		if !assignmentChanged {
			return 0, nil
		}

		version, err := repo.NextEmployeeVersion(ctx, before.EmployeeID)
		if err != nil {
			return 0, err
		}
		rec := &EmployeeChange{
			EmployeeID:    before.EmployeeID,
			ChangeType:    ChangeUpdate,
			Version:       version,
			OldGroupID:    before.GroupID,
			OldRoleID:     before.RoleID,
			OldPositionID: before.PositionID,
			NewGroupID:    after.GroupID,
			NewRoleID:     after.RoleID,
			NewPositionID: after.PositionID,
		}
		if err := repo.CreateEmployeeChange(ctx, rec); err != nil {
			return 0, err
		}
		return version, nil

	case ChangeDelete:
		if before == nil {
			return 0, errMissingBeforeImage
		}

		if err := repo.CloseCurrentNameRecord(ctx, before.EmployeeID, now); err != nil {
			return 0, err
		}

		version, err := repo.NextEmployeeVersion(ctx, before.EmployeeID)
		if err != nil {
			return 0, err
		}
		rec := &EmployeeChange{
			EmployeeID:    before.EmployeeID,
			ChangeType:    ChangeDelete,
			Version:       version,
			OldGroupID:    before.GroupID,
			OldRoleID:     before.RoleID,
			OldPositionID: before.PositionID,
		}
		if err := repo.CreateEmployeeChange(ctx, rec); err != nil {
			return 0, err
		}
		return version, nil

	default:
		return 0, errUnknownOperation
	}
}

func boolPtr(b bool) *bool {
	return &b
}

package shift

import (
	"context"
	"errors"

	"go-shift-admin/internal/history"
	shifterrors "go-shift-admin/internal/shift/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BulkEdit applies one field set to each selected shift. Every shift gets
// its own transaction, so one bad id does not roll back the rest. Shifts
// already carrying the requested values are reported skipped and write no
// history.
func (s *service) BulkEdit(ctx context.Context, req BulkEditRequest) (BulkEditSummary, error) {
	summary := BulkEditSummary{Total: len(req.ShiftIDs)}

	for _, shiftID := range req.ShiftIDs {
		changed, err := s.bulkEditOne(ctx, shiftID, req.ShiftFields)
		if err != nil {
			summary.Errors = append(summary.Errors, BulkEditError{
				ShiftID: shiftID,
				Message: errorMessage(err),
			})
			continue
		}
		if changed {
			summary.Updated++
		} else {
			summary.Skipped++
		}
	}

	summary.Failed = len(summary.Errors)
	s.logger.Info("bulk edit finished",
		zap.Int("total", summary.Total),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *service) bulkEditOne(ctx context.Context, shiftID int64, fields ShiftFields) (bool, error) {
	changed := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		row, err := qtx.FindByID(ctx, shiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shifterrors.ErrShiftNotFound
			}
			return err
		}

		before := row.snapshot()
		if err := applyFields(row, fields); err != nil {
			return err
		}

		version, err := s.tracker.RecordShiftChange(ctx, tx, history.ChangeUpdate, before, row.snapshot())
		if err != nil {
			return mapWriteError(err)
		}
		if version == 0 {
			return nil
		}

		if err := qtx.Update(ctx, row); err != nil {
			return mapWriteError(err)
		}

		changed = true
		return s.enqueueShiftEvent(ctx, tx, row, history.ChangeUpdate, version)
	})
	return changed, err
}

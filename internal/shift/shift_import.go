package shift

import (
	"context"
	"errors"
	"time"

	"go-shift-admin/internal/history"
	"go-shift-admin/internal/shared/apperror"
	shifterrors "go-shift-admin/internal/shift/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultImportBatchSize = 200
	maxImportBatchSize     = 1000

	// Counts stay exact in the summary; only the row error list is
	// capped to keep huge upload responses readable.
	maxReportedRowErrors = 100
)

type importItem struct {
	rowIndex   int
	employeeID int64
	date       time.Time
	fields     ShiftFields
}

// BulkImport reconciles a full upload against the live table: missing rows
// are created, differing rows are updated, identical rows are skipped.
// Unknown employees and unparseable rows are rejected one by one before any
// write. Each batch is its own transaction; when a batch fails, its rows
// are reported failed and the remaining batches still run.
func (s *service) BulkImport(ctx context.Context, req BulkImportRequest) (ImportSummary, error) {
	if len(req.Rows) == 0 {
		return ImportSummary{}, shifterrors.ErrEmptyImport
	}

	batchSize := req.BatchSize
	if batchSize < 1 {
		batchSize = defaultImportBatchSize
	}
	if batchSize > maxImportBatchSize {
		batchSize = maxImportBatchSize
	}

	summary := ImportSummary{Total: len(req.Rows)}

	items := make([]importItem, 0, len(req.Rows))
	for i, row := range req.Rows {
		date, err := parseShiftDate(row.ShiftDate)
		if err != nil {
			summary.Errors = append(summary.Errors, ImportRowError{RowIndex: i, Message: errorMessage(err)})
			continue
		}
		if _, err := parseTimeOfDay(row.StartTime); err != nil {
			summary.Errors = append(summary.Errors, ImportRowError{RowIndex: i, Message: errorMessage(err)})
			continue
		}
		if _, err := parseTimeOfDay(row.EndTime); err != nil {
			summary.Errors = append(summary.Errors, ImportRowError{RowIndex: i, Message: errorMessage(err)})
			continue
		}
		items = append(items, importItem{
			rowIndex:   i,
			employeeID: row.EmployeeID,
			date:       date,
			fields:     row.ShiftFields,
		})
	}

	known, err := s.knownEmployees(ctx, items)
	if err != nil {
		return ImportSummary{}, err
	}

	valid := items[:0]
	for _, item := range items {
		if _, ok := known[item.employeeID]; !ok {
			summary.Errors = append(summary.Errors, ImportRowError{
				RowIndex: item.rowIndex,
				Message:  errorMessage(shifterrors.ErrEmployeeNotFound),
			})
			continue
		}
		valid = append(valid, item)
	}

	for start := 0; start < len(valid); start += batchSize {
		end := start + batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		created, updated, skipped, err := s.importBatch(ctx, batch)
		if err != nil {
			// the whole batch rolled back; report every row in it
			msg := errorMessage(err)
			for _, item := range batch {
				summary.Errors = append(summary.Errors, ImportRowError{RowIndex: item.rowIndex, Message: msg})
			}
			s.logger.Error("import batch failed",
				zap.Int("batch_start", start),
				zap.Int("batch_size", len(batch)),
				zap.Error(err),
			)
			continue
		}

		summary.Created += created
		summary.Updated += updated
		summary.Skipped += skipped
	}

	summary.Failed = len(summary.Errors)
	if len(summary.Errors) > maxReportedRowErrors {
		summary.Errors = summary.Errors[:maxReportedRowErrors]
	}
	s.logger.Info("bulk import finished",
		zap.Int("total", summary.Total),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *service) knownEmployees(ctx context.Context, items []importItem) (map[int64]struct{}, error) {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.employeeID]; ok {
			continue
		}
		seen[item.employeeID] = struct{}{}
		ids = append(ids, item.employeeID)
	}
	return s.repo.FindEmployeeIDs(ctx, ids)
}

func (s *service) importBatch(ctx context.Context, batch []importItem) (created, updated, skipped int, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		for _, item := range batch {
			existing, err := qtx.FindByEmployeeAndDate(ctx, item.employeeID, item.date)
			switch {
			case err == nil:
				before := existing.snapshot()
				if err := applyFields(existing, item.fields); err != nil {
					return err
				}
				version, err := s.tracker.RecordShiftChange(ctx, tx, history.ChangeUpdate, before, existing.snapshot())
				if err != nil {
					return mapWriteError(err)
				}
				if version == 0 {
					skipped++
					continue
				}
				if err := qtx.Update(ctx, existing); err != nil {
					return mapWriteError(err)
				}
				updated++

			case errors.Is(err, gorm.ErrRecordNotFound):
				row := &Shift{EmployeeID: item.employeeID, ShiftDate: item.date}
				if err := applyFields(row, item.fields); err != nil {
					return err
				}
				if err := qtx.Create(ctx, row); err != nil {
					return mapWriteError(err)
				}
				if _, err := s.tracker.RecordShiftChange(ctx, tx, history.ChangeInsert, nil, row.snapshot()); err != nil {
					return mapWriteError(err)
				}
				created++

			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, 0, err
	}
	return created, updated, skipped, nil
}

func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

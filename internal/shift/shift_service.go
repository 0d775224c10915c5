package shift

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-shift-admin/internal/events"
	"go-shift-admin/internal/history"
	"go-shift-admin/internal/messaging/kafka"
	"go-shift-admin/internal/shared/contextutil"
	shifterrors "go-shift-admin/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Update(ctx context.Context, id int64, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (ShiftResponse, error)
	GetCalendar(ctx context.Context, q CalendarQuery) (CalendarResponse, CalendarMeta, error)
	GetTable(ctx context.Context, q TableQuery) ([]ShiftResponse, int64, error)
	BulkEdit(ctx context.Context, req BulkEditRequest) (BulkEditSummary, error)
	BulkImport(ctx context.Context, req BulkImportRequest) (ImportSummary, error)

	// ApplyRestore satisfies history.ShiftRestorer: a restore is just an
	// update whose values happen to come from the log.
	ApplyRestore(ctx context.Context, shiftID int64, fields history.RestoredShiftFields) error
}

// CalendarMeta reports roster paging for the calendar projection.
type CalendarMeta struct {
	Total    int64 `json:"total"`
	HasMore  bool  `json:"hasMore"`
	NextPage int   `json:"nextPage"`
	PageSize int   `json:"pageSize"`
}

type service struct {
	db      *gorm.DB
	repo    Repository
	tracker history.Tracker
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	tracker history.Tracker,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{db: db, repo: repo, tracker: tracker, outbox: outbox, logger: l}
}

func parseShiftDate(raw string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, shifterrors.ErrInvalidShiftDate
	}
	return d, nil
}

func parseTimeOfDay(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", *raw)
	if err != nil {
		return nil, shifterrors.ErrInvalidTimeOfDay
	}
	return &t, nil
}

// applyFields writes the tracked field set onto the row. Returns an error
// only for unparseable time strings.
func applyFields(row *Shift, f ShiftFields) error {
	start, err := parseTimeOfDay(f.StartTime)
	if err != nil {
		return err
	}
	end, err := parseTimeOfDay(f.EndTime)
	if err != nil {
		return err
	}

	row.ShiftCode = f.ShiftCode
	row.StartTime = start
	row.EndTime = end
	row.IsHoliday = f.IsHoliday
	row.IsPaidLeave = f.IsPaidLeave
	row.IsRemote = f.IsRemote
	return nil
}

func (s *service) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	date, err := parseShiftDate(req.ShiftDate)
	if err != nil {
		return ShiftResponse{}, err
	}

	row := &Shift{
		EmployeeID: req.EmployeeID,
		ShiftDate:  date,
	}
	if err := applyFields(row, req.ShiftFields); err != nil {
		return ShiftResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.Create(ctx, row); err != nil {
			return mapWriteError(err)
		}

		version, err := s.tracker.RecordShiftChange(ctx, tx, history.ChangeInsert, nil, row.snapshot())
		if err != nil {
			return mapWriteError(err)
		}

		return s.enqueueShiftEvent(ctx, tx, row, history.ChangeInsert, version)
	})
	if err != nil {
		return ShiftResponse{}, err
	}

	s.logger.Info("shift created",
		zap.Int64("shift_id", row.ID),
		zap.Int64("employee_id", row.EmployeeID),
		zap.String("shift_date", req.ShiftDate),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateShiftRequest) (ShiftResponse, error) {
	var updated *Shift

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		row, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shifterrors.ErrShiftNotFound
			}
			return err
		}

		before := row.snapshot()
		if err := applyFields(row, req.ShiftFields); err != nil {
			return err
		}

		if err := qtx.Update(ctx, row); err != nil {
			return mapWriteError(err)
		}

		version, err := s.tracker.RecordShiftChange(ctx, tx, history.ChangeUpdate, before, row.snapshot())
		if err != nil {
			return mapWriteError(err)
		}
		if version == 0 {
			// nothing tracked changed, nothing to announce
			updated = row
			return nil
		}

		updated = row
		return s.enqueueShiftEvent(ctx, tx, row, history.ChangeUpdate, version)
	})
	if err != nil {
		return ShiftResponse{}, err
	}

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		row, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shifterrors.ErrShiftNotFound
			}
			return err
		}

		before := row.snapshot()

		// the history record goes in first, then the row goes away
		version, err := s.tracker.RecordShiftChange(ctx, tx, history.ChangeDelete, before, nil)
		if err != nil {
			return mapWriteError(err)
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return mapWriteError(err)
		}

		return s.enqueueShiftEvent(ctx, tx, row, history.ChangeDelete, version)
	})
}

func (s *service) GetByID(ctx context.Context, id int64) (ShiftResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

// ApplyRestore re-applies a historical field set through the ordinary
// update path, so the restore itself lands in the log as a new version.
func (s *service) ApplyRestore(ctx context.Context, shiftID int64, fields history.RestoredShiftFields) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		row, err := qtx.FindByID(ctx, shiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shifterrors.ErrShiftNotFound
			}
			return err
		}

		before := row.snapshot()

		row.ShiftCode = fields.ShiftCode
		row.StartTime = fields.StartTime
		row.EndTime = fields.EndTime
		row.IsHoliday = fields.IsHoliday
		row.IsPaidLeave = fields.IsPaidLeave
		row.IsRemote = fields.IsRemote

		if err := qtx.Update(ctx, row); err != nil {
			return mapWriteError(err)
		}

		version, err := s.tracker.RecordShiftChange(ctx, tx, history.ChangeUpdate, before, row.snapshot())
		if err != nil {
			return mapWriteError(err)
		}
		if version == 0 {
			// the live row already matches the restored state
			return nil
		}

		return s.enqueueShiftEvent(ctx, tx, row, history.ChangeUpdate, version)
	})
}

func (s *service) enqueueShiftEvent(ctx context.Context, tx *gorm.DB, row *Shift, op history.ChangeType, version int) error {
	evt := events.ShiftChangedEvent{
		EventType:  "shift.changed",
		ShiftID:    row.ID,
		EmployeeID: row.EmployeeID,
		ShiftDate:  row.ShiftDate.Format("2006-01-02"),
		ChangeType: string(op),
		Version:    version,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "shift",
		AggregateID:   strconv.FormatInt(row.ID, 10),
		EventType:     evt.EventType,
		Topic:         events.ShiftChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	employeeerrors "go-shift-admin/internal/employee/errors"
	"go-shift-admin/internal/events"
	"go-shift-admin/internal/history"
	"go-shift-admin/internal/messaging/kafka"
	"go-shift-admin/internal/shared/contextutil"
	"go-shift-admin/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// EmployeeOptionsKey caches the dropdown roster. Invalidated on every
// employee write, both locally and by the employee.changed consumer.
const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64, asOf *time.Time) (EmployeeResponse, error)
	List(ctx context.Context, filter ListFilter, page, pageSize int) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	InvalidateOptionsCache(ctx context.Context)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	historyRepo history.Repository
	tracker     history.Tracker
	counter     counter.Repository
	outbox      kafka.OutboxRepository
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	historyRepo history.Repository,
	tracker history.Tracker,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		historyRepo: historyRepo,
		tracker:     tracker,
		counter:     counterRepo,
		outbox:      outbox,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	return &d, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	assignment, err := parseDate(req.AssignmentDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	code := req.EmployeeCode
	if code == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
		if err != nil {
			s.logger.Error("generate employee code failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		code = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		EmployeeCode:   code,
		Name:           req.Name,
		NameKana:       req.NameKana,
		GroupID:        req.GroupID,
		RoleID:         req.RoleID,
		PositionID:     req.PositionID,
		AssignmentDate: assignment,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.Create(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}

		version, err := s.tracker.RecordEmployeeChange(ctx, tx, history.ChangeInsert, nil, empl.snapshot())
		if err != nil {
			return err
		}

		return s.enqueueEmployeeEvent(ctx, tx, empl.ID, history.ChangeInsert, version)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.InvalidateOptionsCache(ctx)

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	assignment, err := parseDate(req.AssignmentDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	termination, err := parseDate(req.TerminationDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var updated *Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		before := empl.snapshot()

		empl.Name = req.Name
		empl.NameKana = req.NameKana
		empl.GroupID = req.GroupID
		empl.RoleID = req.RoleID
		empl.PositionID = req.PositionID
		empl.AssignmentDate = assignment
		empl.TerminationDate = termination

		if err := qtx.Update(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}

		version, err := s.tracker.RecordEmployeeChange(ctx, tx, history.ChangeUpdate, before, empl.snapshot())
		if err != nil {
			return err
		}

		updated = empl
		return s.enqueueEmployeeEvent(ctx, tx, empl.ID, history.ChangeUpdate, version)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.InvalidateOptionsCache(ctx)

	s.logger.Info("employee updated", zap.Int64("employee_id", id))
	return mapToResponse(*updated), nil
}

// Delete removes the live row. History survives: the delta log keeps its
// versions and the tracker closes the current name record on the way out.
func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		before := empl.snapshot()

		// the history record goes in first, then the row goes away
		version, err := s.tracker.RecordEmployeeChange(ctx, tx, history.ChangeDelete, before, nil)
		if err != nil {
			return err
		}

		if err := qtx.Delete(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		return s.enqueueEmployeeEvent(ctx, tx, id, history.ChangeDelete, version)
	})
	if err != nil {
		return err
	}

	s.InvalidateOptionsCache(ctx)

	s.logger.Info("employee deleted", zap.Int64("employee_id", id))
	return nil
}

// GetByID returns the employee; with asOf set, the display name is the one
// that was valid on that date, resolved from the SCD.
func (s *service) GetByID(ctx context.Context, id int64, asOf *time.Time) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*empl)

	if asOf != nil {
		rec, err := s.historyRepo.FindNameRecordAt(ctx, id, *asOf)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return EmployeeResponse{}, err
			}
			// no record that far back; the current name stands
		} else {
			resp.Name = rec.Name
			resp.NameKana = rec.NameKana
		}
	}
	return resp, nil
}

func (s *service) List(ctx context.Context, filter ListFilter, page, pageSize int) ([]EmployeeResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(rows), total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses a cold-cache stampede into one query.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(rows))
		for i, r := range rows {
			resp[i] = EmployeeOption{ID: r.ID, Name: r.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) InvalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("invalidate employee options cache failed",
			zap.String("key", EmployeeOptionsKey),
			zap.Error(err),
		)
	}
}

func (s *service) enqueueEmployeeEvent(ctx context.Context, tx *gorm.DB, employeeID int64, op history.ChangeType, version int) error {
	if s.outbox == nil {
		return nil
	}

	evt := events.EmployeeChangedEvent{
		EventType:  "employee.changed",
		EmployeeID: employeeID,
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
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(employeeID, 10),
		EventType:     evt.EventType,
		Topic:         events.EmployeeChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const recentChangesLimit = 10

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context, today time.Time) (StatsResponse, error)
	GetTodayOverview(ctx context.Context, date time.Time) ([]DayShiftResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

// GetStats assembles the landing-page numbers: roster size, today's duty
// and remote counts, and the latest entries of the shift change log.
func (s *service) GetStats(ctx context.Context, today time.Time) (StatsResponse, error) {
	var res StatsResponse
	var err error

	if res.TotalEmployees, err = s.repo.CountEmployees(ctx); err != nil {
		return StatsResponse{}, err
	}
	if res.ActiveEmployees, err = s.repo.CountActiveEmployees(ctx, today); err != nil {
		return StatsResponse{}, err
	}
	if res.TotalGroups, err = s.repo.CountGroups(ctx); err != nil {
		return StatsResponse{}, err
	}
	if res.TodayWorking, err = s.repo.CountWorkingShifts(ctx, today); err != nil {
		return StatsResponse{}, err
	}
	if res.TodayRemote, err = s.repo.CountRemoteShifts(ctx, today); err != nil {
		return StatsResponse{}, err
	}

	changes, err := s.repo.RecentShiftChanges(ctx, recentChangesLimit)
	if err != nil {
		return StatsResponse{}, err
	}
	res.RecentChanges = make([]RecentChangeResponse, len(changes))
	for i, row := range changes {
		res.RecentChanges[i] = mapRecentChange(row)
	}

	return res, nil
}

func (s *service) GetTodayOverview(ctx context.Context, date time.Time) ([]DayShiftResponse, error) {
	rows, err := s.repo.ListDayShifts(ctx, date)
	if err != nil {
		return nil, err
	}

	res := make([]DayShiftResponse, len(rows))
	for i, row := range rows {
		res[i] = mapDayShift(row)
	}
	return res, nil
}

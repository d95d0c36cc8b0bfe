package screen

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/baobabplus/application-agent-services/internal/employee"
	"github.com/baobabplus/application-agent-services/internal/report"
	"github.com/baobabplus/application-agent-services/internal/task"
)

//go:generate mockgen -source=screen_service.go -destination=mock/screen_service_mock.go -package=mock
type Service interface {
	// ComposeHomeSummary builds the homepage payload. When no report is
	// in progress it returns the zero-valued summary, never an error.
	ComposeHomeSummary(ctx context.Context, ectx employee.Context) (HomePayload, error)

	// ComposeTasks builds only the task metadata block.
	ComposeTasks(ctx context.Context, ectx employee.Context) (TasksBlock, error)
}

type service struct {
	reports  report.Service
	tasks    task.Service
	cache    redis.Cmdable
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewService wires the composer. cache may be nil, in which case every
// request recomputes the payload.
func NewService(reports report.Service, tasks task.Service, cache redis.Cmdable, cacheTTL time.Duration) Service {
	return &service{
		reports:  reports,
		tasks:    tasks,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func cacheKey(employeeID int) string {
	return fmt.Sprintf("homepage:summary:%d", employeeID)
}

func (s *service) ComposeHomeSummary(ctx context.Context, ectx employee.Context) (HomePayload, error) {
	if s.cache != nil {
		if payload, ok := s.fromCache(ctx, ectx.EmployeeID); ok {
			return payload, nil
		}
	}

	// coalesce concurrent homepage loads for the same employee into a
	// single upstream round-trip
	v, err, _ := s.group.Do(cacheKey(ectx.EmployeeID), func() (any, error) {
		payload, err := s.compose(ctx, ectx)
		if err != nil {
			return HomePayload{}, err
		}
		if s.cache != nil {
			s.toCache(ctx, ectx.EmployeeID, payload)
		}
		return payload, nil
	})
	if err != nil {
		return HomePayload{}, err
	}
	return v.(HomePayload), nil
}

func (s *service) compose(ctx context.Context, ectx employee.Context) (HomePayload, error) {
	summary, err := s.reports.PeriodSummary(ctx, ectx, report.PeriodCurrent)
	if err != nil {
		return HomePayload{}, err
	}

	tasks, err := s.ComposeTasks(ctx, ectx)
	if err != nil {
		return HomePayload{}, err
	}

	return HomePayload{Summary: summary, Tasks: tasks}, nil
}

func (s *service) ComposeTasks(ctx context.Context, ectx employee.Context) (TasksBlock, error) {
	counts, err := s.tasks.TaskCounts(ctx, ectx)
	if err != nil {
		return TasksBlock{}, err
	}

	return TasksBlock{
		Items: []TaskMeta{
			{
				ID:     "slow-payers",
				Label:  "Slow Payer",
				Icon:   "units-repossess-icon",
				Count:  counts.SlowPayers,
				Action: "/api/v1/employee/tasks/slow-payers",
			},
			{
				ID:     "hypercare",
				Label:  "Hypercare",
				Icon:   "hypercare-icon",
				Count:  counts.Hypercare,
				Action: "/api/v1/employee/tasks/hypercare",
			},
		},
	}, nil
}

func (s *service) fromCache(ctx context.Context, employeeID int) (HomePayload, bool) {
	raw, err := s.cache.Get(ctx, cacheKey(employeeID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("homepage cache read failed", zap.Error(err))
		}
		return HomePayload{}, false
	}

	var payload HomePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		zap.L().Warn("homepage cache entry corrupt", zap.Error(err))
		return HomePayload{}, false
	}
	return payload, true
}

func (s *service) toCache(ctx context.Context, employeeID int, payload HomePayload) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(employeeID), raw, s.cacheTTL).Err(); err != nil {
		zap.L().Warn("homepage cache write failed", zap.Error(err))
	}
}

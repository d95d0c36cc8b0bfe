package prospect

import (
	"context"

	"github.com/baobabplus/application-agent-services/internal/employee"
	"github.com/baobabplus/application-agent-services/internal/erp"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

const defaultLimit = 80

type Query struct {
	Offset int
	Limit  int
	Order  string
}

//go:generate mockgen -source=prospect_service.go -destination=mock/prospect_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, ectx employee.Context, q Query) (ListResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, ectx employee.Context, q Query) (ListResponse, error) {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	order := q.Order
	if order == "" {
		order = "create_date desc"
	} else if _, err := erp.ValidateOrder(order, erp.OrderColumns()); err != nil {
		return ListResponse{}, err
	}

	total, err := s.repo.CountByResponsible(ctx, ectx.EmployeeID)
	if err != nil {
		return ListResponse{}, err
	}

	prospects, err := s.repo.FindByResponsible(ctx, ectx.EmployeeID, q.Offset, q.Limit, order)
	if err != nil {
		return ListResponse{}, err
	}

	records := make([]Record, 0, len(prospects))
	for _, p := range prospects {
		records = append(records, Record{
			ID:         p.ID,
			ExtID:      p.ExtID,
			CreateDate: p.CreateDate.Format("2006-01-02 15:04:05"),
			State:      p.State,
		})
	}

	return ListResponse{
		Pagination: response.NewPagination(q.Offset, q.Limit, len(records), total),
		Records:    records,
	}, nil
}

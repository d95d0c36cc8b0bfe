package prospect

import (
	"context"

	"github.com/baobabplus/application-agent-services/internal/erp"
)

//go:generate mockgen -source=prospect_repo.go -destination=mock/prospect_repo_mock.go -package=mock
type Repository interface {
	FindByResponsible(ctx context.Context, employeeID, offset, limit int, order string) ([]Prospect, error)
	CountByResponsible(ctx context.Context, employeeID int) (int, error)
}

type repository struct {
	prospects erp.Model
}

func NewRepository(client *erp.Client) Repository {
	return &repository{prospects: erp.NewModel(client, "payg.prospect")}
}

func (r *repository) FindByResponsible(ctx context.Context, employeeID, offset, limit int, order string) ([]Prospect, error) {
	if limit == 0 {
		limit = -1
	}
	domain := erp.Where("responsible_employee_id", "=", employeeID)

	records, err := r.prospects.Search(ctx, domain, prospectFields, offset, limit, order)
	if err != nil {
		return nil, err
	}

	prospects := make([]Prospect, len(records))
	for i, rec := range records {
		prospects[i] = fromRecord(rec)
	}
	return prospects, nil
}

func (r *repository) CountByResponsible(ctx context.Context, employeeID int) (int, error) {
	return r.prospects.Count(ctx, erp.Where("responsible_employee_id", "=", employeeID))
}

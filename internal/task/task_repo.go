package task

import (
	"context"

	"github.com/baobabplus/application-agent-services/internal/erp"
)

// AccountQuery scopes the payg.account search to one employee's
// segmentation-selected portfolio.
type AccountQuery struct {
	EmployeeID      int
	SegmentationIDs []int
	// MinDaysOverdue/MaxDaysOverdue implement the day_late buckets.
	// Zero means unbounded on that side.
	MinDaysOverdue int
	MaxDaysOverdue int
	DisabledOnly   bool
	Offset         int
	Limit          int
	Order          string
}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	FindAccounts(ctx context.Context, q AccountQuery) ([]Account, error)
	CountAccounts(ctx context.Context, q AccountQuery) (int, error)
}

type repository struct {
	accounts erp.Model
}

func NewRepository(client *erp.Client) Repository {
	return &repository{accounts: erp.NewModel(client, "payg.account")}
}

func accountDomain(q AccountQuery) erp.Domain {
	domain := erp.Where("account_segmentation_id", "in", q.SegmentationIDs).
		And("responsible_agent_employee_id", "=", q.EmployeeID)

	if q.DisabledOnly {
		domain = domain.And("account_status", "=", "disabled")
	}
	if q.MinDaysOverdue > 0 {
		domain = domain.And("nb_days_overdue", ">", q.MinDaysOverdue)
	}
	if q.MaxDaysOverdue > 0 {
		domain = domain.And("nb_days_overdue", "<=", q.MaxDaysOverdue)
	}
	return domain
}

func (r *repository) FindAccounts(ctx context.Context, q AccountQuery) ([]Account, error) {
	limit := q.Limit
	if limit == 0 {
		limit = -1
	}

	records, err := r.accounts.Search(ctx, accountDomain(q), accountFields, q.Offset, limit, q.Order)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(records))
	for i, rec := range records {
		accounts[i] = accountFromRecord(rec)
	}
	return accounts, nil
}

func (r *repository) CountAccounts(ctx context.Context, q AccountQuery) (int, error) {
	return r.accounts.Count(ctx, accountDomain(q))
}

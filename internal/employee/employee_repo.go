package employee

import (
	"context"

	"github.com/baobabplus/application-agent-services/internal/erp"
	employeeerrors "github.com/baobabplus/application-agent-services/internal/employee/errors"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByPhone(ctx context.Context, e164 string) (Employee, error)
	FindByID(ctx context.Context, id int) (Employee, error)
	SetRefreshToken(ctx context.Context, id int, token string) error
	ClearRefreshToken(ctx context.Context, id int) error
}

type repository struct {
	model erp.Model
}

func NewRepository(client *erp.Client) Repository {
	return &repository{model: erp.NewModel(client, "hr.employee")}
}

func (r *repository) FindByPhone(ctx context.Context, e164 string) (Employee, error) {
	records, err := r.model.Search(ctx,
		erp.Where("mobile_phone", "=", e164), employeeFields, 0, 1, "")
	if err != nil {
		return Employee{}, err
	}
	if len(records) == 0 {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return fromRecord(records[0]), nil
}

func (r *repository) FindByID(ctx context.Context, id int) (Employee, error) {
	records, err := r.model.Search(ctx,
		erp.Where("id", "=", id), employeeFields, 0, 1, "")
	if err != nil {
		return Employee{}, err
	}
	if len(records) == 0 {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return fromRecord(records[0]), nil
}

func (r *repository) SetRefreshToken(ctx context.Context, id int, token string) error {
	return r.model.Write(ctx, id, map[string]any{"refresh_token": token})
}

func (r *repository) ClearRefreshToken(ctx context.Context, id int) error {
	return r.model.Write(ctx, id, map[string]any{"refresh_token": false})
}

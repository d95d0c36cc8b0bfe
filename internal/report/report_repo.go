package report

import (
	"context"
	"time"

	"github.com/baobabplus/application-agent-services/internal/erp"
)

// EventQuery narrows the incentive-event search. Exactly one of
// ReportID or the date bounds should be set; ReportID wins when both
// are present.
type EventQuery struct {
	EmployeeID int
	ReportID   int
	DateStart  time.Time
	DateEnd    time.Time
	Offset     int
	Limit      int
	Order      string
	// TypeCodes restricts to events of the listed type codes;
	// ExcludeTypeCodes is its complement (used for the "Other" bucket).
	TypeCodes        []string
	ExcludeTypeCodes []string
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FindReports(ctx context.Context, jobID, companyID int) ([]IncentiveReport, error)
	FindEvents(ctx context.Context, q EventQuery) ([]IncentiveEvent, error)
	CountEvents(ctx context.Context, q EventQuery) (int, error)
}

type repository struct {
	reports erp.Model
	events  erp.Model
}

func NewRepository(client *erp.Client) Repository {
	return &repository{
		reports: erp.NewModel(client, "incentive.report"),
		events:  erp.NewModel(client, "incentive.event"),
	}
}

func (r *repository) FindReports(ctx context.Context, jobID, companyID int) ([]IncentiveReport, error) {
	domain := erp.Where("generic_job_id", "=", jobID).
		And("company_id", "=", companyID)

	records, err := r.reports.Search(ctx, domain, reportFields, 0, -1, "start_date desc")
	if err != nil {
		return nil, err
	}

	reports := make([]IncentiveReport, len(records))
	for i, rec := range records {
		reports[i] = reportFromRecord(rec)
	}
	return reports, nil
}

func eventDomain(q EventQuery) erp.Domain {
	domain := erp.Where("beneficiary_employee_id", "=", q.EmployeeID).
		And("event_status", "in", eligibleEventStatuses)

	if len(q.TypeCodes) > 0 {
		domain = domain.And("event_type_id.name", "in", q.TypeCodes)
	}
	if len(q.ExcludeTypeCodes) > 0 {
		domain = domain.And("event_type_id.name", "not in", q.ExcludeTypeCodes)
	}

	if q.ReportID != 0 {
		// report scope takes precedence, date bounds are ignored
		return domain.And("incentive_report_id", "=", q.ReportID)
	}
	if !q.DateStart.IsZero() {
		domain = domain.And("event_date", ">=", q.DateStart.Format("2006-01-02"))
	}
	if !q.DateEnd.IsZero() {
		domain = domain.And("event_date", "<=", q.DateEnd.Format("2006-01-02"))
	}
	return domain
}

func (r *repository) FindEvents(ctx context.Context, q EventQuery) ([]IncentiveEvent, error) {
	limit := q.Limit
	if limit == 0 {
		limit = -1
	}

	records, err := r.events.Search(ctx, eventDomain(q), eventFields, q.Offset, limit, q.Order)
	if err != nil {
		return nil, err
	}

	events := make([]IncentiveEvent, len(records))
	for i, rec := range records {
		events[i] = eventFromRecord(rec)
	}
	return events, nil
}

// CountEvents runs the same filtered domain without offset/limit so
// pagination can report the full matching-set size.
func (r *repository) CountEvents(ctx context.Context, q EventQuery) (int, error) {
	return r.events.Count(ctx, eventDomain(q))
}

package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/baobabplus/application-agent-services/internal/classification"
	"github.com/baobabplus/application-agent-services/internal/employee"
	reporterrors "github.com/baobabplus/application-agent-services/internal/report/errors"
)

type DetailQuery struct {
	Category string
	Offset   int
	Limit    int
	Order    string
}

type BonusQuery struct {
	Offset    int
	Limit     int
	Order     string
	DateStart time.Time
	DateEnd   time.Time
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	// ListReports returns the employee's closed (done) reports.
	ListReports(ctx context.Context, ectx employee.Context) (ReportListResponse, error)

	// PeriodSummary resolves the current or previous report and
	// aggregates it. Absent period -> zero-valued summary, not an error.
	PeriodSummary(ctx context.Context, ectx employee.Context, period Period) (SummaryResponse, error)

	// Summary aggregates one report by id. A report outside the
	// employee's owned set yields a zero result in the same shape.
	Summary(ctx context.Context, ectx employee.Context, reportID int) (SummaryResponse, error)

	// Details builds the paginated card list for one report.
	Details(ctx context.Context, ectx employee.Context, reportID int, q DetailQuery) (DetailPage, error)

	// Bonuses is the raw validated-event listing with date filters.
	Bonuses(ctx context.Context, ectx employee.Context, q BonusQuery) (BonusPage, error)
}

type service struct {
	repo  Repository
	table *classification.Table
}

func NewService(repo Repository, table *classification.Table) Service {
	return &service{repo: repo, table: table}
}

// LatestByStatus keeps, per status, the report with the maximal
// start_date: the most recent period wins, not the most recently
// created record.
func LatestByStatus(reports []IncentiveReport) map[Status]IncentiveReport {
	latest := make(map[Status]IncentiveReport)
	for _, r := range reports {
		current, ok := latest[r.Status]
		if !ok || r.StartDate.After(current.StartDate) {
			latest[r.Status] = r
		}
	}
	return latest
}

func (s *service) ListReports(ctx context.Context, ectx employee.Context) (ReportListResponse, error) {
	reports, err := s.repo.FindReports(ctx, ectx.JobID, ectx.CompanyID)
	if err != nil {
		return ReportListResponse{}, err
	}

	records := make([]SimpleReport, 0, len(reports))
	for _, r := range reports {
		if r.Status != StatusDone {
			continue
		}
		records = append(records, SimpleReport{
			ID:        r.ID,
			StartDate: r.StartDate.Format("2006-01-02"),
			EndDate:   r.EndDate.Format("2006-01-02"),
			Action:    fmt.Sprintf("/api/v1/employee/report/%d/summary", r.ID),
		})
	}
	return ReportListResponse{Count: len(records), Records: records}, nil
}

func (s *service) PeriodSummary(ctx context.Context, ectx employee.Context, period Period) (SummaryResponse, error) {
	status, ok := StatusForPeriod(period)
	if !ok {
		return SummaryResponse{}, reporterrors.ErrInvalidPeriod
	}

	reports, err := s.repo.FindReports(ctx, ectx.JobID, ectx.CompanyID)
	if err != nil {
		return SummaryResponse{}, err
	}

	target, ok := LatestByStatus(reports)[status]
	if !ok {
		// no report in the requested state is a valid terminal answer
		return zeroSummary(), nil
	}
	return s.aggregateReport(ctx, ectx, target)
}

func (s *service) Summary(ctx context.Context, ectx employee.Context, reportID int) (SummaryResponse, error) {
	reports, err := s.repo.FindReports(ctx, ectx.JobID, ectx.CompanyID)
	if err != nil {
		return SummaryResponse{}, err
	}

	target, ok := ownedReport(reports, reportID)
	if !ok {
		// foreign report ids get the zero shape, never a 403, so the
		// response cannot be used to enumerate other employees' reports
		return zeroSummary(), nil
	}
	return s.aggregateReport(ctx, ectx, target)
}

func (s *service) aggregateReport(ctx context.Context, ectx employee.Context, rep IncentiveReport) (SummaryResponse, error) {
	events, err := s.repo.FindEvents(ctx, EventQuery{
		EmployeeID: ectx.EmployeeID,
		ReportID:   rep.ID,
	})
	if err != nil {
		return SummaryResponse{}, err
	}

	summary := s.aggregate(events)
	return SummaryResponse{
		Report: ReportContext{
			ID:        rep.ID,
			StartDate: rep.StartDate.Format("2006-01-02"),
			EndDate:   rep.EndDate.Format("2006-01-02"),
			Status:    string(rep.Status),
		},
		Summary: summary,
	}, nil
}

// aggregate buckets events by classified category, accumulating exact
// decimal sums. Categories come back sorted by descending value with
// stable first-seen order on ties, and the per-category values always
// add up to the grand total.
func (s *service) aggregate(events []IncentiveEvent) CategorySummary {
	type bucket struct {
		category classification.Category
		sum      decimal.Decimal
	}

	var (
		order    []string
		buckets  = make(map[string]*bucket)
		total    = decimal.Zero
		currency string
	)

	for _, ev := range events {
		value := decimal.NewFromFloat(ev.Value)
		total = total.Add(value)
		if currency == "" {
			currency = ev.Currency.DisplayName
		}

		cat := s.table.Lookup(ev.EventType.DisplayName)
		b, ok := buckets[cat.Code]
		if !ok {
			b = &bucket{category: cat}
			buckets[cat.Code] = b
			order = append(order, cat.Code)
		}
		b.sum = b.sum.Add(value)
	}

	categories := make([]CategoryValue, 0, len(order))
	for _, code := range order {
		b := buckets[code]
		categories = append(categories, CategoryValue{
			Name:  b.category.Label,
			Code:  b.category.Code,
			Color: b.category.Color,
			Value: b.sum.InexactFloat64(),
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Value > categories[j].Value
	})

	return CategorySummary{
		Categories: categories,
		TotalValue: total.InexactFloat64(),
		Currency:   currency,
	}
}

func zeroSummary() SummaryResponse {
	return SummaryResponse{
		Report: ReportContext{},
		Summary: CategorySummary{
			Categories: []CategoryValue{},
			TotalValue: 0,
		},
	}
}

func ownedReport(reports []IncentiveReport, reportID int) (IncentiveReport, bool) {
	for _, r := range reports {
		if r.ID == reportID {
			return r, true
		}
	}
	return IncentiveReport{}, false
}

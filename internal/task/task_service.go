package task

import (
	"context"
	"fmt"
	"time"

	"github.com/baobabplus/application-agent-services/internal/employee"
	"github.com/baobabplus/application-agent-services/internal/erp"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
	taskerrors "github.com/baobabplus/application-agent-services/internal/task/errors"
)

// day_late bucket boundary: new <= 15 days, urgent > 15. The buckets
// are disjoint and cover every returned account.
const dayLateBoundary = 15

const (
	DayLateNew    = "new"
	DayLateUrgent = "urgent"
)

const (
	colorNeutral = "#757575"
	colorAmber   = "#F9A825"
	colorOrange  = "#EF6C00"
	colorRed     = "#C62828"
)

type PageQuery struct {
	DayLate string
	Offset  int
	Limit   int
	Order   string
}

// Options carries the segmentation sets and severity thresholds from
// configuration. Now is injectable for deterministic tests.
type Options struct {
	SlowPayerSegmentations []int
	HypercareSegmentations []int
	SlowPayerMidDays       int
	SlowPayerRedDays       int
	HypercareDays          int
	HypercareAmberMax      int
	HypercareRedMin        int
	Now                    func() time.Time
}

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	// SlowPayers lists overdue accounts in the employee's portfolio as
	// alert cards, optionally narrowed to one day_late bucket.
	SlowPayers(ctx context.Context, ectx employee.Context, q PageQuery) (Page, error)

	// Hypercare lists disabled accounts still inside their hypercare
	// window, with a days-left countdown per card.
	Hypercare(ctx context.Context, ectx employee.Context, q PageQuery) (Page, error)

	// TaskCounts returns the unfiltered sizes of both task lists.
	TaskCounts(ctx context.Context, ectx employee.Context) (Counts, error)
}

type service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{repo: repo, opts: opts}
}

func (s *service) SlowPayers(ctx context.Context, ectx employee.Context, q PageQuery) (Page, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	order, err := resolveAccountOrder(q.Order, "nb_days_overdue desc")
	if err != nil {
		return Page{}, err
	}

	aq := AccountQuery{
		EmployeeID:      ectx.EmployeeID,
		SegmentationIDs: s.opts.SlowPayerSegmentations,
		Offset:          q.Offset,
		Limit:           q.Limit,
		Order:           order,
	}
	switch q.DayLate {
	case "":
	case DayLateNew:
		aq.MaxDaysOverdue = dayLateBoundary
	case DayLateUrgent:
		aq.MinDaysOverdue = dayLateBoundary
	default:
		return Page{}, taskerrors.ErrInvalidDayLateFilter
	}

	// header badge counts the whole portfolio, not the filtered bucket
	total, err := s.repo.CountAccounts(ctx, AccountQuery{
		EmployeeID:      ectx.EmployeeID,
		SegmentationIDs: s.opts.SlowPayerSegmentations,
	})
	if err != nil {
		return Page{}, err
	}

	accounts, err := s.repo.FindAccounts(ctx, aq)
	if err != nil {
		return Page{}, err
	}

	cards := make([]Card, 0, len(accounts))
	for _, acc := range accounts {
		cards = append(cards, s.slowPayerCard(acc))
	}

	return Page{
		Icon:       "units-repossess-icon",
		TotalValue: float64(total),
		Title:      "Slow Payer",
		Pagination: response.NewPagination(q.Offset, q.Limit, len(cards), total),
		Filters: []Filter{
			{Value: DayLateNew, Param: "day_late", Label: "New"},
			{Value: DayLateUrgent, Param: "day_late", Label: "Urgent"},
		},
		Cards: cards,
	}, nil
}

func (s *service) slowPayerCard(acc Account) Card {
	alert := fmt.Sprintf("%d days late in payment", acc.DaysOverdue)
	color := s.overdueColor(acc.DaysOverdue)

	return Card{
		ID: fmt.Sprintf("account-%d", acc.ID),
		Collapsed: CollapsedCard{
			Icon:      "units-repossess-icon",
			IconColor: color,
			Rows: []Row{
				{Label: "Client", Value: acc.Client.DisplayName},
				{Label: "Account", Value: acc.ExtID},
			},
			AlertText:      alert,
			AlertTextColor: color,
		},
		Expanded: ExpandedCard{
			Rows: []Row{
				{Label: "Client", Value: acc.Client.DisplayName},
				{Label: "Account", Value: acc.ExtID},
				{Label: "Registered", Value: acc.CreateDate.Format("2006-01-02")},
				{Label: "Days overdue", Value: fmt.Sprintf("%d", acc.DaysOverdue)},
			},
		},
	}
}

// overdueColor buckets the actual overdue day count into the three
// severity tiers. Thresholds come from configuration.
func (s *service) overdueColor(days int) string {
	switch {
	case days > s.opts.SlowPayerRedDays:
		return colorRed
	case days >= s.opts.SlowPayerMidDays:
		return colorOrange
	default:
		return colorAmber
	}
}

func (s *service) Hypercare(ctx context.Context, ectx employee.Context, q PageQuery) (Page, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	order, err := resolveAccountOrder(q.Order, "create_date asc")
	if err != nil {
		return Page{}, err
	}

	aq := AccountQuery{
		EmployeeID:      ectx.EmployeeID,
		SegmentationIDs: s.opts.HypercareSegmentations,
		DisabledOnly:    true,
		Offset:          q.Offset,
		Limit:           q.Limit,
		Order:           order,
	}

	total, err := s.repo.CountAccounts(ctx, AccountQuery{
		EmployeeID:      ectx.EmployeeID,
		SegmentationIDs: s.opts.HypercareSegmentations,
		DisabledOnly:    true,
	})
	if err != nil {
		return Page{}, err
	}

	accounts, err := s.repo.FindAccounts(ctx, aq)
	if err != nil {
		return Page{}, err
	}

	now := s.opts.Now()
	cards := make([]Card, 0, len(accounts))
	for _, acc := range accounts {
		cards = append(cards, s.hypercareCard(acc, now))
	}

	return Page{
		Icon:       "hypercare-icon",
		TotalValue: float64(total),
		Title:      "Hypercare",
		Pagination: response.NewPagination(q.Offset, q.Limit, len(cards), total),
		Filters:    []Filter{},
		Cards:      cards,
	}, nil
}

func (s *service) hypercareCard(acc Account, now time.Time) Card {
	end := acc.CreateDate.AddDate(0, 0, s.opts.HypercareDays)
	daysLeft := int(end.Sub(now).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}

	var color string
	switch {
	case daysLeft < s.opts.HypercareAmberMax:
		color = colorAmber
	case daysLeft > s.opts.HypercareRedMin:
		color = colorRed
	default:
		color = colorNeutral
	}

	return Card{
		ID: fmt.Sprintf("account-%d", acc.ID),
		Collapsed: CollapsedCard{
			Icon:      "hypercare-icon",
			IconColor: color,
			Rows: []Row{
				{Label: "Client", Value: acc.Client.DisplayName},
				{Label: "Account", Value: acc.ExtID},
			},
			AlertText:      fmt.Sprintf("%d days to hypercare end", daysLeft),
			AlertTextColor: color,
		},
		Expanded: ExpandedCard{
			Rows: []Row{
				{Label: "Client", Value: acc.Client.DisplayName},
				{Label: "Account", Value: acc.ExtID},
				{Label: "Registered", Value: acc.CreateDate.Format("2006-01-02")},
				{Label: "Hypercare end", Value: end.Format("2006-01-02")},
			},
		},
	}
}

func (s *service) TaskCounts(ctx context.Context, ectx employee.Context) (Counts, error) {
	slow, err := s.repo.CountAccounts(ctx, AccountQuery{
		EmployeeID:      ectx.EmployeeID,
		SegmentationIDs: s.opts.SlowPayerSegmentations,
	})
	if err != nil {
		return Counts{}, err
	}

	hyper, err := s.repo.CountAccounts(ctx, AccountQuery{
		EmployeeID:      ectx.EmployeeID,
		SegmentationIDs: s.opts.HypercareSegmentations,
		DisabledOnly:    true,
	})
	if err != nil {
		return Counts{}, err
	}

	return Counts{SlowPayers: slow, Hypercare: hyper}, nil
}

func resolveAccountOrder(order, fallback string) (string, error) {
	if order == "" {
		return fallback, nil
	}
	return erp.ValidateOrder(order, erp.OrderColumns("nb_days_overdue"))
}

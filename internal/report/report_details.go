package report

import (
	"context"
	"fmt"

	"github.com/baobabplus/application-agent-services/internal/classification"
	"github.com/baobabplus/application-agent-services/internal/employee"
	reporterrors "github.com/baobabplus/application-agent-services/internal/report/errors"
	"github.com/baobabplus/application-agent-services/internal/erp"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

const (
	defaultDetailLimit = 10
	defaultBonusLimit  = 80
	defaultEventOrder  = "event_date desc"
)

func (s *service) Details(ctx context.Context, ectx employee.Context, reportID int, q DetailQuery) (DetailPage, error) {
	if q.Limit <= 0 {
		q.Limit = defaultDetailLimit
	}
	order, err := resolveOrder(q.Order)
	if err != nil {
		return DetailPage{}, err
	}

	reports, err := s.repo.FindReports(ctx, ectx.JobID, ectx.CompanyID)
	if err != nil {
		return DetailPage{}, err
	}

	target, ok := ownedReport(reports, reportID)
	if !ok {
		// same anti-enumeration stance as Summary: an empty page, not a 403
		return DetailPage{
			Report:     ReportContext{},
			Pagination: response.NewPagination(q.Offset, q.Limit, 0, 0),
			Filters:    []Filter{},
			Cards:      []Card{},
		}, nil
	}

	eq := EventQuery{
		EmployeeID: ectx.EmployeeID,
		ReportID:   target.ID,
		Offset:     q.Offset,
		Limit:      q.Limit,
		Order:      order,
	}
	if q.Category != "" {
		if _, known := s.table.ByCategoryCode(q.Category); !known {
			return DetailPage{}, reporterrors.ErrInvalidCategory
		}
		// classification lives here, not in the ERP, so category filters
		// are translated to event-type-code sets the ERP can evaluate.
		// That keeps the pagination total consistent with the page rows.
		if q.Category == s.table.Other().Code {
			eq.ExcludeTypeCodes = s.table.KnownCodes()
		} else {
			eq.TypeCodes = s.table.CodesFor(q.Category)
		}
	}

	total, err := s.repo.CountEvents(ctx, eq)
	if err != nil {
		return DetailPage{}, err
	}
	events, err := s.repo.FindEvents(ctx, eq)
	if err != nil {
		return DetailPage{}, err
	}

	cards := make([]Card, 0, len(events))
	filters := make([]Filter, 0, 4)
	seenFilters := make(map[string]bool)
	for _, ev := range events {
		cat := s.table.Lookup(ev.EventType.DisplayName)
		cards = append(cards, s.buildCard(ev, cat))

		if !seenFilters[cat.Code] {
			seenFilters[cat.Code] = true
			filters = append(filters, Filter{
				Value: cat.Code,
				Param: "category",
				Label: cat.Label,
			})
		}
	}

	return DetailPage{
		Report: ReportContext{
			ID:        target.ID,
			StartDate: target.StartDate.Format("2006-01-02"),
			EndDate:   target.EndDate.Format("2006-01-02"),
			Status:    string(target.Status),
		},
		Pagination: response.NewPagination(q.Offset, q.Limit, len(cards), total),
		Filters:    filters,
		Cards:      cards,
	}, nil
}

func (s *service) buildCard(ev IncentiveEvent, cat classification.Category) Card {
	rows := []Row{
		{Label: "Event Date", Value: ev.EventDate.Format("2006-01-02")},
		{Label: "Event Type", Value: ev.EventType.DisplayName},
	}
	if ev.Account.ID != 0 {
		rows = append(rows, Row{Label: "Account", Value: ev.Account.DisplayName})
	}
	rows = append(rows, Row{
		Label: "Commission",
		Value: fmt.Sprintf("%.2f %s", ev.Value, ev.Currency.DisplayName),
	})

	title := ev.Account.DisplayName
	if title == "" {
		title = ev.EventType.DisplayName
	}

	return Card{
		ID: fmt.Sprintf("event-%d", ev.ID),
		Collapsed: CollapsedCard{
			Icon:       cat.Icon,
			IconColor:  cat.Color,
			Title:      title,
			Value:      ev.Value,
			Currency:   ev.Currency.DisplayName,
			ValueColor: valueColor(ev.Value),
			Subtitle:   ev.EventDate.Format("2006-01-02"),
		},
		Expanded: ExpandedCard{Rows: rows},
	}
}

func (s *service) Bonuses(ctx context.Context, ectx employee.Context, q BonusQuery) (BonusPage, error) {
	if q.Limit <= 0 {
		q.Limit = defaultBonusLimit
	}
	order, err := resolveOrder(q.Order)
	if err != nil {
		return BonusPage{}, err
	}

	eq := EventQuery{
		EmployeeID: ectx.EmployeeID,
		DateStart:  q.DateStart,
		DateEnd:    q.DateEnd,
		Offset:     q.Offset,
		Limit:      q.Limit,
		Order:      order,
	}

	total, err := s.repo.CountEvents(ctx, eq)
	if err != nil {
		return BonusPage{}, err
	}
	events, err := s.repo.FindEvents(ctx, eq)
	if err != nil {
		return BonusPage{}, err
	}

	records := make([]BonusRecord, 0, len(events))
	for _, ev := range events {
		cat := s.table.Lookup(ev.EventType.DisplayName)
		records = append(records, BonusRecord{
			ID:        ev.ID,
			EventDate: ev.EventDate.Format("2006-01-02"),
			Value:     ev.Value,
			EventType: ev.EventType.DisplayName,
			Category:  cat.Code,
			Account:   ev.Account.DisplayName,
			Currency:  ev.Currency.DisplayName,
		})
	}

	return BonusPage{
		Pagination: response.NewPagination(q.Offset, q.Limit, len(records), total),
		Records:    records,
	}, nil
}

func resolveOrder(order string) (string, error) {
	if order == "" {
		return defaultEventOrder, nil
	}
	return erp.ValidateOrder(order, erp.OrderColumns("event_date"))
}

package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabplus/application-agent-services/internal/employee"
	"github.com/baobabplus/application-agent-services/internal/erp"
)

type fakeRepo struct {
	findAccountsFn  func(ctx context.Context, q AccountQuery) ([]Account, error)
	countAccountsFn func(ctx context.Context, q AccountQuery) (int, error)
}

func (f *fakeRepo) FindAccounts(ctx context.Context, q AccountQuery) ([]Account, error) {
	if f.findAccountsFn != nil {
		return f.findAccountsFn(ctx, q)
	}
	return nil, nil
}

func (f *fakeRepo) CountAccounts(ctx context.Context, q AccountQuery) (int, error) {
	if f.countAccountsFn != nil {
		return f.countAccountsFn(ctx, q)
	}
	return 0, nil
}

var testEmployee = employee.Context{EmployeeID: 7, JobID: 3, CompanyID: 2}

func testOptions() Options {
	return Options{
		SlowPayerSegmentations: []int{4, 5},
		HypercareSegmentations: []int{9},
		SlowPayerMidDays:       30,
		SlowPayerRedDays:       60,
		HypercareDays:          75,
		HypercareAmberMax:      17,
		HypercareRedMin:        20,
		Now: func() time.Time {
			return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSlowPayersCardsAndSeverity(t *testing.T) {
	repo := &fakeRepo{
		countAccountsFn: func(_ context.Context, q AccountQuery) (int, error) {
			// badge count is never narrowed to a bucket
			assert.Zero(t, q.MinDaysOverdue)
			assert.Zero(t, q.MaxDaysOverdue)
			return 3, nil
		},
		findAccountsFn: func(_ context.Context, q AccountQuery) ([]Account, error) {
			assert.Equal(t, []int{4, 5}, q.SegmentationIDs)
			assert.Equal(t, 7, q.EmployeeID)
			assert.Equal(t, "nb_days_overdue desc", q.Order)
			return []Account{
				{ID: 1, ExtID: "ACC-1", DaysOverdue: 8, Client: erp.Many2One{ID: 11, DisplayName: "Client A"}},
				{ID: 2, ExtID: "ACC-2", DaysOverdue: 45, Client: erp.Many2One{ID: 12, DisplayName: "Client B"}},
				{ID: 3, ExtID: "ACC-3", DaysOverdue: 70, Client: erp.Many2One{ID: 13, DisplayName: "Client C"}},
			}, nil
		},
	}
	svc := NewService(repo, testOptions())

	page, err := svc.SlowPayers(context.Background(), testEmployee, PageQuery{Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "Slow Payer", page.Title)
	assert.Equal(t, 3.0, page.TotalValue)
	require.Len(t, page.Cards, 3)

	assert.Equal(t, "account-1", page.Cards[0].ID)
	assert.Equal(t, "8 days late in payment", page.Cards[0].Collapsed.AlertText)
	assert.Equal(t, colorAmber, page.Cards[0].Collapsed.AlertTextColor)
	assert.Equal(t, colorOrange, page.Cards[1].Collapsed.AlertTextColor)
	assert.Equal(t, colorRed, page.Cards[2].Collapsed.AlertTextColor)

	require.Len(t, page.Filters, 2)
	assert.Equal(t, "new", page.Filters[0].Value)
	assert.Equal(t, "day_late", page.Filters[0].Param)
	assert.Equal(t, "urgent", page.Filters[1].Value)
}

func TestSlowPayersDayLateBuckets(t *testing.T) {
	var captured AccountQuery
	repo := &fakeRepo{
		findAccountsFn: func(_ context.Context, q AccountQuery) ([]Account, error) {
			captured = q
			return nil, nil
		},
	}
	svc := NewService(repo, testOptions())

	_, err := svc.SlowPayers(context.Background(), testEmployee, PageQuery{DayLate: DayLateNew})
	require.NoError(t, err)
	assert.Equal(t, 15, captured.MaxDaysOverdue)
	assert.Zero(t, captured.MinDaysOverdue)

	_, err = svc.SlowPayers(context.Background(), testEmployee, PageQuery{DayLate: DayLateUrgent})
	require.NoError(t, err)
	assert.Equal(t, 15, captured.MinDaysOverdue)
	assert.Zero(t, captured.MaxDaysOverdue)

	_, err = svc.SlowPayers(context.Background(), testEmployee, PageQuery{DayLate: "overdue"})
	assert.Error(t, err)
}

func TestHypercareCountdown(t *testing.T) {
	repo := &fakeRepo{
		countAccountsFn: func(_ context.Context, q AccountQuery) (int, error) {
			assert.True(t, q.DisabledOnly)
			return 3, nil
		},
		findAccountsFn: func(_ context.Context, q AccountQuery) ([]Account, error) {
			assert.Equal(t, []int{9}, q.SegmentationIDs)
			assert.True(t, q.DisabledOnly)
			return []Account{
				// 75-day window from registration, now = 2024-03-15
				{ID: 1, ExtID: "ACC-1", CreateDate: day("2024-01-10")}, // ends 2024-03-25, 9 days left
				{ID: 2, ExtID: "ACC-2", CreateDate: day("2024-01-18")}, // ends 2024-04-02, 17 days left
				{ID: 3, ExtID: "ACC-3", CreateDate: day("2024-03-01")}, // ends 2024-05-15, 60 days left
			}, nil
		},
	}
	svc := NewService(repo, testOptions())

	page, err := svc.Hypercare(context.Background(), testEmployee, PageQuery{Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "Hypercare", page.Title)
	require.Len(t, page.Cards, 3)

	assert.Equal(t, "9 days to hypercare end", page.Cards[0].Collapsed.AlertText)
	assert.Equal(t, colorAmber, page.Cards[0].Collapsed.AlertTextColor)
	assert.Equal(t, colorNeutral, page.Cards[1].Collapsed.AlertTextColor)
	assert.Equal(t, colorRed, page.Cards[2].Collapsed.AlertTextColor)
	assert.Empty(t, page.Filters)
}

func TestHypercareExpiredWindowClampsToZero(t *testing.T) {
	repo := &fakeRepo{
		findAccountsFn: func(_ context.Context, _ AccountQuery) ([]Account, error) {
			return []Account{{ID: 1, CreateDate: day("2023-01-01")}}, nil
		},
	}
	svc := NewService(repo, testOptions())

	page, err := svc.Hypercare(context.Background(), testEmployee, PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Cards, 1)
	assert.Equal(t, "0 days to hypercare end", page.Cards[0].Collapsed.AlertText)
}

func TestTaskCounts(t *testing.T) {
	repo := &fakeRepo{
		countAccountsFn: func(_ context.Context, q AccountQuery) (int, error) {
			if q.DisabledOnly {
				return 2, nil
			}
			return 5, nil
		},
	}
	svc := NewService(repo, testOptions())

	counts, err := svc.TaskCounts(context.Background(), testEmployee)
	require.NoError(t, err)
	assert.Equal(t, 5, counts.SlowPayers)
	assert.Equal(t, 2, counts.Hypercare)
}

func TestSlowPayersRejectsBadOrder(t *testing.T) {
	svc := NewService(&fakeRepo{}, testOptions())

	_, err := svc.SlowPayers(context.Background(), testEmployee, PageQuery{Order: "nb_days_overdue; drop"})
	assert.Error(t, err)
}

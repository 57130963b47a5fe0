package service

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ReportService computes the read-only views. It keeps no state between calls.
type ReportService struct {
	storage *storage.Storage
	logger  *logrus.Logger
	now     func() time.Time
}

// NewReportService creates a new ReportService using the process clock.
func NewReportService(store *storage.Storage, logger *logrus.Logger) *ReportService {
	return &ReportService{storage: store, logger: logger, now: time.Now}
}

// Summary totals the filtered expenses overall and per category. DailyAverage
// divides by the number of distinct days that have expenses.
func (s *ReportService) Summary(ctx context.Context, filter Filter) (*Summary, error) {
	expenses, err := s.retrieve(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalSpent:      decimal.Zero,
		TotalByCategory: make(map[string]decimal.Decimal),
		DailyAverage:    decimal.Zero,
		RecordsCount:    len(expenses),
	}

	days := make(map[time.Time]struct{})
	for _, e := range expenses {
		summary.TotalSpent = summary.TotalSpent.Add(e.Amount)
		summary.TotalByCategory[e.Category] = summary.TotalByCategory[e.Category].Add(e.Amount)
		days[expense.DateOnly(e.Date)] = struct{}{}
	}

	if len(days) > 0 {
		summary.DailyAverage = summary.TotalSpent.Div(decimal.NewFromInt(int64(len(days))))
	}
	return summary, nil
}

// Trend returns the per-day totals in ascending date order.
func (s *ReportService) Trend(ctx context.Context, filter Filter) (*Trend, error) {
	expenses, err := s.retrieve(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := dailyTotals(expenses)
	dates := sortedDates(totals)

	trend := &Trend{
		Dates:        make([]string, len(dates)),
		Amounts:      make([]decimal.Decimal, len(dates)),
		RecordsCount: len(expenses),
	}
	for i, d := range dates {
		trend.Dates[i] = d.Format(time.DateOnly)
		trend.Amounts[i] = totals[d]
	}
	return trend, nil
}

// Prediction multiplies the mean per-day total by 7 when period is exactly
// "week" and by 30 otherwise. The period is echoed back unchanged.
func (s *ReportService) Prediction(ctx context.Context, filter Filter, period string) (*Prediction, error) {
	expenses, err := s.retrieve(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := dailyTotals(expenses)

	avgDaily := decimal.Zero
	if len(totals) > 0 {
		sum := decimal.Zero
		for _, amount := range totals {
			sum = sum.Add(amount)
		}
		avgDaily = sum.Div(decimal.NewFromInt(int64(len(totals))))
	}

	periodDays := int64(30)
	if period == PredictionPeriodWeek {
		periodDays = 7
	}

	return &Prediction{
		PredictionPeriod: period,
		PredictedTotal:   avgDaily.Mul(decimal.NewFromInt(periodDays)),
		RecordsCount:     len(expenses),
	}, nil
}

// retrieve is the filtered retrieval shared by every report.
func (s *ReportService) retrieve(ctx context.Context, filter Filter) ([]*expense.Expense, error) {
	since := filter.Since(s.now())

	expenses, err := s.storage.Expenses.QueryByUser(ctx, filter.UserID, since)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"userID":     filter.UserID,
			"windowDays": filter.WindowDays,
		}).Error("ReportService.retrieve.QueryByUser")
		return nil, &StoreError{Op: "query expenses", Err: err}
	}
	return expenses, nil
}

func dailyTotals(expenses []*expense.Expense) map[time.Time]decimal.Decimal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, e := range expenses {
		day := expense.DateOnly(e.Date)
		totals[day] = totals[day].Add(e.Amount)
	}
	return totals
}

func sortedDates(totals map[time.Time]decimal.Decimal) []time.Time {
	dates := make([]time.Time, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return dates
}

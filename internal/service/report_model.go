package service

import "github.com/shopspring/decimal"

// PredictionPeriodWeek is the only period that selects the 7-day horizon;
// every other value, recognised or not, projects 30 days.
const PredictionPeriodWeek = "week"

// Summary is the aggregate view over the filtered expenses.
type Summary struct {
	TotalSpent      decimal.Decimal
	TotalByCategory map[string]decimal.Decimal
	DailyAverage    decimal.Decimal
	RecordsCount    int
}

// Trend holds per-day totals. Dates are ascending YYYY-MM-DD strings and
// Amounts[i] is the total for Dates[i].
type Trend struct {
	Dates        []string
	Amounts      []decimal.Decimal
	RecordsCount int
}

// Prediction is a flat extrapolation of the average daily spend; it is not a
// statistical forecast.
type Prediction struct {
	PredictionPeriod string
	PredictedTotal   decimal.Decimal
	RecordsCount     int
}

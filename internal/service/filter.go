package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Filter scopes every report. An empty UserID matches only records whose user
// id is also empty; it never means "all users".
type Filter struct {
	UserID     string
	WindowDays int
}

// Only these trailing windows enable date filtering; any other value disables it.
const (
	WindowWeek  = 7
	WindowMonth = 30
)

// ParseWindowDays reads a raw days parameter. Unparseable input yields 0, which
// disables the window like any other unsupported value.
func ParseWindowDays(raw string) int {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return days
}

// Since returns the inclusive lower date bound for the filter relative to now,
// or nil when no window applies. There is no upper bound.
func (f Filter) Since(now time.Time) *time.Time {
	if f.WindowDays != WindowWeek && f.WindowDays != WindowMonth {
		return nil
	}
	cutoff := expense.DateOnly(now).AddDate(0, 0, -f.WindowDays)
	return &cutoff
}

package service

import (
	"fmt"
	"time"
)

// Reporting periods accepted by the dashboard.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// PeriodStart computes the open-ended window start for a dashboard period:
// start of today, the most recent Monday, the first of the month, or
// January 1 of the current year.
func PeriodStart(now time.Time, period string) (time.Time, error) {
	switch period {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case PeriodWeek:
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		daysSinceMonday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -daysSinceMonday), nil
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, ErrInvalidPeriod
	}
}

// MonthWindow computes the [start, end) window for a YYYY-MM month,
// rolling December into January of the following year.
func MonthWindow(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}

	var end time.Time
	if start.Month() == time.December {
		end = time.Date(start.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	}
	return start, end, nil
}

// monthKey renders a calendar month in the budget key format.
func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

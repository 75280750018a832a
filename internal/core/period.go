package core

import (
	"fmt"
	"regexp"
	"time"
)

var yearMonthToken = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ResolvePeriod maps a named period token onto concrete day boundaries around
// now, in now's location. Supported tokens: "today", "week" (Sunday through
// Saturday containing now), "month", "year" and "YYYY-MM". ok is false for
// "all" and anything unrecognized, meaning no filtering applies.
func ResolvePeriod(token string, now time.Time) (from, to time.Time, ok bool) {
	loc := now.Location()
	switch token {
	case "today":
		return now, now, true
	case "week":
		start := now.AddDate(0, 0, -int(now.Weekday()))
		return start, start.AddDate(0, 0, 6), true
	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(0, 1, -1), true
	case "year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc),
			time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, loc), true
	}
	if yearMonthToken.MatchString(token) {
		if first, err := time.ParseInLocation("2006-01", token, loc); err == nil {
			return first, first.AddDate(0, 1, -1), true
		}
	}
	return time.Time{}, time.Time{}, false
}

// FilterByDateRange returns the transactions dated inside [from, to], with
// both boundaries widened to whole days in their own locations (from becomes
// 00:00:00, to becomes the last instant of its day) and both ends inclusive.
// This comparison is the only inclusion rule in the engine; every named
// period resolves down to it. An inverted range is a programming error, not a
// data problem, and is reported as such.
func FilterByDateRange(txs []Transaction, from, to time.Time) ([]Transaction, error) {
	from = startOfDay(from)
	to = endOfDay(to)
	if from.After(to) {
		return nil, fmt.Errorf("invalid date range: from %s is after to %s",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.Date.Before(from) && !tx.Date.After(to) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// FilterByPeriod narrows transactions to a named period. "all" and unknown
// tokens are the identity filter.
func FilterByPeriod(txs []Transaction, token string, now time.Time) ([]Transaction, error) {
	from, to, ok := ResolvePeriod(token, now)
	if !ok {
		return txs, nil
	}
	return FilterByDateRange(txs, from, to)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

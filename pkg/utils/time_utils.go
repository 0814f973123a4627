package utils

import "time"

// Trip dates travel the API as date-only strings ("2025-09-24"); hours are
// irrelevant to the date-range rule, so everything normalizes to UTC midnight.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

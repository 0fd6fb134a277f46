package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

type DeadlineStatus string

const (
	DeadlineNormal   DeadlineStatus = "normal"
	DeadlineWarning  DeadlineStatus = "warning"
	DeadlineCritical DeadlineStatus = "critical"
	DeadlineLate     DeadlineStatus = "late"
)

type Countdown struct {
	DaysLeft int            `json:"daysLeft"`
	Status   DeadlineStatus `json:"status"`
}

// CountdownTo compares the calendar date target (YYYY-MM-DD) with the
// calendar day of now in now's location.
func CountdownTo(target string, now time.Time) (Countdown, error) {
	loc := now.Location()
	day, err := time.ParseInLocation(DateLayout, target, loc)
	if err != nil {
		return Countdown{}, fmt.Errorf("invalid date %q: %w", target, err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	// Hours/24 is off by one across DST shifts; compare dates in UTC instead.
	diff := int(toUTCDate(day).Sub(toUTCDate(today)).Hours() / 24)

	c := Countdown{DaysLeft: diff}
	switch {
	case diff < 0:
		c.Status = DeadlineLate
	case diff <= 5:
		c.Status = DeadlineCritical
	case diff <= 10:
		c.Status = DeadlineWarning
	default:
		c.Status = DeadlineNormal
	}
	return c, nil
}

func toUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

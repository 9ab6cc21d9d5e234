package domain

import (
	"strings"
	"time"
)

// ISO 8601 weekday constants
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

var weekdayNumbers = map[string]int{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

// ParseWeekday converts a weekday name (full or three-letter, any case)
// to its ISO 8601 number.
func ParseWeekday(name string) (int, error) {
	day, ok := weekdayNumbers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrInvalidWeekday
	}
	return day, nil
}

// ParseClock validates a "HH:MM" time-of-day and returns hour and minute.
func ParseClock(value string) (hour, minute int, err error) {
	t, perr := time.Parse("15:04", strings.TrimSpace(value))
	if perr != nil {
		return 0, 0, ErrInvalidClock
	}
	return t.Hour(), t.Minute(), nil
}

// ParseBirthday validates a "MM-DD" month-day.
func ParseBirthday(value string) (string, error) {
	value = strings.TrimSpace(value)
	if _, err := time.Parse("01-02", value); err != nil {
		return "", ErrInvalidBirthday
	}
	return value, nil
}

// ISOWeekday converts a time.Weekday (Sunday=0) to ISO 8601 (Monday=1).
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return Sunday
	}
	return int(d)
}

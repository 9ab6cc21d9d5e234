package domain

import "time"

// NextWeekly returns the next occurrence of the ISO weekday at "HH:MM"
// strictly after now, computed in loc. If today is the target weekday and the
// time has not yet passed, it fires today; otherwise it rolls forward up to
// seven days.
func NextWeekly(now time.Time, weekday int, clock string, loc *time.Location) (time.Time, error) {
	if weekday < Monday || weekday > Sunday {
		return time.Time{}, ErrInvalidWeekday
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	local := now.In(loc)
	daysAhead := (weekday - ISOWeekday(local.Weekday()) + 7) % 7
	candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	candidate = candidate.AddDate(0, 0, daysAhead)
	if !candidate.After(local) {
		candidate = candidate.AddDate(0, 0, 7)
	}

	return candidate, nil
}

// NextDaily returns the next occurrence of "HH:MM" strictly after now,
// computed in loc: today if the time has not yet passed, else tomorrow.
func NextDaily(now time.Time, clock string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	local := now.In(loc)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !candidate.After(local) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate, nil
}

// ValidateTimezone checks that name is a known IANA timezone.
func ValidateTimezone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}

// Location resolves an IANA timezone name, falling back to UTC when the
// stored value cannot be loaded.
func Location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

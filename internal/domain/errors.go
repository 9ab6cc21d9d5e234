package domain

import "errors"

var (
	// ErrEmptyRoster is returned when no opted-in members exist to pick from.
	ErrEmptyRoster = errors.New("no eligible members in the roster")

	// ErrInvalidWeekday is returned for a weekday name that cannot be parsed.
	ErrInvalidWeekday = errors.New("invalid weekday name")

	// ErrInvalidClock is returned for a time-of-day that is not HH:MM.
	ErrInvalidClock = errors.New("invalid time, expected HH:MM")

	// ErrInvalidBirthday is returned for a birthday that is not MM-DD.
	ErrInvalidBirthday = errors.New("invalid birthday, expected MM-DD")

	// ErrInvalidTimezone is returned for an unknown IANA timezone name.
	ErrInvalidTimezone = errors.New("invalid timezone name")

	// ErrMemberExists is returned when adding a member already in the roster.
	ErrMemberExists = errors.New("member is already in the roster")

	// ErrMemberNotFound is returned when a member is not in the roster.
	ErrMemberNotFound = errors.New("member not found in the roster")
)

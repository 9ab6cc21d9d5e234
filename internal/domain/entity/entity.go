package entity

import "time"

// Member is one person in the journal club roster.
type Member struct {
	ID            int64
	SlackUserID   string
	SlackUserName string
	DisplayName   string
	Birthday      string // "MM-DD", empty when unknown
	OptIn         bool
	JoinedAt      time.Time
}

// Presentation is one completed pick in the current rotation cycle.
// The set of presentations is cleared when a cycle ends.
type Presentation struct {
	ID          int64
	MemberID    int64
	SlackUserID string
	DisplayName string
	PresentedAt time.Time
}

// Reminder holds who is scheduled to present next. There is at most one,
// overwritten on every selection.
type Reminder struct {
	SlackUserID string
	DisplayName string
	SelectedAt  time.Time
}

// ScheduleConfig is the singleton schedule for the club.
// Weekdays are ISO 8601 (1=Monday). Times are "HH:MM" in Timezone.
type ScheduleConfig struct {
	MeetingWeekday  int
	ReminderWeekday int
	ReminderTime    string
	BirthdayTime    string
	Timezone        string // IANA name, e.g. "Europe/Berlin"
	UpdatedAt       time.Time
}

package contract

import (
	"context"

	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

// JournalService is the administrative surface of the rotation core.
type JournalService interface {
	SelectPresenter(ctx context.Context) (*entity.Member, error)
	AddMember(slackUserID, birthday string) (*entity.Member, error)
	RemoveMember(slackUserID string) error
	SetMemberOptIn(slackUserID string, optIn bool) error
	ListMembers() ([]*entity.Member, error)
	ListHistory(limit int) ([]*entity.Presentation, error)
	GetScheduleConfig() (*entity.ScheduleConfig, error)
	SetMeetingDay(weekday string) (*entity.ScheduleConfig, error)
	SetReminderSchedule(weekday, clock string) (*entity.ScheduleConfig, error)
	SetBirthdayTime(clock string) (*entity.ScheduleConfig, error)
	SetTimezone(name string) (*entity.ScheduleConfig, error)
}

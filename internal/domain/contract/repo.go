package contract

import (
	"context"

	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Member() MemberRepo
	Presentation() PresentationRepo
	Reminder() ReminderRepo
	Schedule() ScheduleRepo
}

// MemberRepo defines the contract for the roster repository
type MemberRepo interface {
	Create(member *entity.Member) error
	GetBySlackID(slackUserID string) (*entity.Member, error)
	GetAll() ([]*entity.Member, error)
	GetOptedIn() ([]*entity.Member, error)
	SetOptIn(slackUserID string, optIn bool) error
	Delete(memberID int64) error
}

// PresentationRepo defines the contract for the presentation history log
type PresentationRepo interface {
	Create(presentation *entity.Presentation) error
	GetPresentedIDs() (map[string]bool, error)
	GetRecent(limit int) ([]*entity.Presentation, error)
	DeleteAll() error
}

// ReminderRepo defines the contract for the single current-reminder record
type ReminderRepo interface {
	Set(reminder *entity.Reminder) error
	Get() (*entity.Reminder, error)
}

// ScheduleRepo defines the contract for the singleton schedule config
type ScheduleRepo interface {
	Get() (*entity.ScheduleConfig, error)
	Update(config *entity.ScheduleConfig) error
}

package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pselab/journal-club-bot/internal/domain"
	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

type journalService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	scheduler   *scheduler

	// selectMu serializes concurrent administrative selections so two callers
	// never compute the remaining set from the same history snapshot.
	selectMu sync.Mutex
}

func newJournal(dm contract.DataManager, slackClient contract.SlackClient) *journalService {
	return &journalService{
		dm:          dm,
		slackClient: slackClient,
		scheduler:   nil, // Will be set later to avoid circular dependency
	}
}

func (s *journalService) SetScheduler(scheduler *scheduler) {
	s.scheduler = scheduler
}

// SelectPresenter picks the next presenter from the opted-in roster, appends
// one presentation record and overwrites the current reminder, all within a
// single transaction. When the cycle is exhausted the history is cleared
// before picking. On error nothing is persisted.
func (s *journalService) SelectPresenter(ctx context.Context) (*entity.Member, error) {
	s.selectMu.Lock()
	defer s.selectMu.Unlock()

	var picked *entity.Member

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		roster, err := tx.Member().GetOptedIn()
		if err != nil {
			return fmt.Errorf("failed to get roster: %w", err)
		}

		presented, err := tx.Presentation().GetPresentedIDs()
		if err != nil {
			return fmt.Errorf("failed to get presentation history: %w", err)
		}

		pick, reset, err := domain.SelectNext(roster, presented)
		if err != nil {
			return err
		}

		if reset {
			log.Println("Rotation cycle exhausted, resetting presentation history")
			if err := tx.Presentation().DeleteAll(); err != nil {
				return fmt.Errorf("failed to reset presentation history: %w", err)
			}
		}

		now := time.Now().UTC()

		presentation := &entity.Presentation{
			MemberID:    pick.ID,
			SlackUserID: pick.SlackUserID,
			DisplayName: pick.DisplayName,
			PresentedAt: now,
		}
		if err := tx.Presentation().Create(presentation); err != nil {
			return fmt.Errorf("failed to record presentation: %w", err)
		}

		reminder := &entity.Reminder{
			SlackUserID: pick.SlackUserID,
			DisplayName: pick.DisplayName,
			SelectedAt:  now,
		}
		if err := tx.Reminder().Set(reminder); err != nil {
			return fmt.Errorf("failed to set reminder: %w", err)
		}

		picked = pick
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Selected %s (%s) as next presenter", picked.DisplayName, picked.SlackUserID)
	return picked, nil
}

func (s *journalService) AddMember(slackUserID, birthday string) (*entity.Member, error) {
	if birthday != "" {
		parsed, err := domain.ParseBirthday(birthday)
		if err != nil {
			return nil, err
		}
		birthday = parsed
	}

	// Get user info from Slack
	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		log.Printf("ERROR getting user info from Slack API for %s: %v", slackUserID, err)
		return nil, fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	// Check if member already exists
	existing, err := s.dm.Member().GetBySlackID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}

	if existing != nil {
		return nil, domain.ErrMemberExists
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}

	member := &entity.Member{
		SlackUserID:   slackUserID,
		SlackUserName: userInfo.Name,
		DisplayName:   displayName,
		Birthday:      birthday,
		OptIn:         true,
	}

	if err := s.dm.Member().Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

func (s *journalService) RemoveMember(slackUserID string) error {
	member, err := s.dm.Member().GetBySlackID(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}

	if member == nil {
		return domain.ErrMemberNotFound
	}

	return s.dm.Member().Delete(member.ID)
}

func (s *journalService) SetMemberOptIn(slackUserID string, optIn bool) error {
	member, err := s.dm.Member().GetBySlackID(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}

	if member == nil {
		return domain.ErrMemberNotFound
	}

	return s.dm.Member().SetOptIn(slackUserID, optIn)
}

func (s *journalService) ListMembers() ([]*entity.Member, error) {
	return s.dm.Member().GetAll()
}

func (s *journalService) ListHistory(limit int) ([]*entity.Presentation, error) {
	return s.dm.Presentation().GetRecent(limit)
}

func (s *journalService) GetScheduleConfig() (*entity.ScheduleConfig, error) {
	return s.dm.Schedule().Get()
}

func (s *journalService) SetMeetingDay(weekday string) (*entity.ScheduleConfig, error) {
	day, err := domain.ParseWeekday(weekday)
	if err != nil {
		return nil, err
	}

	return s.updateSchedule(func(config *entity.ScheduleConfig) {
		config.MeetingWeekday = day
	})
}

// SetReminderSchedule updates the reminder weekday and, when clock is
// non-empty, the reminder time-of-day. Validation happens before any state
// mutation so a rejected request leaves the active schedule untouched.
func (s *journalService) SetReminderSchedule(weekday, clock string) (*entity.ScheduleConfig, error) {
	day, err := domain.ParseWeekday(weekday)
	if err != nil {
		return nil, err
	}

	if clock != "" {
		if _, _, err := domain.ParseClock(clock); err != nil {
			return nil, err
		}
	}

	return s.updateSchedule(func(config *entity.ScheduleConfig) {
		config.ReminderWeekday = day
		if clock != "" {
			config.ReminderTime = clock
		}
	})
}

func (s *journalService) SetBirthdayTime(clock string) (*entity.ScheduleConfig, error) {
	if _, _, err := domain.ParseClock(clock); err != nil {
		return nil, err
	}

	return s.updateSchedule(func(config *entity.ScheduleConfig) {
		config.BirthdayTime = clock
	})
}

func (s *journalService) SetTimezone(name string) (*entity.ScheduleConfig, error) {
	if err := domain.ValidateTimezone(name); err != nil {
		return nil, err
	}

	return s.updateSchedule(func(config *entity.ScheduleConfig) {
		config.Timezone = name
	})
}

func (s *journalService) updateSchedule(apply func(config *entity.ScheduleConfig)) (*entity.ScheduleConfig, error) {
	config, err := s.dm.Schedule().Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule config: %w", err)
	}

	apply(config)

	if err := s.dm.Schedule().Update(config); err != nil {
		return nil, fmt.Errorf("failed to update schedule config: %w", err)
	}

	// Invalidate any armed timer so the job fires once, at the new time
	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return config, nil
}

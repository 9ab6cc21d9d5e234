package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/pselab/journal-club-bot/internal/domain"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSchedulerTest(t *testing.T) (*scheduler, allMocks, *gomock.Controller) {
	t.Helper()
	m, ctrl := newServiceTestMock(t)
	s := newScheduler(m.mockDataManager, m.mockSlackClient, "CJOURNAL", "CBIRTHDAY")
	return s, m, ctrl
}

func Test_newScheduler(t *testing.T) {
	s, _, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	assert.Equal(t, "CJOURNAL", s.journalChannelID)
	assert.Equal(t, "CBIRTHDAY", s.birthdayChannelID)
	assert.NotNil(t, s.configChanged)
	assert.NotNil(t, s.stopChan)
	assert.False(t, s.running)
}

func Test_scheduler_NotifyConfigChange(t *testing.T) {
	s, _, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	// Must never block, even when the buffered signal is already pending
	s.NotifyConfigChange()
	s.NotifyConfigChange()

	select {
	case <-s.configChanged:
	default:
		t.Fatal("expected a pending config change signal")
	}
}

// armedConfig returns a schedule whose next fire is about an hour away, so a
// started loop arms a timer and waits instead of running jobs.
func armedConfig() *entity.ScheduleConfig {
	soon := time.Now().UTC().Add(1 * time.Hour)
	return &entity.ScheduleConfig{
		MeetingWeekday:  domain.Monday,
		ReminderWeekday: domain.ISOWeekday(soon.Weekday()),
		ReminderTime:    soon.Format("15:04"),
		BirthdayTime:    soon.Format("15:04"),
		Timezone:        "UTC",
	}
}

func Test_scheduler_Start_Stop(t *testing.T) {
	s, m, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.mockScheduleRepo.EXPECT().
		Get().
		Return(armedConfig(), nil).
		AnyTimes()

	// Initial state
	assert.False(t, s.running)

	// Start scheduler
	s.Start()
	assert.True(t, s.running)

	// Starting again should not change state
	s.Start()
	assert.True(t, s.running)

	// Stop scheduler
	s.Stop()
	assert.False(t, s.running)

	// Give the goroutine a moment to fully stop
	time.Sleep(10 * time.Millisecond)

	// Stopping again should not change state
	s.Stop()
	assert.False(t, s.running)
}

func Test_scheduler_mainLoop(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		testFunc  func(t *testing.T, s *scheduler)
	}{
		{
			name: "Should recompute the schedule when config changes during an armed wait",
			buildMock: func(m allMocks) {
				// Exactly two reads: the armed wait and the recomputation after
				// the config change. No job runs, so no message is ever posted.
				m.mockScheduleRepo.EXPECT().
					Get().
					Return(armedConfig(), nil).
					Times(2)
			},
			testFunc: func(t *testing.T, s *scheduler) {
				go s.mainLoop()

				// Give the timer time to arm
				time.Sleep(50 * time.Millisecond)

				// Invalidate the armed timer
				s.NotifyConfigChange()

				// Wait for the recomputation
				time.Sleep(50 * time.Millisecond)

				close(s.stopChan)
				time.Sleep(10 * time.Millisecond)
			},
		},
		{
			name: "Should wait and retry when the config cannot be read",
			buildMock: func(m allMocks) {
				// First read fails, which puts the loop into the 1-hour wait;
				// the config change interrupts it and the retry succeeds.
				m.mockScheduleRepo.EXPECT().
					Get().
					Return(nil, assert.AnError).
					Times(1)

				m.mockScheduleRepo.EXPECT().
					Get().
					Return(armedConfig(), nil).
					AnyTimes()
			},
			testFunc: func(t *testing.T, s *scheduler) {
				go s.mainLoop()

				time.Sleep(50 * time.Millisecond)

				s.NotifyConfigChange()

				time.Sleep(50 * time.Millisecond)

				close(s.stopChan)
				time.Sleep(10 * time.Millisecond)
			},
		},
		{
			name: "Should exit an armed wait on stop",
			buildMock: func(m allMocks) {
				m.mockScheduleRepo.EXPECT().
					Get().
					Return(armedConfig(), nil).
					Times(1)
			},
			testFunc: func(t *testing.T, s *scheduler) {
				go s.mainLoop()

				// Give the timer time to arm
				time.Sleep(50 * time.Millisecond)

				close(s.stopChan)

				// Wait for goroutine to exit
				time.Sleep(50 * time.Millisecond)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m, ctrl := newSchedulerTest(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			tt.testFunc(t, s)
		})
	}
}

func Test_scheduler_findNextFire(t *testing.T) {
	t.Run("Should return no jobs when the config cannot be read", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(nil, fmt.Errorf("db closed")).Times(1)

		nextTime, jobs := s.findNextFire()
		assert.True(t, nextTime.IsZero())
		assert.Empty(t, jobs)
	})

	t.Run("Should compute a future fire within a day for the default config", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(currentConfig(), nil).Times(1)

		nextTime, jobs := s.findNextFire()

		require.NotEmpty(t, jobs)
		now := time.Now()
		assert.True(t, nextTime.After(now), "fire instant must be in the future")
		// The birthday check is daily, so the next fire is at most 24h away
		assert.LessOrEqual(t, nextTime.Sub(now), 24*time.Hour)
	})

	t.Run("Should skip a job with a broken time but keep the other", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		config := currentConfig()
		config.BirthdayTime = "not-a-time"

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(config, nil).Times(1)

		nextTime, jobs := s.findNextFire()

		require.Len(t, jobs, 1)
		assert.Equal(t, jobReminder, jobs[0])
		assert.False(t, nextTime.IsZero())
	})
}

func Test_scheduler_sendPresenterReminder(t *testing.T) {
	t.Run("Should DM the scheduled presenter", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockReminderRepo.EXPECT().
			Get().
			Return(&entity.Reminder{SlackUserID: "U1", DisplayName: "Test User"}, nil).Times(1)

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(currentConfig(), nil).Times(1)

		m.mockSlackClient.EXPECT().
			PostMessage("U1", gomock.Any(), gomock.Any()).
			Return("U1", "123.456", nil).Times(1)

		require.NoError(t, s.sendPresenterReminder())
	})

	t.Run("Should skip quietly when no presenter is scheduled", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockReminderRepo.EXPECT().
			Get().
			Return(nil, nil).Times(1)

		require.NoError(t, s.sendPresenterReminder())
	})

	t.Run("Should surface a delivery failure", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockReminderRepo.EXPECT().
			Get().
			Return(&entity.Reminder{SlackUserID: "U1", DisplayName: "Test User"}, nil).Times(1)

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(currentConfig(), nil).Times(1)

		m.mockSlackClient.EXPECT().
			PostMessage("U1", gomock.Any(), gomock.Any()).
			Return("", "", fmt.Errorf("channel_not_found")).Times(1)

		assert.Error(t, s.sendPresenterReminder())
	})
}

func Test_scheduler_sendBirthdayGreetings(t *testing.T) {
	today := time.Now().UTC().Format("01-02")

	t.Run("Should greet every member whose birthday is today", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(currentConfig(), nil).Times(1)

		m.mockMemberRepo.EXPECT().
			GetAll().
			Return([]*entity.Member{
				{SlackUserID: "U1", DisplayName: "A", Birthday: today},
				{SlackUserID: "U2", DisplayName: "B", Birthday: "12-31"},
				{SlackUserID: "U3", DisplayName: "C", Birthday: today},
			}, nil).Times(1)

		m.mockSlackClient.EXPECT().
			PostMessage("CBIRTHDAY", gomock.Any(), gomock.Any()).
			Return("CBIRTHDAY", "123.456", nil).Times(2)

		require.NoError(t, s.sendBirthdayGreetings())
	})

	t.Run("Should post nothing when nobody has a birthday", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(currentConfig(), nil).Times(1)

		m.mockMemberRepo.EXPECT().
			GetAll().
			Return([]*entity.Member{
				{SlackUserID: "U1", DisplayName: "A", Birthday: ""},
			}, nil).Times(1)

		require.NoError(t, s.sendBirthdayGreetings())
	})

	t.Run("Should keep greeting after a delivery failure", func(t *testing.T) {
		s, m, ctrl := newSchedulerTest(t)
		defer ctrl.Finish()

		m.mockScheduleRepo.EXPECT().
			Get().
			Return(currentConfig(), nil).Times(1)

		m.mockMemberRepo.EXPECT().
			GetAll().
			Return([]*entity.Member{
				{SlackUserID: "U1", DisplayName: "A", Birthday: today},
				{SlackUserID: "U2", DisplayName: "B", Birthday: today},
			}, nil).Times(1)

		gomock.InOrder(
			m.mockSlackClient.EXPECT().
				PostMessage("CBIRTHDAY", gomock.Any(), gomock.Any()).
				Return("", "", fmt.Errorf("rate_limited")).Times(1),
			m.mockSlackClient.EXPECT().
				PostMessage("CBIRTHDAY", gomock.Any(), gomock.Any()).
				Return("CBIRTHDAY", "123.456", nil).Times(1),
		)

		require.NoError(t, s.sendBirthdayGreetings())
	})
}

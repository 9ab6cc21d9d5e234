package service

import (
	"context"
	"testing"

	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/pselab/journal-club-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockMemberRepo       *mocks.MockMemberRepo
	mockPresentationRepo *mocks.MockPresentationRepo
	mockReminderRepo     *mocks.MockReminderRepo
	mockScheduleRepo     *mocks.MockScheduleRepo
	mockSlackClient      *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	presentationRepo := mocks.NewMockPresentationRepo(ctrl)
	dm.EXPECT().Presentation().Return(presentationRepo).AnyTimes()

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:      dm,
		mockMemberRepo:       memberRepo,
		mockPresentationRepo: presentationRepo,
		mockReminderRepo:     reminderRepo,
		mockScheduleRepo:     scheduleRepo,
		mockSlackClient:      slackClient,
	}

	// validate service creation
	journalService := newJournal(dm, slackClient)
	require.NotNil(t, journalService)

	return
}

// expectTransaction makes WithTransaction run its callback against the same
// mocked DataManager, the way the real instance hands repos to the callback.
func expectTransaction(m allMocks) {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).Times(1)
}

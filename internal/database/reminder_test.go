package database

import (
	"testing"
	"time"

	"github.com/pselab/journal-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderRepository_GetWhenAbsent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, reminder, "no selection yet must read as absent")
}

func TestReminderRepository_RoundTrip(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	selectedAt := time.Date(2024, 1, 4, 23, 1, 0, 0, time.UTC)
	original := &entity.Reminder{
		SlackUserID: "U123456789",
		DisplayName: "Test User",
		SelectedAt:  selectedAt,
	}
	require.NoError(t, repo.Set(original))

	found, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "U123456789", found.SlackUserID)
	assert.Equal(t, "Test User", found.DisplayName)
	assert.True(t, selectedAt.Equal(found.SelectedAt))
}

func TestReminderRepository_SetOverwrites(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	require.NoError(t, repo.Set(&entity.Reminder{SlackUserID: "U1", DisplayName: "First"}))
	require.NoError(t, repo.Set(&entity.Reminder{SlackUserID: "U2", DisplayName: "Second"}))

	found, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, found)

	// A read never returns the overwritten value
	assert.Equal(t, "U2", found.SlackUserID)
	assert.Equal(t, "Second", found.DisplayName)
}

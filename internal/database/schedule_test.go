package database

import (
	"testing"

	"github.com/pselab/journal-club-bot/internal/domain"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepository_GetSeededDefaults(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newScheduleRepo(db.conn)

	config, err := repo.Get()
	require.NoError(t, err, "migration must seed the singleton config row")

	assert.Equal(t, domain.Monday, config.MeetingWeekday)
	assert.Equal(t, domain.Thursday, config.ReminderWeekday)
	assert.Equal(t, "23:01", config.ReminderTime)
	assert.Equal(t, "09:00", config.BirthdayTime)
	assert.Equal(t, "UTC", config.Timezone)
}

func TestScheduleRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newScheduleRepo(db.conn)

	config := &entity.ScheduleConfig{
		MeetingWeekday:  domain.Wednesday,
		ReminderWeekday: domain.Friday,
		ReminderTime:    "09:00",
		BirthdayTime:    "10:30",
		Timezone:        "Europe/Berlin",
	}
	require.NoError(t, repo.Update(config))

	found, err := repo.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.Wednesday, found.MeetingWeekday)
	assert.Equal(t, domain.Friday, found.ReminderWeekday)
	assert.Equal(t, "09:00", found.ReminderTime)
	assert.Equal(t, "10:30", found.BirthdayTime)
	assert.Equal(t, "Europe/Berlin", found.Timezone)
}

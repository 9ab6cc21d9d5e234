package database

import (
	"fmt"

	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

type scheduleRepo struct {
	db dbConn
}

func newScheduleRepo(db dbConn) contract.ScheduleRepo {
	return &scheduleRepo{db: db}
}

// Get returns the singleton schedule config. The row is seeded by the initial
// migration, so a missing row is an error rather than an empty result.
func (r *scheduleRepo) Get() (*entity.ScheduleConfig, error) {
	config := &entity.ScheduleConfig{}
	query := `
		SELECT meeting_weekday, reminder_weekday, reminder_time, birthday_time, timezone, updated_at
		FROM schedule_configs
		WHERE id = 1
	`

	err := r.db.QueryRow(query).Scan(
		&config.MeetingWeekday,
		&config.ReminderWeekday,
		&config.ReminderTime,
		&config.BirthdayTime,
		&config.Timezone,
		&config.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule config: %w", err)
	}

	return config, nil
}

func (r *scheduleRepo) Update(config *entity.ScheduleConfig) error {
	query := `
		UPDATE schedule_configs
		SET meeting_weekday = ?, reminder_weekday = ?, reminder_time = ?,
		    birthday_time = ?, timezone = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`

	_, err := r.db.Exec(query,
		config.MeetingWeekday,
		config.ReminderWeekday,
		config.ReminderTime,
		config.BirthdayTime,
		config.Timezone,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule config: %w", err)
	}

	return nil
}

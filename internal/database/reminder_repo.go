package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

// Set overwrites the single current-reminder row. The table holds at most one
// record: the most recently selected presenter.
func (r *reminderRepo) Set(reminder *entity.Reminder) error {
	query := `
		INSERT OR REPLACE INTO reminders (id, slack_user_id, display_name, selected_at)
		VALUES (1, ?, ?, ?)
	`

	selectedAt := reminder.SelectedAt
	if selectedAt.IsZero() {
		selectedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query,
		reminder.SlackUserID,
		reminder.DisplayName,
		selectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to set reminder: %w", err)
	}

	reminder.SelectedAt = selectedAt
	return nil
}

// Get returns the current reminder, or nil when no presenter has been
// selected yet.
func (r *reminderRepo) Get() (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	query := `
		SELECT slack_user_id, display_name, selected_at
		FROM reminders
		WHERE id = 1
	`

	err := r.db.QueryRow(query).Scan(
		&reminder.SlackUserID,
		&reminder.DisplayName,
		&reminder.SelectedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

package database

import (
	"context"
	"fmt"

	"github.com/pselab/journal-club-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	memberRepo       contract.MemberRepo
	presentationRepo contract.PresentationRepo
	reminderRepo     contract.ReminderRepo
	scheduleRepo     contract.ScheduleRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:               db,
		memberRepo:       newMemberRepo(db.conn),
		presentationRepo: newPresentationRepo(db.conn),
		reminderRepo:     newReminderRepo(db.conn),
		scheduleRepo:     newScheduleRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		memberRepo:       newMemberRepo(db),
		presentationRepo: newPresentationRepo(db),
		reminderRepo:     newReminderRepo(db),
		scheduleRepo:     newScheduleRepo(db),
	}
}

// Member returns the roster repository
func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

// Presentation returns the presentation history repository
func (i *instance) Presentation() contract.PresentationRepo {
	return i.presentationRepo
}

// Reminder returns the current-reminder repository
func (i *instance) Reminder() contract.ReminderRepo {
	return i.reminderRepo
}

// Schedule returns the schedule config repository
func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pselab/journal-club-bot/internal/domain/contract"
	"github.com/pselab/journal-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Presentation().Create(&entity.Presentation{MemberID: 1, SlackUserID: "U1", DisplayName: "A"}); err != nil {
			return err
		}
		return tx.Reminder().Set(&entity.Reminder{SlackUserID: "U1", DisplayName: "A"})
	})
	require.NoError(t, err)

	presented, err := dm.Presentation().GetPresentedIDs()
	require.NoError(t, err)
	assert.True(t, presented["U1"])

	reminder, err := dm.Reminder().Get()
	require.NoError(t, err)
	require.NotNil(t, reminder)
	assert.Equal(t, "U1", reminder.SlackUserID)
}

func TestInstance_WithTransaction_RollbackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	wantErr := errors.New("selection failed")

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Presentation().Create(&entity.Presentation{MemberID: 1, SlackUserID: "U1", DisplayName: "A"}); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// Nothing from the failed transaction is visible
	presented, err := dm.Presentation().GetPresentedIDs()
	require.NoError(t, err)
	assert.Empty(t, presented)
}

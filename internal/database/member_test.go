package database

import (
	"testing"

	"github.com/pselab/journal-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	member := &entity.Member{
		SlackUserID:   "U123456789",
		SlackUserName: "testuser",
		DisplayName:   "Test User",
		Birthday:      "03-14",
		OptIn:         true,
	}

	err := repo.Create(member)
	require.NoError(t, err, "Failed to create member")

	assert.NotZero(t, member.ID, "Expected member ID to be set after creation")
}

func TestMemberRepository_Create_DuplicateSlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	member := &entity.Member{
		SlackUserID:   "U123456789",
		SlackUserName: "testuser",
		DisplayName:   "Test User",
		OptIn:         true,
	}
	require.NoError(t, repo.Create(member))

	duplicate := &entity.Member{
		SlackUserID:   "U123456789",
		SlackUserName: "other",
		DisplayName:   "Other",
		OptIn:         true,
	}
	assert.Error(t, repo.Create(duplicate), "duplicate slack_user_id must be rejected")
}

func TestMemberRepository_GetBySlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	original := &entity.Member{
		SlackUserID:   "U123456789",
		SlackUserName: "testuser",
		DisplayName:   "Test User",
		Birthday:      "12-01",
		OptIn:         true,
	}
	require.NoError(t, repo.Create(original))

	found, err := repo.GetBySlackID("U123456789")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, original.ID, found.ID)
	assert.Equal(t, "testuser", found.SlackUserName)
	assert.Equal(t, "Test User", found.DisplayName)
	assert.Equal(t, "12-01", found.Birthday)
	assert.True(t, found.OptIn)
	assert.False(t, found.JoinedAt.IsZero())
}

func TestMemberRepository_GetBySlackID_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	found, err := repo.GetBySlackID("U000000000")
	require.NoError(t, err)
	assert.Nil(t, found, "missing member must return nil without error")
}

func TestMemberRepository_GetBySlackID_NoBirthday(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	member := &entity.Member{
		SlackUserID:   "U123456789",
		SlackUserName: "testuser",
		DisplayName:   "Test User",
		OptIn:         true,
	}
	require.NoError(t, repo.Create(member))

	found, err := repo.GetBySlackID("U123456789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Empty(t, found.Birthday)
}

func TestMemberRepository_GetOptedIn(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	for _, m := range []*entity.Member{
		{SlackUserID: "U1", SlackUserName: "a", DisplayName: "A", OptIn: true},
		{SlackUserID: "U2", SlackUserName: "b", DisplayName: "B", OptIn: false},
		{SlackUserID: "U3", SlackUserName: "c", DisplayName: "C", OptIn: true},
	} {
		require.NoError(t, repo.Create(m))
	}

	optedIn, err := repo.GetOptedIn()
	require.NoError(t, err)
	require.Len(t, optedIn, 2)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	for _, m := range optedIn {
		assert.NotEqual(t, "U2", m.SlackUserID, "opted-out member must be excluded")
	}
}

func TestMemberRepository_SetOptIn(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	member := &entity.Member{SlackUserID: "U1", SlackUserName: "a", DisplayName: "A", OptIn: true}
	require.NoError(t, repo.Create(member))

	require.NoError(t, repo.SetOptIn("U1", false))

	found, err := repo.GetBySlackID("U1")
	require.NoError(t, err)
	assert.False(t, found.OptIn)

	require.NoError(t, repo.SetOptIn("U1", true))

	found, err = repo.GetBySlackID("U1")
	require.NoError(t, err)
	assert.True(t, found.OptIn)
}

func TestMemberRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	member := &entity.Member{SlackUserID: "U1", SlackUserName: "a", DisplayName: "A", OptIn: true}
	require.NoError(t, repo.Create(member))

	require.NoError(t, repo.Delete(member.ID))

	found, err := repo.GetBySlackID("U1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcheck/internal/health"
	"teamcheck/internal/models"
	"teamcheck/internal/testutil"
)

func TestRecordVotes_CreatesRow(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "recorder_create")

	user := testutil.CreateUser(t, db, "alice", "secret123", models.RoleEngineer, nil)
	session := testutil.CreateSession(t, db, "2024-02-01")
	card := testutil.CreateCard(t, db, "Teamwork")

	err := health.RecordVotes(db, user.ID, &session, map[uint]health.Ballot{
		card.ID: {Status: models.StatusGreen, Improving: true},
	})
	require.NoError(t, err)

	var vote models.Vote
	err = db.Where("user_id = ? AND session_id = ? AND card_id = ?", user.ID, session.ID, card.ID).
		First(&vote).Error
	require.NoError(t, err)
	assert.Equal(t, models.StatusGreen, vote.Status)
	assert.True(t, vote.Improving)

	var count int64
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordVotes_Idempotent(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "recorder_idempotent")

	user := testutil.CreateUser(t, db, "alice", "secret123", models.RoleEngineer, nil)
	session := testutil.CreateSession(t, db, "2024-02-01")
	card := testutil.CreateCard(t, db, "Teamwork")

	ballots := map[uint]health.Ballot{
		card.ID: {Status: models.StatusAmber, Improving: false},
	}
	require.NoError(t, health.RecordVotes(db, user.ID, &session, ballots))
	require.NoError(t, health.RecordVotes(db, user.ID, &session, ballots))

	var count int64
	db.Model(&models.Vote{}).
		Where("user_id = ? AND session_id = ? AND card_id = ?", user.ID, session.ID, card.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	var vote models.Vote
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&vote).Error)
	assert.Equal(t, models.StatusAmber, vote.Status)
	assert.False(t, vote.Improving)
}

func TestRecordVotes_UpdatesOnResubmit(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "recorder_update")

	user := testutil.CreateUser(t, db, "alice", "secret123", models.RoleEngineer, nil)
	session := testutil.CreateSession(t, db, "2024-02-01")
	card := testutil.CreateCard(t, db, "Teamwork")

	require.NoError(t, health.RecordVotes(db, user.ID, &session, map[uint]health.Ballot{
		card.ID: {Status: models.StatusGreen, Improving: false},
	}))
	require.NoError(t, health.RecordVotes(db, user.ID, &session, map[uint]health.Ballot{
		card.ID: {Status: models.StatusRed, Improving: true},
	}))

	var count int64
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var vote models.Vote
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&vote).Error)
	assert.Equal(t, models.StatusRed, vote.Status)
	assert.True(t, vote.Improving)
}

func TestRecordVotes_SkipsEmptyStatus(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "recorder_skip")

	user := testutil.CreateUser(t, db, "alice", "secret123", models.RoleEngineer, nil)
	session := testutil.CreateSession(t, db, "2024-02-01")
	voted := testutil.CreateCard(t, db, "Teamwork")
	skipped := testutil.CreateCard(t, db, "Fun")

	err := health.RecordVotes(db, user.ID, &session, map[uint]health.Ballot{
		voted.ID:   {Status: models.StatusGreen},
		skipped.ID: {Status: "", Improving: true},
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.Vote{}).Where("card_id = ?", skipped.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	db.Model(&models.Vote{}).Where("card_id = ?", voted.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordVotes_InvalidStatusRollsBackBatch(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "recorder_invalid")

	user := testutil.CreateUser(t, db, "alice", "secret123", models.RoleEngineer, nil)
	session := testutil.CreateSession(t, db, "2024-02-01")
	good := testutil.CreateCard(t, db, "Teamwork")
	bad := testutil.CreateCard(t, db, "Fun")

	err := health.RecordVotes(db, user.ID, &session, map[uint]health.Ballot{
		good.ID: {Status: models.StatusGreen},
		bad.ID:  {Status: "Purple"},
	})
	require.Error(t, err)

	// the submission is transactional: nothing is persisted
	var count int64
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRecordVotes_NilSessionIsNoop(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "recorder_nilsession")

	user := testutil.CreateUser(t, db, "alice", "secret123", models.RoleEngineer, nil)
	card := testutil.CreateCard(t, db, "Teamwork")

	err := health.RecordVotes(db, user.ID, nil, map[uint]health.Ballot{
		card.ID: {Status: models.StatusGreen},
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

package health_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcheck/internal/health"
	"teamcheck/internal/testutil"
)

func TestResolveSession_LatestByDefault(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "resolver_latest")

	testutil.CreateSession(t, db, "2024-01-01")
	latest := testutil.CreateSession(t, db, "2024-02-01")

	s, err := health.ResolveSession(db, "")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, latest.ID, s.ID)
}

func TestResolveSession_RequestedID(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "resolver_requested")

	older := testutil.CreateSession(t, db, "2024-01-01")
	testutil.CreateSession(t, db, "2024-02-01")

	s, err := health.ResolveSession(db, fmt.Sprint(older.ID))
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, older.ID, s.ID)
}

func TestResolveSession_UnknownIDFallsBack(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "resolver_unknown")

	testutil.CreateSession(t, db, "2024-01-01")
	latest := testutil.CreateSession(t, db, "2024-02-01")

	s, err := health.ResolveSession(db, "9999")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, latest.ID, s.ID)
}

func TestResolveSession_GarbageIDFallsBack(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "resolver_garbage")

	latest := testutil.CreateSession(t, db, "2024-02-01")

	s, err := health.ResolveSession(db, "not-a-number")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, latest.ID, s.ID)
}

func TestResolveSession_NoSessions(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "resolver_empty")

	s, err := health.ResolveSession(db, "")
	require.NoError(t, err)
	assert.Nil(t, s)
}

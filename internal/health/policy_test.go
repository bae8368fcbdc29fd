package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcheck/internal/health"
	"teamcheck/internal/models"
	"teamcheck/internal/testutil"
)

func TestTeamScope_EngineerDenied(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "policy_engineer")

	_, team := testutil.CreateTeam(t, db, "Platform", nil)
	user := testutil.CreateUser(t, db, "dev", "secret123", models.RoleEngineer, &team.ID)

	_, _, err := health.TeamScope(db, user.Profile)
	require.ErrorIs(t, err, health.ErrNotAuthorized)
}

func TestTeamScope_LeaderWithoutTeamDenied(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "policy_unassigned")

	user := testutil.CreateUser(t, db, "lead", "secret123", models.RoleTeamLeader, nil)

	_, _, err := health.TeamScope(db, user.Profile)
	require.ErrorIs(t, err, health.ErrNotAssigned)
}

func TestTeamScope_DistinctReasons(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "policy_reasons")

	engineer := testutil.CreateUser(t, db, "dev", "secret123", models.RoleEngineer, nil)
	leader := testutil.CreateUser(t, db, "lead", "secret123", models.RoleTeamLeader, nil)

	_, _, errRole := health.TeamScope(db, engineer.Profile)
	_, _, errTeam := health.TeamScope(db, leader.Profile)

	// callers must be able to tell "wrong role" from "no assignment"
	assert.NotErrorIs(t, errRole, health.ErrNotAssigned)
	assert.NotErrorIs(t, errTeam, health.ErrNotAuthorized)
}

func TestTeamScope_ReturnsExactMemberSet(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "policy_members")

	dept, team := testutil.CreateTeam(t, db, "Platform", nil)
	_, other := testutil.CreateTeam(t, db, "Mobile", &dept)

	leader := testutil.CreateUser(t, db, "lead", "secret123", models.RoleTeamLeader, &team.ID)
	member := testutil.CreateUser(t, db, "dev1", "secret123", models.RoleEngineer, &team.ID)
	testutil.CreateUser(t, db, "dev2", "secret123", models.RoleEngineer, &other.ID)
	testutil.CreateUser(t, db, "loner", "secret123", models.RoleEngineer, nil)

	got, scope, err := health.TeamScope(db, leader.Profile)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, team.ID, got.ID)
	assert.ElementsMatch(t, []uint{leader.ID, member.ID}, scope)
}

func TestDepartmentScope_SpansAllTeams(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "policy_department")

	dept, platform := testutil.CreateTeam(t, db, "Platform", nil)
	_, mobile := testutil.CreateTeam(t, db, "Mobile", &dept)
	_, otherTeam := testutil.CreateTeam(t, db, "Sales", nil)

	head := testutil.CreateUser(t, db, "head", "secret123", models.RoleDepartmentLeader, &platform.ID)
	dev1 := testutil.CreateUser(t, db, "dev1", "secret123", models.RoleEngineer, &platform.ID)
	dev2 := testutil.CreateUser(t, db, "dev2", "secret123", models.RoleEngineer, &mobile.ID)
	testutil.CreateUser(t, db, "outsider", "secret123", models.RoleEngineer, &otherTeam.ID)

	got, scope, err := health.DepartmentScope(db, head.Profile)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, dept.ID, got.ID)
	assert.ElementsMatch(t, []uint{head.ID, dev1.ID, dev2.ID}, scope)
}

func TestDepartmentScope_TeamLeaderDenied(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "policy_dept_role")

	_, team := testutil.CreateTeam(t, db, "Platform", nil)
	leader := testutil.CreateUser(t, db, "lead", "secret123", models.RoleTeamLeader, &team.ID)

	_, _, err := health.DepartmentScope(db, leader.Profile)
	require.ErrorIs(t, err, health.ErrNotAuthorized)
}

func TestDepartmentScope_LeaderWithoutTeamDenied(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "policy_dept_unassigned")

	head := testutil.CreateUser(t, db, "head", "secret123", models.RoleDepartmentLeader, nil)

	_, _, err := health.DepartmentScope(db, head.Profile)
	require.ErrorIs(t, err, health.ErrNotAssigned)
}

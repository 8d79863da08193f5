package league

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayer(name string) *Player {
	return NewPlayer(name, 25, Attributes{Power: 50, Contact: 50})
}

func TestRosterCaps(t *testing.T) {
	team := NewTeam("Thunder", "American")

	for i := 0; i < MaxActiveRoster; i++ {
		require.NoError(t, team.AddPlayer(testPlayer(fmt.Sprintf("Active %d", i)), true))
	}
	assert.Error(t, team.AddPlayer(testPlayer("Overflow"), true))

	for i := 0; i < MaxReserveRoster; i++ {
		require.NoError(t, team.AddPlayer(testPlayer(fmt.Sprintf("Reserve %d", i)), false))
	}
	assert.Error(t, team.AddPlayer(testPlayer("Overflow"), false))

	assert.Len(t, team.AllPlayers(), MaxActiveRoster+MaxReserveRoster)
}

func TestAddPlayerSetsTeam(t *testing.T) {
	team := NewTeam("Storm", "American")
	p := testPlayer("Jordan Lee")
	require.NoError(t, team.AddPlayer(p, true))
	assert.Equal(t, "Storm", p.Team)

	assert.True(t, team.RemovePlayer(p))
	assert.Empty(t, p.Team)
	assert.False(t, team.RemovePlayer(p), "removing twice should fail")
}

func TestRecordResult(t *testing.T) {
	team := NewTeam("Blaze", "National")
	team.RecordResult(5, 3, OutcomeWin)
	team.RecordResult(2, 6, OutcomeLoss)
	team.RecordResult(4, 4, OutcomeTie)

	assert.Equal(t, 1, team.Wins)
	assert.Equal(t, 1, team.Losses)
	assert.Equal(t, 1, team.Ties)
	assert.Equal(t, 11, team.RunsScored)
	assert.Equal(t, 13, team.RunsAllowed)
}

func TestResetPlayoffRecord(t *testing.T) {
	team := NewTeam("Fire", "National")
	team.Wins = 10
	team.PlayoffWins = 3
	team.PlayoffLosses = 1

	team.ResetPlayoffRecord()

	assert.Equal(t, 10, team.Wins, "regular season record must survive")
	assert.Zero(t, team.PlayoffWins)
	assert.Zero(t, team.PlayoffLosses)
}

func TestTeamClone(t *testing.T) {
	team := NewTeam("Dragon", "National")
	require.NoError(t, team.AddPlayer(testPlayer("Casey Brown"), true))
	team.Wins = 7

	cp := team.Clone()
	cp.Wins = 0
	cp.ActiveRoster[0].Attributes.Power = 99

	assert.Equal(t, 7, team.Wins)
	assert.Equal(t, 50, team.ActiveRoster[0].Attributes.Power)
}

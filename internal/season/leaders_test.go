package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wiffleball/internal/league"
)

func leadersLeague() (*league.Team, *league.Team, *league.StatBook) {
	a := rotationTeam(60, 50, 50)
	b := rotationTeam(60, 50, 50)
	b.Name = "Other"
	return a, b, league.NewStatBook()
}

func TestLeadersBattingQualification(t *testing.T) {
	a, b, stats := leadersLeague()

	// A .500 hitter under the at-bat minimum must lose the batting title to
	// a qualified .300 hitter.
	hot := stats.Batting(a.ActiveRoster[0])
	hot.AtBats = 32
	hot.Hits = 16

	steady := stats.Batting(b.ActiveRoster[0])
	steady.AtBats = 40
	steady.Hits = 12

	leaders := ComputeLeaders([]*league.Team{a, b}, stats)
	require.NotNil(t, leaders.BattingAverage)
	assert.Same(t, b.ActiveRoster[0], leaders.BattingAverage.Player)
	assert.Equal(t, "Other", leaders.BattingAverage.Team)
	assert.InDelta(t, 0.3, leaders.BattingAverage.Value, 1e-9)
}

func TestLeadersBattingBoundary(t *testing.T) {
	a, b, stats := leadersLeague()

	line := stats.Batting(a.ActiveRoster[1])
	line.AtBats = minQualifyingAtBats
	line.Hits = 10
	line.HomeRuns = 4
	line.RBI = 9

	leaders := ComputeLeaders([]*league.Team{a, b}, stats)
	require.NotNil(t, leaders.BattingAverage)
	assert.Same(t, a.ActiveRoster[1], leaders.BattingAverage.Player)
	assert.Same(t, a.ActiveRoster[1], leaders.HomeRuns.Player)
	assert.Equal(t, 4.0, leaders.HomeRuns.Value)
	assert.Equal(t, 9.0, leaders.RBI.Value)
}

func TestLeadersPitchingQualification(t *testing.T) {
	a, b, stats := leadersLeague()

	// Dominant but only four appearances.
	cameo := stats.Pitching(a.ActiveRoster[0])
	cameo.GamesPitched = 4
	cameo.Strikeouts = 40
	cameo.Wins = 4

	workhorse := stats.Pitching(b.ActiveRoster[0])
	workhorse.GamesPitched = minQualifyingGames
	workhorse.InningsPitched = 15
	workhorse.EarnedRuns = 5
	workhorse.Strikeouts = 20
	workhorse.Wins = 3

	leaders := ComputeLeaders([]*league.Team{a, b}, stats)
	require.NotNil(t, leaders.Strikeouts)
	assert.Same(t, b.ActiveRoster[0], leaders.Strikeouts.Player)
	assert.Same(t, b.ActiveRoster[0], leaders.Wins.Player)

	require.NotNil(t, leaders.ERA)
	assert.Same(t, b.ActiveRoster[0], leaders.ERA.Player)
	assert.InDelta(t, 2.0, leaders.ERA.Value, 1e-9, "five earned runs over fifteen innings at six per game")
}

func TestLeadersERAInningsGate(t *testing.T) {
	a, b, stats := leadersLeague()

	// Enough appearances but too few innings for an ERA title.
	line := stats.Pitching(a.ActiveRoster[0])
	line.GamesPitched = minQualifyingGames
	line.InningsPitched = 4
	line.EarnedRuns = 0
	line.Wins = 2

	leaders := ComputeLeaders([]*league.Team{a, b}, stats)
	assert.Nil(t, leaders.ERA)
	require.NotNil(t, leaders.Wins, "counting titles only need the appearance minimum")
}

func TestLeadersNobodyQualifies(t *testing.T) {
	a, b, stats := leadersLeague()

	leaders := ComputeLeaders([]*league.Team{a, b}, stats)
	assert.Nil(t, leaders.BattingAverage)
	assert.Nil(t, leaders.HomeRuns)
	assert.Nil(t, leaders.RBI)
	assert.Nil(t, leaders.ERA)
	assert.Nil(t, leaders.Wins)
	assert.Nil(t, leaders.Strikeouts)
}

func TestLeadersIncumbentWinsTies(t *testing.T) {
	a, b, stats := leadersLeague()

	for _, p := range []*league.Player{a.ActiveRoster[0], b.ActiveRoster[0]} {
		line := stats.Batting(p)
		line.AtBats = 40
		line.Hits = 12
		line.HomeRuns = 5
	}

	leaders := ComputeLeaders([]*league.Team{a, b}, stats)
	require.NotNil(t, leaders.HomeRuns)
	assert.Same(t, a.ActiveRoster[0], leaders.HomeRuns.Player, "first team scanned keeps a tied title")
}

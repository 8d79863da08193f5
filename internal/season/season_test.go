package season

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/randutil"
)

func seasonLeague(t *testing.T, seed int64, n int) []*league.Team {
	t.Helper()
	teams, err := league.Generate(randutil.New(seed), n)
	require.NoError(t, err)
	return teams
}

func runSeason(t *testing.T, teams []*league.Team, seed int64) *Summary {
	t.Helper()
	s, err := New(teams, config.Default(), seed, log.New(io.Discard), nil)
	require.NoError(t, err)
	summary, err := s.Run()
	require.NoError(t, err)
	return summary
}

func TestSeasonRequiresTwoTeams(t *testing.T) {
	teams := seasonLeague(t, 1, 2)

	_, err := New(teams[:1], config.Default(), 1, log.New(io.Discard), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 teams")
}

func TestSeasonRejectsShortRoster(t *testing.T) {
	teams := seasonLeague(t, 1, 2)
	teams[0].ActiveRoster = teams[0].ActiveRoster[:2]

	_, err := New(teams, config.Default(), 1, log.New(io.Discard), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "active players")
}

func TestSeasonRunCompletes(t *testing.T) {
	teams := seasonLeague(t, 7, 6)
	summary := runSeason(t, teams, 7)

	// Six teams, three games per pairing, then a two-round bracket on top.
	regularGames := 3 * 6 * 5 / 2
	assert.GreaterOrEqual(t, len(summary.Results), regularGames)
	require.Len(t, summary.Standings, 6)
	require.NotNil(t, summary.Bracket)
	require.NotNil(t, summary.Champion)
	assert.Same(t, summary.Bracket.Champion, summary.Champion)
	assert.NotNil(t, summary.Stats)
	assert.NotNil(t, summary.Leaders)

	games := 0
	for _, team := range summary.Standings {
		games += team.Wins + team.Losses + team.Ties
	}
	assert.Equal(t, 2*regularGames, games, "every game produces one result per side")
}

func TestSeasonStandingsSorted(t *testing.T) {
	teams := seasonLeague(t, 3, 6)
	summary := runSeason(t, teams, 3)

	for i := 1; i < len(summary.Standings); i++ {
		assert.GreaterOrEqual(t, summary.Standings[i-1].Wins, summary.Standings[i].Wins)
	}
}

func TestSeasonDeterministic(t *testing.T) {
	first := runSeason(t, seasonLeague(t, 11, 4), 42)
	second := runSeason(t, seasonLeague(t, 11, 4), 42)

	require.Equal(t, len(first.Results), len(second.Results))
	for i, a := range first.Results {
		b := second.Results[i]
		assert.Equal(t, a.Home.Name, b.Home.Name, "game %d", i)
		assert.Equal(t, a.Away.Name, b.Away.Name, "game %d", i)
		assert.Equal(t, a.HomeScore, b.HomeScore, "game %d", i)
		assert.Equal(t, a.AwayScore, b.AwayScore, "game %d", i)
		assert.Equal(t, a.Innings, b.Innings, "game %d", i)
	}

	for i := range first.Standings {
		assert.Equal(t, first.Standings[i].Name, second.Standings[i].Name)
		assert.Equal(t, first.Standings[i].Wins, second.Standings[i].Wins)
	}
	assert.Equal(t, first.Champion.Name, second.Champion.Name)
}

func TestSeasonSeedsDiverge(t *testing.T) {
	first := runSeason(t, seasonLeague(t, 11, 4), 1)
	second := runSeason(t, seasonLeague(t, 11, 4), 2)

	// Playoff length can differ between runs; the regular season cannot.
	regularGames := 3 * 4 * 3 / 2
	same := true
	for i := 0; i < regularGames; i++ {
		if first.Results[i].HomeScore != second.Results[i].HomeScore ||
			first.Results[i].AwayScore != second.Results[i].AwayScore {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should produce different game scores")
}

func TestSeasonPlayoffRecordsSeparate(t *testing.T) {
	teams := seasonLeague(t, 5, 4)
	summary := runSeason(t, teams, 5)

	regularGames := 3 * 4 * 3 / 2
	wins, losses, ties := 0, 0, 0
	for _, team := range teams {
		wins += team.Wins
		losses += team.Losses
		ties += team.Ties
	}
	assert.Equal(t, 2*regularGames, wins+losses+ties, "playoff games never touch the standings")

	require.NotNil(t, summary.Bracket)
	champ := summary.Bracket.Champion
	assert.Equal(t, 7, champ.PlayoffWins, "three semifinal wins plus four final wins")
}

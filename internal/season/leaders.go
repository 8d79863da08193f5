package season

import (
	"github.com/lox/wiffleball/internal/league"
)

// Qualification minimums for the leaderboards. ERA additionally requires a
// minimum innings total that scales with the season length.
const (
	minQualifyingAtBats = 33
	minQualifyingGames  = 5
)

// LeaderEntry names one category leader.
type LeaderEntry struct {
	Player *league.Player
	Team   string
	Value  float64
}

// Leaders holds the season's category winners. A nil entry means nobody
// qualified.
type Leaders struct {
	BattingAverage *LeaderEntry
	HomeRuns       *LeaderEntry
	RBI            *LeaderEntry
	ERA            *LeaderEntry
	Wins           *LeaderEntry
	Strikeouts     *LeaderEntry
}

// ComputeLeaders scans every roster for the batting and pitching title
// holders, applying the qualification minimums.
func ComputeLeaders(teams []*league.Team, stats *league.StatBook) *Leaders {
	minInnings := float64(max(minQualifyingGames, len(teams)*3/2))

	leaders := &Leaders{}
	for _, team := range teams {
		for _, player := range team.AllPlayers() {
			if stats.HasBatting(player) {
				b := stats.Batting(player)
				if b.AtBats >= minQualifyingAtBats {
					leaders.BattingAverage = better(leaders.BattingAverage, player, team.Name, b.Average(), false)
					leaders.HomeRuns = better(leaders.HomeRuns, player, team.Name, float64(b.HomeRuns), false)
					leaders.RBI = better(leaders.RBI, player, team.Name, float64(b.RBI), false)
				}
			}
			if stats.HasPitching(player) {
				p := stats.Pitching(player)
				if p.GamesPitched < minQualifyingGames {
					continue
				}
				leaders.Wins = better(leaders.Wins, player, team.Name, float64(p.Wins), false)
				leaders.Strikeouts = better(leaders.Strikeouts, player, team.Name, float64(p.Strikeouts), false)
				if p.InningsPitched >= minInnings {
					leaders.ERA = better(leaders.ERA, player, team.Name, p.ERA(), true)
				}
			}
		}
	}
	return leaders
}

// better keeps whichever of the incumbent and challenger leads the category.
// The incumbent wins ties so roster order stays the deterministic tie-break.
func better(current *LeaderEntry, player *league.Player, team string, value float64, lowerWins bool) *LeaderEntry {
	if current != nil {
		if lowerWins && current.Value <= value {
			return current
		}
		if !lowerWins && current.Value >= value {
			return current
		}
	}
	return &LeaderEntry{Player: player, Team: team, Value: value}
}

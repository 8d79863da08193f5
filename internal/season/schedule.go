package season

import (
	rand "math/rand/v2"

	"github.com/lox/wiffleball/internal/league"
)

// Matchup is one scheduled game. The lower-indexed team of the pair hosts;
// the shuffle decides play order, not venue.
type Matchup struct {
	Home *league.Team
	Away *league.Team
}

// GenerateSchedule produces a round-robin where every unordered team pair
// meets gamesPerPair times, then shuffles the whole list into play order.
func GenerateSchedule(rng *rand.Rand, teams []*league.Team, gamesPerPair int) []Matchup {
	var schedule []Matchup
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			for g := 0; g < gamesPerPair; g++ {
				schedule = append(schedule, Matchup{Home: teams[i], Away: teams[j]})
			}
		}
	}
	rng.Shuffle(len(schedule), func(a, b int) {
		schedule[a], schedule[b] = schedule[b], schedule[a]
	})
	return schedule
}

// OrganizeSeries chunks the shuffled schedule into fixed-size series windows.
// The windows scope pitcher usage only; because the shuffle runs first, a
// series is not guaranteed to hold games against a single opponent. A short
// trailing window becomes a short series rather than dropping games.
func OrganizeSeries(schedule []Matchup, gamesPerSeries int) [][]Matchup {
	var series [][]Matchup
	for i := 0; i < len(schedule); i += gamesPerSeries {
		end := min(i+gamesPerSeries, len(schedule))
		series = append(series, schedule[i:end])
	}
	return series
}

package season

import (
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/sim"
)

// SeriesResult records one best-of-N playoff series.
type SeriesResult struct {
	Name   string
	Team1  *league.Team
	Team2  *league.Team
	Wins1  int
	Wins2  int
	Winner *league.Team
	Games  []*sim.Result
}

// BracketResult is the full playoff outcome.
type BracketResult struct {
	Semifinals [2]*SeriesResult
	Final      *SeriesResult
	Champion   *league.Team
}

// runPlayoffs seeds the bracket from the standings: 1 plays 2 and 3 plays 4
// in best-of-5 semifinals, the winners meet in a best-of-7 final.
func (s *Season) runPlayoffs(seeds []*league.Team) *BracketResult {
	s.logger.Info("starting playoffs",
		"semifinal_best_of", s.cfg.Rules.SemifinalBestOf,
		"final_best_of", s.cfg.Rules.FinalBestOf)

	semi1 := s.playSeries("Semifinal", seeds[0], seeds[1], s.cfg.Rules.SemifinalBestOf)
	semi2 := s.playSeries("Semifinal", seeds[2], seeds[3], s.cfg.Rules.SemifinalBestOf)
	final := s.playSeries("Championship", semi1.Winner, semi2.Winner, s.cfg.Rules.FinalBestOf)

	s.logger.Info("champion crowned", "team", final.Winner.Name)

	return &BracketResult{
		Semifinals: [2]*SeriesResult{semi1, semi2},
		Final:      final,
		Champion:   final.Winner,
	}
}

// playSeries runs games until one side reaches the clinch count. Home field
// alternates game to game, with the higher seed hosting the odd games. The
// rotation cap does not apply; both teams send their best arm every game.
func (s *Season) playSeries(name string, team1, team2 *league.Team, bestOf int) *SeriesResult {
	sr := &SeriesResult{Name: name, Team1: team1, Team2: team2}
	winsNeeded := bestOf/2 + 1

	for gameNum := 1; sr.Wins1 < winsNeeded && sr.Wins2 < winsNeeded; gameNum++ {
		home, away := team1, team2
		if gameNum%2 == 0 {
			home, away = team2, team1
		}

		homePitcher := s.rotation.SelectPitcher(home, 0, true)
		awayPitcher := s.rotation.SelectPitcher(away, 0, true)

		result := s.runGame(home, away, homePitcher, awayPitcher, true)
		sr.Games = append(sr.Games, result)

		if result.Winner == team1 {
			sr.Wins1++
		} else {
			sr.Wins2++
		}

		s.logger.Debug("playoff game complete",
			"series", name,
			"game", gameNum,
			"winner", result.Winner.Name,
			"score", result.HomeScore+result.AwayScore)
	}

	sr.Winner = team1
	if sr.Wins2 > sr.Wins1 {
		sr.Winner = team2
	}
	s.logger.Info("series decided",
		"series", name,
		"winner", sr.Winner.Name,
		"games", len(sr.Games))
	return sr
}

package season

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/probability"
	"github.com/lox/wiffleball/internal/randutil"
	"github.com/lox/wiffleball/internal/sim"
)

// Season drives a full league year: schedule generation, series-scoped
// pitcher rotation, every regular-season game, and the playoff bracket.
// It owns the StatBook for the year; teams and players carry no ambient
// stat state between seasons.
type Season struct {
	teams  []*league.Team
	cfg    *config.Config
	seed   int64
	logger *log.Logger
	clock  quartz.Clock

	model    *probability.Model
	stats    *league.StatBook
	rotation *Rotation
	rng      *rand.Rand

	// Every game runs on its own stream derived from the master seed, so
	// game N's outcome never depends on how many draws game N-1 consumed.
	gameCount int64

	results []*sim.Result
}

// Summary is the complete output of one season run.
type Summary struct {
	Standings []*league.Team
	Results   []*sim.Result
	Champion  *league.Team
	Bracket   *BracketResult // nil when the league is too small for playoffs
	Stats     *league.StatBook
	Leaders   *Leaders
	Duration  time.Duration
}

// New validates the inputs and prepares a season. A league needs at least
// two teams; anything less fails fast before any simulation work.
func New(teams []*league.Team, cfg *config.Config, seed int64, logger *log.Logger, clock quartz.Clock) (*Season, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("season requires at least 2 teams, got %d", len(teams))
	}
	for _, t := range teams {
		if len(t.ActiveRoster) < cfg.Rules.MinLineup {
			return nil, fmt.Errorf("team %s has %d active players, need at least %d",
				t.Name, len(t.ActiveRoster), cfg.Rules.MinLineup)
		}
	}
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Season{
		teams:    teams,
		cfg:      cfg,
		seed:     seed,
		logger:   logger,
		clock:    clock,
		model:    probability.NewModel(cfg),
		stats:    league.NewStatBook(),
		rotation: NewRotation(cfg.Rules.SeriesPitcherCap, logger),
		rng:      randutil.New(seed),
	}, nil
}

// Run plays the regular season and playoffs to completion.
func (s *Season) Run() (*Summary, error) {
	start := s.clock.Now()

	schedule := GenerateSchedule(s.rng, s.teams, s.cfg.Rules.GamesPerPair)
	series := OrganizeSeries(schedule, s.cfg.Rules.GamesPerSeries)

	s.logger.Info("starting regular season",
		"teams", len(s.teams),
		"games", len(schedule),
		"series", len(series))

	for seriesID, games := range series {
		for _, m := range games {
			homePitcher := s.rotation.SelectPitcher(m.Home, seriesID, false)
			awayPitcher := s.rotation.SelectPitcher(m.Away, seriesID, false)
			s.rotation.RecordStart(homePitcher, seriesID)
			s.rotation.RecordStart(awayPitcher, seriesID)

			result := s.runGame(m.Home, m.Away, homePitcher, awayPitcher, false)
			s.logger.Debug("game complete",
				"series", seriesID+1,
				"home", result.Home.Name,
				"away", result.Away.Name,
				"score", fmt.Sprintf("%d-%d", result.HomeScore, result.AwayScore),
				"innings", result.Innings)
		}
	}

	standings := s.Standings()

	var bracket *BracketResult
	champion := standings[0]
	if len(standings) >= s.cfg.Rules.PlayoffTeams {
		for _, t := range s.teams {
			t.ResetPlayoffRecord()
		}
		bracket = s.runPlayoffs(standings[:s.cfg.Rules.PlayoffTeams])
		champion = bracket.Champion
	} else {
		s.logger.Warn("not enough teams for playoffs, regular season winner takes the title",
			"teams", len(standings),
			"required", s.cfg.Rules.PlayoffTeams)
	}

	duration := s.clock.Since(start)
	s.logger.Info("season complete",
		"games", len(s.results),
		"champion", champion.Name,
		"duration", duration)

	return &Summary{
		Standings: standings,
		Results:   s.results,
		Champion:  champion,
		Bracket:   bracket,
		Stats:     s.stats,
		Leaders:   ComputeLeaders(s.teams, s.stats),
		Duration:  duration,
	}, nil
}

// Standings returns the teams sorted by regular-season wins, best first.
// Teams level on wins keep schedule order, which is itself seed-stable.
func (s *Season) Standings() []*league.Team {
	standings := make([]*league.Team, len(s.teams))
	copy(standings, s.teams)
	for i := 1; i < len(standings); i++ {
		for j := i; j > 0 && standings[j].Wins > standings[j-1].Wins; j-- {
			standings[j], standings[j-1] = standings[j-1], standings[j]
		}
	}
	return standings
}

// Stats exposes the season's StatBook.
func (s *Season) Stats() *league.StatBook {
	return s.stats
}

func (s *Season) runGame(home, away *league.Team, homePitcher, awayPitcher *league.Player, playoff bool) *sim.Result {
	gameRng := randutil.New(randutil.Derive(s.seed, s.gameCount))
	s.gameCount++

	g := &sim.Game{
		Home:        home,
		Away:        away,
		HomePitcher: homePitcher,
		AwayPitcher: awayPitcher,
		Rules:       s.cfg.Rules,
		Evaluator:   s.model,
		Fielding:    &sim.FieldingCheck{Stats: s.stats, Rng: gameRng},
		Stats:       s.stats,
		Logger:      s.logger,
		Rng:         gameRng,
		Playoff:     playoff,
	}
	result := g.Simulate()
	s.results = append(s.results, result)
	return result
}

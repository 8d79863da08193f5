package sim

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/probability"
)

// Game orchestrates one full game: alternating half-innings, the mercy rule,
// extra innings, and final result bookkeeping. One Game value runs exactly
// one game and is not reused.
type Game struct {
	Home *league.Team
	Away *league.Team

	// Starting pitchers are normally assigned by the rotation manager.
	// Left nil, the best arm on the roster starts.
	HomePitcher *league.Player
	AwayPitcher *league.Player

	Rules     config.RulesConfig
	Evaluator Evaluator
	Fielding  *FieldingCheck
	Stats     *league.StatBook
	Logger    *log.Logger
	Rng       *rand.Rand

	// Playoff games keep their own win/loss counters, never award ties
	// (home team wins a tied game), and carry no pitcher decisions.
	Playoff bool

	faced map[*league.Player]int
}

// Result records a finished game.
type Result struct {
	Home      *league.Team
	Away      *league.Team
	HomeScore int
	AwayScore int
	Winner    *league.Team
	Loser     *league.Team
	Tie       bool
	Innings   int

	HomePitcher *league.Player
	AwayPitcher *league.Player
}

// Simulate plays the game to completion and returns the result. Team records
// and the StatBook are updated in place.
func (g *Game) Simulate() *Result {
	g.setup()

	homeLineup := g.lineup(g.Home)
	awayLineup := g.lineup(g.Away)
	homeDefense := g.defense(g.Home, g.HomePitcher)
	awayDefense := g.defense(g.Away, g.AwayPitcher)

	half := &HalfInning{
		Rules:     g.Rules,
		Evaluator: g.Evaluator,
		Fielding:  g.Fielding,
		Stats:     g.Stats,
		Logger:    g.Logger,
		Rng:       g.Rng,
	}

	var homeScore, awayScore int
	inning := 1
	for {
		runs, faced := half.Run(awayLineup, g.HomePitcher, homeDefense, g.situationFor(g.HomePitcher, inning))
		awayScore += runs
		g.faced[g.HomePitcher] += faced
		if inning < g.Rules.MercyRuleInnings && runs >= g.Rules.MercyRuleRuns {
			break
		}

		runs, faced = half.Run(homeLineup, g.AwayPitcher, awayDefense, g.situationFor(g.AwayPitcher, inning))
		homeScore += runs
		g.faced[g.AwayPitcher] += faced
		if inning < g.Rules.MercyRuleInnings && runs >= g.Rules.MercyRuleRuns {
			break
		}

		// Regulation is done; a tie sends the game to extra innings with no
		// hard cap.
		if inning >= g.Rules.InningsPerGame && homeScore != awayScore {
			break
		}
		inning++
	}

	return g.finalize(homeScore, awayScore, inning)
}

func (g *Game) setup() {
	if g.HomePitcher == nil {
		g.HomePitcher = bestPitcher(g.Home.ActiveRoster)
	}
	if g.AwayPitcher == nil {
		g.AwayPitcher = bestPitcher(g.Away.ActiveRoster)
	}
	g.faced = make(map[*league.Player]int, 2)

	// Starters are credited a full game of innings up front. There is no
	// relief model; a start always counts as the configured credit.
	for _, pitcher := range []*league.Player{g.HomePitcher, g.AwayPitcher} {
		line := g.Stats.Pitching(pitcher)
		line.GamesPitched++
		line.GamesStarted++
		line.InningsPitched += g.Rules.StarterInnings
	}
}

// lineup draws a random batting order from the active roster, capped at the
// lineup maximum.
func (g *Game) lineup(team *league.Team) []*league.Player {
	size := min(g.Rules.MaxLineup, len(team.ActiveRoster))
	order := g.Rng.Perm(len(team.ActiveRoster))

	lineup := make([]*league.Player, 0, size)
	for _, idx := range order[:size] {
		player := team.ActiveRoster[idx]
		g.Stats.Batting(player).GamesPlayed++
		lineup = append(lineup, player)
	}
	return lineup
}

// defense is the pitcher plus enough position players to fill the field.
func (g *Game) defense(team *league.Team, pitcher *league.Player) []*league.Player {
	fielders := []*league.Player{pitcher}
	for _, p := range team.ActiveRoster {
		if len(fielders) >= g.Rules.PlayersOnField {
			break
		}
		if p != pitcher {
			fielders = append(fielders, p)
		}
	}
	return fielders
}

// situationFor picks the at-bat context for a half-inning defended by the
// given pitcher. Working near the speed limit dominates; otherwise extra
// innings are clutch, and a long day on the mound brings fatigue.
func (g *Game) situationFor(pitcher *league.Player, inning int) probability.Situation {
	switch {
	case pitcher.Attributes.Velocity >= g.Rules.SpeedWarning:
		return probability.SituationSpeedPressure
	case inning > g.Rules.InningsPerGame:
		return probability.SituationClutch
	case g.faced[pitcher] > pitcher.Attributes.Stamina/3:
		return probability.SituationFatigue
	default:
		return probability.SituationNone
	}
}

func (g *Game) finalize(homeScore, awayScore, innings int) *Result {
	result := &Result{
		Home:        g.Home,
		Away:        g.Away,
		HomeScore:   homeScore,
		AwayScore:   awayScore,
		Innings:     innings,
		HomePitcher: g.HomePitcher,
		AwayPitcher: g.AwayPitcher,
	}

	switch {
	case homeScore > awayScore:
		result.Winner, result.Loser = g.Home, g.Away
	case awayScore > homeScore:
		result.Winner, result.Loser = g.Away, g.Home
	case g.Playoff:
		// A tied playoff game goes to the home team rather than replaying.
		result.Winner, result.Loser = g.Home, g.Away
	default:
		result.Tie = true
	}

	if g.Playoff {
		result.Winner.PlayoffWins++
		result.Loser.PlayoffLosses++
		return result
	}

	if result.Tie {
		g.Home.RecordResult(homeScore, awayScore, league.OutcomeTie)
		g.Away.RecordResult(awayScore, homeScore, league.OutcomeTie)
		return result
	}

	if result.Winner == g.Home {
		g.Home.RecordResult(homeScore, awayScore, league.OutcomeWin)
		g.Away.RecordResult(awayScore, homeScore, league.OutcomeLoss)
		g.Stats.Pitching(g.HomePitcher).Wins++
		g.Stats.Pitching(g.AwayPitcher).Losses++
	} else {
		g.Home.RecordResult(homeScore, awayScore, league.OutcomeLoss)
		g.Away.RecordResult(awayScore, homeScore, league.OutcomeWin)
		g.Stats.Pitching(g.AwayPitcher).Wins++
		g.Stats.Pitching(g.HomePitcher).Losses++
	}
	return result
}

func bestPitcher(roster []*league.Player) *league.Player {
	best := roster[0]
	for _, p := range roster[1:] {
		if p.PitchingSkill() > best.PitchingSkill() {
			best = p
		}
	}
	return best
}

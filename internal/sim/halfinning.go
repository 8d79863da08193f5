package sim

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/probability"
)

// Evaluator produces one at-bat outcome for a pitcher/batter matchup. The
// production implementation is probability.Model; tests inject scripted
// evaluators to drive the state machine into specific scenarios.
type Evaluator interface {
	Evaluate(rng *rand.Rand, pitcher, batter *league.Player, situation probability.Situation) probability.AtBatResult
}

// BaseState is the three bases, first to third. A nil slot is empty. Runner
// identity is kept so runs can be credited to the player who scores.
type BaseState [3]*league.Player

// Runners counts occupied bases.
func (b *BaseState) Runners() int {
	n := 0
	for _, r := range b {
		if r != nil {
			n++
		}
	}
	return n
}

// forceAdvance walks the batter to first and pushes each forced runner one
// base up the chain. A runner with an open base behind them holds. Returns
// the runner forced home, or nil.
func (b *BaseState) forceAdvance(batter *league.Player) *league.Player {
	runner := batter
	for i := 0; i < len(b); i++ {
		if b[i] == nil {
			b[i] = runner
			return nil
		}
		runner, b[i] = b[i], runner
	}
	return runner
}

// hitAdvance moves every runner up by bases, scoring any who reach index 3 or
// beyond, then places the batter on base bases-1. On a home run the batter
// scores and occupies nothing. Returns the players who scored, runners first.
func (b *BaseState) hitAdvance(batter *league.Player, bases int) []*league.Player {
	var scored []*league.Player
	var next BaseState
	for i, runner := range b {
		if runner == nil {
			continue
		}
		if i+bases >= len(b) {
			scored = append(scored, runner)
		} else {
			next[i+bases] = runner
		}
	}
	if bases >= 4 {
		scored = append(scored, batter)
	} else {
		next[bases-1] = batter
	}
	*b = next
	return scored
}

// HalfInning runs one side's turn at bat to three outs. Each at-bat mutates
// the StatBook atomically with the state transition, so a half-inning can
// never leave stats and score disagreeing.
type HalfInning struct {
	Rules     config.RulesConfig
	Evaluator Evaluator
	Fielding  *FieldingCheck // nil disables the defensive sub-check
	Stats     *league.StatBook
	Logger    *log.Logger
	Rng       *rand.Rand
}

// Run simulates the half-inning and returns runs scored and batters faced.
// The lineup cycles from its top; the situation applies to every at-bat in
// the half.
func (h *HalfInning) Run(lineup []*league.Player, pitcher *league.Player, defense []*league.Player, situation probability.Situation) (runs, battersFaced int) {
	outs := 0
	var bases BaseState

	for outs < 3 {
		if battersFaced >= h.Rules.BattersSafetyCap {
			// A misconfigured model can produce a half-inning that never
			// records an out. Force the inning closed rather than loop.
			h.Logger.Warn("batter safety cap reached, forcing inning end",
				"cap", h.Rules.BattersSafetyCap,
				"outs", outs,
				"runs", runs)
			outs = 3
			break
		}

		batter := lineup[battersFaced%len(lineup)]

		var result probability.AtBatResult
		if pitcher.Attributes.Velocity > h.Rules.SpeedLimit {
			// Pitching over the speed limit is an automatic walk under MLW
			// rules. No at-bat is evaluated.
			result = probability.AtBatResult{
				Outcome:       probability.Walk,
				Detail:        "Speed limit violation",
				BasesAdvanced: 1,
			}
		} else {
			result = h.Evaluator.Evaluate(h.Rng, pitcher, batter, situation)
		}

		if h.Fielding != nil && (result.Outcome == probability.BallInPlay || result.Outcome == probability.Out) {
			result = h.Fielding.Check(defense, result)
		}

		batting := h.Stats.Batting(batter)
		pitching := h.Stats.Pitching(pitcher)
		batting.PlateAppearances++
		pitching.BattersFaced++

		switch result.Outcome {
		case probability.Strikeout:
			outs++
			batting.AtBats++
			batting.Strikeouts++
			pitching.Strikeouts++

		case probability.Out:
			outs++
			batting.AtBats++

		case probability.Walk:
			if scorer := bases.forceAdvance(batter); scorer != nil {
				runs++
				batting.RBI++
				h.Stats.Batting(scorer).Runs++
			}
			batting.Walks++
			pitching.WalksAllowed++

		case probability.HitByPitch:
			if scorer := bases.forceAdvance(batter); scorer != nil {
				runs++
				batting.RBI++
				h.Stats.Batting(scorer).Runs++
			}
			batting.HitByPitch++
			pitching.HitBatters++

		case probability.BallInPlay, probability.HomeRun:
			scored := bases.hitAdvance(batter, result.BasesAdvanced)
			runs += len(scored)
			batting.AtBats++
			batting.Hits++
			batting.RBI += len(scored)
			for _, scorer := range scored {
				h.Stats.Batting(scorer).Runs++
			}
			switch result.HitType {
			case probability.HitDouble:
				batting.Doubles++
			case probability.HitTriple:
				batting.Triples++
			case probability.HitHomeRun:
				batting.HomeRuns++
			}
			pitching.HitsAllowed++
		}

		battersFaced++
	}

	// All runs are charged to the pitcher as earned. There is no error-based
	// unearned run bookkeeping in MLW scoring.
	if runs > 0 {
		pitching := h.Stats.Pitching(pitcher)
		pitching.Runs += runs
		pitching.EarnedRuns += runs
	}

	return runs, battersFaced
}

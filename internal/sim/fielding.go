package sim

import (
	rand "math/rand/v2"

	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/probability"
)

// playType classifies a batted ball for the defensive check.
type playType int

const (
	groundBall playType = iota
	lineDrive
	flyBall
)

// FieldingCheck resolves whether the three on-field defenders convert a
// batted ball. A successful check turns a borderline hit into an out with
// putout/assist attribution; a failed check can upgrade the hit with an
// error, and a booted should-be-out becomes a single.
type FieldingCheck struct {
	Stats *league.StatBook
	Rng   *rand.Rand
}

// Check takes a ball-in-play or out result and returns the post-defense
// result. Home runs clear the field and are never checked.
func (f *FieldingCheck) Check(defense []*league.Player, result probability.AtBatResult) probability.AtBatResult {
	if len(defense) == 0 || result.HitType == probability.HitHomeRun {
		return result
	}

	play := classifyPlay(result)
	skill, chance := fieldingSkill(defense, play)

	// Most plays are routine and don't engage a check at all.
	if f.Rng.Float64() > chance {
		return result
	}

	roll := float64(f.Rng.IntN(100) + 1)
	if roll <= skill {
		f.creditOut(defense, play)
		return probability.AtBatResult{Outcome: probability.Out, Detail: outDetail(play)}
	}

	if result.IsHit() {
		// The hit stands. A botched attempt sometimes compounds into an
		// error that gives everyone an extra base.
		if f.Rng.Float64() < 0.3 {
			f.Stats.Fielding(worstHands(defense)).Errors++
			if result.BasesAdvanced < 4 {
				result.BasesAdvanced++
			}
			result.Detail += " (fielding error)"
		}
		return result
	}

	// A playable ball nobody converted falls in for a single.
	return probability.AtBatResult{
		Outcome:       probability.BallInPlay,
		HitType:       probability.HitSingle,
		Detail:        "Single on fielding mistake",
		BasesAdvanced: 1,
	}
}

func classifyPlay(result probability.AtBatResult) playType {
	switch result.HitType {
	case probability.HitDouble:
		return lineDrive
	case probability.HitTriple:
		return flyBall
	default:
		return groundBall
	}
}

// fieldingSkill averages the defenders' ratings with weights that suit the
// play, and returns the chance the play engages a check at all.
func fieldingSkill(defense []*league.Player, play playType) (skill, chance float64) {
	var total float64
	for _, p := range defense {
		switch play {
		case groundBall:
			total += float64(p.Attributes.Range)*0.6 + float64(p.Attributes.Hands)*0.4
		case flyBall:
			total += float64(p.Attributes.Range)*0.7 + float64(p.Attributes.ArmStrength)*0.3
		case lineDrive:
			total += float64(p.Attributes.Range)*0.8 + float64(p.Attributes.Hands)*0.2
		}
	}
	skill = total / float64(len(defense))

	switch play {
	case groundBall:
		chance = 0.30
	case flyBall:
		chance = 0.40
	case lineDrive:
		chance = 0.25
	}
	return skill, chance
}

func (f *FieldingCheck) creditOut(defense []*league.Player, play playType) {
	if play == groundBall && len(defense) > 1 {
		// Ground ball: one defender throws, another takes the putout.
		thrower := defense[f.Rng.IntN(len(defense))]
		receiver := thrower
		for receiver == thrower {
			receiver = defense[f.Rng.IntN(len(defense))]
		}
		f.Stats.Fielding(thrower).Assists++
		f.Stats.Fielding(receiver).Putouts++
		return
	}
	f.Stats.Fielding(bestRange(defense)).Putouts++
}

func outDetail(play playType) string {
	switch play {
	case flyBall:
		return "Fly out"
	case lineDrive:
		return "Line out"
	default:
		return "Ground out"
	}
}

func bestRange(defense []*league.Player) *league.Player {
	best := defense[0]
	for _, p := range defense[1:] {
		if p.Attributes.Range > best.Attributes.Range {
			best = p
		}
	}
	return best
}

func worstHands(defense []*league.Player) *league.Player {
	worst := defense[0]
	for _, p := range defense[1:] {
		if p.Attributes.Hands < worst.Attributes.Hands {
			worst = p
		}
	}
	return worst
}

package probability

import "fmt"

// Outcome is the closed set of at-bat results. Behavior downstream switches
// on this enum, never on the human-readable detail string.
type Outcome int

const (
	Strikeout Outcome = iota
	Walk
	HitByPitch
	BallInPlay
	HomeRun
	Out
)

var outcomeNames = map[Outcome]string{
	Strikeout:  "strikeout",
	Walk:       "walk",
	HitByPitch: "hit_by_pitch",
	BallInPlay: "ball_in_play",
	HomeRun:    "home_run",
	Out:        "out",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// HitType classifies a ball in play that goes for a hit.
type HitType int

const (
	HitNone HitType = iota
	HitSingle
	HitDouble
	HitTriple
	HitHomeRun
)

var hitTypeNames = map[HitType]string{
	HitNone:    "none",
	HitSingle:  "single",
	HitDouble:  "double",
	HitTriple:  "triple",
	HitHomeRun: "home_run",
}

func (h HitType) String() string {
	if name, ok := hitTypeNames[h]; ok {
		return name
	}
	return fmt.Sprintf("hit_type(%d)", int(h))
}

// Bases returns the bases the batter takes on this hit type.
func (h HitType) Bases() int {
	switch h {
	case HitSingle:
		return 1
	case HitDouble:
		return 2
	case HitTriple:
		return 3
	case HitHomeRun:
		return 4
	default:
		return 0
	}
}

// Situation tags an at-bat with game context that shifts the raw outcome
// scores before the sigmoid step.
type Situation int

const (
	SituationNone Situation = iota
	SituationClutch
	SituationFatigue
	SituationSpeedPressure
)

var situationNames = map[Situation]string{
	SituationNone:          "none",
	SituationClutch:        "clutch",
	SituationFatigue:       "fatigue",
	SituationSpeedPressure: "speed_limit_pressure",
}

func (s Situation) String() string {
	if name, ok := situationNames[s]; ok {
		return name
	}
	return fmt.Sprintf("situation(%d)", int(s))
}

// AtBatResult is the transient value produced by one plate appearance.
// Detail is display text only; BasesAdvanced drives the state machine.
type AtBatResult struct {
	Outcome       Outcome
	HitType       HitType
	Detail        string
	BasesAdvanced int
}

// IsHit reports whether the result is a base hit of any kind.
func (r AtBatResult) IsHit() bool {
	return r.HitType != HitNone
}

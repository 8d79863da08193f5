package probability

import (
	"math"
	rand "math/rand/v2"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
)

// Model converts a pitcher/batter attribute matchup into an outcome
// distribution using a logistic odds approach. All scale factors and bias
// constants come from configuration so balance can be tuned without touching
// this code. The model holds no random state; callers pass the stream they
// want the draw taken from.
type Model struct {
	factors config.FactorsConfig
	weights config.HitWeightsConfig
}

// NewModel builds a model from the configured tuning surface.
func NewModel(cfg *config.Config) *Model {
	return &Model{factors: cfg.Factors, weights: cfg.HitWeights}
}

// OutcomeProbabilities is a normalized distribution over the five primary
// at-bat outcomes. The fields always sum to 1.
type OutcomeProbabilities struct {
	Strikeout  float64
	Walk       float64
	BallInPlay float64
	HomeRun    float64
	Out        float64
}

// HitTypeProbabilities is a normalized distribution over hit types for a
// ball put in play.
type HitTypeProbabilities struct {
	Single  float64
	Double  float64
	Triple  float64
	HomeRun float64
}

// normalize maps a 1-100 rating onto [-1,1] centered at 50.
func normalize(attribute int) float64 {
	return float64(attribute-50) / 50.0
}

// sigmoid is the logistic function with the input clamped so exp never
// overflows.
func sigmoid(x float64) float64 {
	x = math.Max(-500, math.Min(500, x))
	return 1 / (1 + math.Exp(-x))
}

// Outcomes computes the primary outcome distribution for the matchup.
func (m *Model) Outcomes(pitcher, batter *league.Player, situation Situation) OutcomeProbabilities {
	velocity := normalize(pitcher.Attributes.Velocity)
	movement := normalize(pitcher.Attributes.Movement)
	control := normalize(pitcher.Attributes.Control)
	deception := normalize(pitcher.Attributes.Deception)

	contact := normalize(batter.Attributes.Contact)
	discipline := normalize(batter.Attributes.Discipline)
	power := normalize(batter.Attributes.Power)

	stuff := velocity*m.factors.PitcherVelocityWeight +
		movement*m.factors.PitcherMovementWeight +
		control*m.factors.PitcherControlWeight
	command := control*0.6 + deception*0.4

	hitAbility := contact*m.factors.HitterContactWeight + discipline*0.3
	plateDiscipline := discipline*m.factors.HitterDisciplineWeight + contact*0.3

	strikeoutInput := m.factors.StrikeoutFactor*(stuff-hitAbility) +
		m.factors.BaseStrikeoutAdjustment
	walkInput := m.factors.WalkFactor*(plateDiscipline-command) +
		m.factors.BaseWalkAdjustment
	hitInput := m.factors.HitFactor*(hitAbility-stuff*0.8) +
		m.factors.BaseHitAdjustment
	homerunInput := m.factors.HomerunFactor*(power*m.factors.HitterPowerWeight-stuff*0.6) +
		m.factors.BaseHomerunAdjustment

	if situation != SituationNone {
		mod := m.situationalDeltas(situation, pitcher, batter)
		strikeoutInput += mod.strikeout
		walkInput += mod.walk
		hitInput += mod.hit
		homerunInput += mod.homerun
	}

	pStrikeout := sigmoid(strikeoutInput)
	pWalk := sigmoid(walkInput)
	pHit := sigmoid(hitInput)
	pHomerun := sigmoid(homerunInput)

	// A home run is a hit; carve it out so it isn't counted twice.
	pBallInPlay := pHit * (1 - pHomerun)

	rawTotal := pStrikeout + pWalk + pBallInPlay + pHomerun

	// A degenerate configuration can drive every sigmoid toward zero. Fall
	// back to a fixed safe distribution instead of dividing by near-zero.
	if rawTotal < 0.1 {
		pStrikeout = 0.25
		pWalk = 0.08
		pBallInPlay = 0.15
		pHomerun = 0.02
		rawTotal = pStrikeout + pWalk + pBallInPlay + pHomerun
	}

	pOut := math.Max(0, 1-rawTotal)
	total := rawTotal + pOut

	return OutcomeProbabilities{
		Strikeout:  pStrikeout / total,
		Walk:       pWalk / total,
		BallInPlay: pBallInPlay / total,
		HomeRun:    pHomerun / total,
		Out:        pOut / total,
	}
}

// HitTypes computes the secondary distribution for a ball put in play.
// Power shifts weight from singles to extra bases, speed boosts triples, and
// a strong pitcher suppresses extra-base contact.
func (m *Model) HitTypes(pitcher, batter *league.Player) HitTypeProbabilities {
	powerNorm := normalize(batter.Attributes.Power)
	speedNorm := normalize(batter.Attributes.Speed)

	single := m.weights.Single
	double := m.weights.Double
	triple := m.weights.Triple
	homerun := m.weights.Homerun

	powerFactor := powerNorm * m.weights.PowerScalingFactor

	switch {
	case batter.Attributes.Power >= m.weights.HomerunPowerThreshold:
		homerun *= 1 + powerFactor
		double *= 1 + powerFactor*0.5
		single *= 1 - powerFactor*0.3
	case batter.Attributes.Power >= m.weights.ExtraBasePowerThreshold:
		double *= 1 + powerFactor*0.7
		triple *= 1 + powerFactor*0.3
		single *= 1 - powerFactor*0.2
	}

	if batter.Attributes.Speed >= m.weights.TripleSpeedThreshold {
		triple *= 1 + speedNorm*0.4
		single *= 1 + speedNorm*0.1
	}

	// Hit-type suppression weighs movement heavier than the primary stuff
	// composite does.
	stuff := normalize(pitcher.Attributes.Velocity)*0.4 +
		normalize(pitcher.Attributes.Movement)*0.6
	if stuff > 0.2 {
		homerun *= 1 - stuff*0.3
		double *= 1 - stuff*0.2
		triple *= 1 - stuff*0.4
	}

	total := single + double + triple + homerun
	return HitTypeProbabilities{
		Single:  single / total,
		Double:  double / total,
		Triple:  triple / total,
		HomeRun: homerun / total,
	}
}

type deltas struct {
	strikeout float64
	walk      float64
	hit       float64
	homerun   float64
}

func (m *Model) situationalDeltas(situation Situation, pitcher, batter *league.Player) deltas {
	var d deltas
	switch situation {
	case SituationClutch:
		diff := normalize(batter.Attributes.Clutch) - normalize(pitcher.Attributes.Clutch)
		mod := diff * m.factors.ClutchModifier
		d.hit += mod
		d.homerun += mod * 0.5
		d.strikeout -= mod * 0.3
	case SituationFatigue:
		effect := m.factors.FatigueModifier
		d.strikeout += effect
		d.walk -= effect * 1.5
		d.hit -= effect * 0.8
	case SituationSpeedPressure:
		// A pitcher working close to the speed limit eases off and loses
		// some command.
		if pitcher.Attributes.Velocity >= 70 {
			effect := normalize(pitcher.Attributes.Velocity-65) * 0.2
			d.walk -= effect
			d.hit += effect * 0.5
		}
	}
	return d
}

// Evaluate samples one at-bat outcome from the matchup distribution. The
// primary draw walks the outcomes in a fixed order (strikeout, walk, ball in
// play, home run, out) so two runs from the same random stream always agree.
func (m *Model) Evaluate(rng *rand.Rand, pitcher, batter *league.Player, situation Situation) AtBatResult {
	probs := m.Outcomes(pitcher, batter, situation)

	roll := rng.Float64()
	cumulative := 0.0

	cumulative += probs.Strikeout
	if roll <= cumulative {
		return AtBatResult{Outcome: Strikeout, Detail: "Strikeout"}
	}

	cumulative += probs.Walk
	if roll <= cumulative {
		return AtBatResult{Outcome: Walk, Detail: "Walk", BasesAdvanced: 1}
	}

	cumulative += probs.BallInPlay
	if roll <= cumulative {
		return m.evaluateHitType(rng, pitcher, batter)
	}

	cumulative += probs.HomeRun
	if roll <= cumulative {
		return AtBatResult{Outcome: HomeRun, HitType: HitHomeRun, Detail: "Home run", BasesAdvanced: 4}
	}

	return AtBatResult{Outcome: Out, Detail: "Ground out"}
}

func (m *Model) evaluateHitType(rng *rand.Rand, pitcher, batter *league.Player) AtBatResult {
	probs := m.HitTypes(pitcher, batter)

	roll := rng.Float64()
	cumulative := 0.0

	cumulative += probs.Single
	if roll <= cumulative {
		return AtBatResult{Outcome: BallInPlay, HitType: HitSingle, Detail: "Single", BasesAdvanced: 1}
	}

	cumulative += probs.Double
	if roll <= cumulative {
		return AtBatResult{Outcome: BallInPlay, HitType: HitDouble, Detail: "Double", BasesAdvanced: 2}
	}

	cumulative += probs.Triple
	if roll <= cumulative {
		return AtBatResult{Outcome: BallInPlay, HitType: HitTriple, Detail: "Triple", BasesAdvanced: 3}
	}

	return AtBatResult{Outcome: BallInPlay, HitType: HitHomeRun, Detail: "Home run", BasesAdvanced: 4}
}

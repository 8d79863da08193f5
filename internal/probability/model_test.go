package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/randutil"
)

func player(attrs league.Attributes) *league.Player {
	return league.NewPlayer("Test", 25, attrs)
}

func averagePlayer() *league.Player {
	attrs := league.Attributes{}
	for _, kind := range league.AttributeKinds() {
		attrs.Set(kind, 50)
	}
	return player(attrs)
}

func (p OutcomeProbabilities) sum() float64 {
	return p.Strikeout + p.Walk + p.BallInPlay + p.HomeRun + p.Out
}

func TestOutcomesSumToOne(t *testing.T) {
	model := NewModel(config.Default())
	rng := randutil.New(7)

	for i := 0; i < 500; i++ {
		var pa, ba league.Attributes
		for _, kind := range league.AttributeKinds() {
			pa.Set(kind, 1+rng.IntN(100))
			ba.Set(kind, 1+rng.IntN(100))
		}

		probs := model.Outcomes(player(pa), player(ba), SituationNone)
		assert.InDelta(t, 1.0, probs.sum(), 1e-9)
		for _, p := range []float64{probs.Strikeout, probs.Walk, probs.BallInPlay, probs.HomeRun, probs.Out} {
			assert.GreaterOrEqual(t, p, 0.0)
		}
	}
}

func TestOutcomesFallbackDistribution(t *testing.T) {
	// Zero factors and huge negative biases drive every sigmoid toward zero,
	// which must trip the fixed safe distribution rather than a divide by
	// near-zero.
	cfg := config.Default()
	cfg.Factors.StrikeoutFactor = 0.001
	cfg.Factors.BaseStrikeoutAdjustment = -50
	cfg.Factors.WalkFactor = 0.001
	cfg.Factors.BaseWalkAdjustment = -50
	cfg.Factors.HitFactor = 0.001
	cfg.Factors.BaseHitAdjustment = -50
	cfg.Factors.HomerunFactor = 0.001
	cfg.Factors.BaseHomerunAdjustment = -50

	model := NewModel(cfg)
	probs := model.Outcomes(averagePlayer(), averagePlayer(), SituationNone)

	assert.InDelta(t, 0.25, probs.Strikeout, 1e-9)
	assert.InDelta(t, 0.08, probs.Walk, 1e-9)
	assert.InDelta(t, 0.15, probs.BallInPlay, 1e-9)
	assert.InDelta(t, 0.02, probs.HomeRun, 1e-9)
	assert.InDelta(t, 0.50, probs.Out, 1e-9)
}

func TestBetterPitcherStrikesOutMore(t *testing.T) {
	model := NewModel(config.Default())
	batter := averagePlayer()

	weak := player(league.Attributes{Velocity: 30, Movement: 30, Control: 30, Deception: 30})
	strong := player(league.Attributes{Velocity: 74, Movement: 90, Control: 85, Deception: 80})

	weakProbs := model.Outcomes(weak, batter, SituationNone)
	strongProbs := model.Outcomes(strong, batter, SituationNone)

	assert.Greater(t, strongProbs.Strikeout, weakProbs.Strikeout)
	assert.Less(t, strongProbs.BallInPlay, weakProbs.BallInPlay)
}

func TestHitTypesSumToOne(t *testing.T) {
	model := NewModel(config.Default())

	probs := model.HitTypes(averagePlayer(), averagePlayer())
	total := probs.Single + probs.Double + probs.Triple + probs.HomeRun
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPowerShiftsHitTypes(t *testing.T) {
	model := NewModel(config.Default())
	pitcher := averagePlayer()

	slap := player(league.Attributes{Power: 30, Contact: 70, Discipline: 50, Speed: 50})
	slugger := player(league.Attributes{Power: 90, Contact: 70, Discipline: 50, Speed: 50})

	slapProbs := model.HitTypes(pitcher, slap)
	slugProbs := model.HitTypes(pitcher, slugger)

	assert.Greater(t, slugProbs.HomeRun, slapProbs.HomeRun)
	assert.Less(t, slugProbs.Single, slapProbs.Single)
}

func TestSpeedBoostsTriples(t *testing.T) {
	model := NewModel(config.Default())
	pitcher := averagePlayer()

	slow := player(league.Attributes{Power: 50, Contact: 50, Discipline: 50, Speed: 40})
	fast := player(league.Attributes{Power: 50, Contact: 50, Discipline: 50, Speed: 90})

	assert.Greater(t,
		model.HitTypes(pitcher, fast).Triple,
		model.HitTypes(pitcher, slow).Triple)
}

func TestClutchSituationFavorsClutchBatter(t *testing.T) {
	model := NewModel(config.Default())

	calm := player(league.Attributes{Contact: 60, Power: 60, Discipline: 50, Clutch: 90})
	pitcher := player(league.Attributes{Velocity: 60, Movement: 60, Control: 60, Deception: 60, Clutch: 20})

	neutral := model.Outcomes(pitcher, calm, SituationNone)
	clutch := model.Outcomes(pitcher, calm, SituationClutch)

	assert.Greater(t, clutch.BallInPlay+clutch.HomeRun, neutral.BallInPlay+neutral.HomeRun)
	assert.Less(t, clutch.Strikeout, neutral.Strikeout)
}

func TestEvaluateDeterministic(t *testing.T) {
	model := NewModel(config.Default())
	pitcher := averagePlayer()
	batter := averagePlayer()

	a := randutil.New(123)
	b := randutil.New(123)
	for i := 0; i < 200; i++ {
		ra := model.Evaluate(a, pitcher, batter, SituationNone)
		rb := model.Evaluate(b, pitcher, batter, SituationNone)
		require.Equal(t, ra, rb, "draw %d diverged", i)
	}
}

func TestEvaluateResultShape(t *testing.T) {
	model := NewModel(config.Default())
	rng := randutil.New(5)
	pitcher := averagePlayer()
	batter := averagePlayer()

	seen := make(map[Outcome]bool)
	for i := 0; i < 2000; i++ {
		result := model.Evaluate(rng, pitcher, batter, SituationNone)
		seen[result.Outcome] = true

		switch result.Outcome {
		case Strikeout, Out:
			assert.Zero(t, result.BasesAdvanced)
			assert.False(t, result.IsHit())
		case Walk:
			assert.Equal(t, 1, result.BasesAdvanced)
		case BallInPlay:
			assert.True(t, result.IsHit())
			assert.Equal(t, result.HitType.Bases(), result.BasesAdvanced)
		case HomeRun:
			assert.Equal(t, 4, result.BasesAdvanced)
			assert.Equal(t, HitHomeRun, result.HitType)
		}
	}

	// An average matchup should produce every primary outcome in 2000 draws.
	for _, o := range []Outcome{Strikeout, Walk, BallInPlay, Out} {
		assert.True(t, seen[o], "never sampled %s", o)
	}
}

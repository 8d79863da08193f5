package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete engine configuration: league rules plus the skill
// model tuning surface. Balance changes live here, not in the model code.
type Config struct {
	Rules      RulesConfig      `hcl:"rules,block"`
	Factors    FactorsConfig    `hcl:"factors,block"`
	HitWeights HitWeightsConfig `hcl:"hit_weights,block"`
}

// RulesConfig contains the MLW rule set and season structure.
type RulesConfig struct {
	InningsPerGame   int     `hcl:"innings_per_game,optional"`
	MercyRuleRuns    int     `hcl:"mercy_rule_runs,optional"`
	MercyRuleInnings int     `hcl:"mercy_rule_innings,optional"` // no mercy rule from this inning on
	BattersSafetyCap int     `hcl:"batters_safety_cap,optional"`
	MinLineup        int     `hcl:"min_lineup,optional"`
	MaxLineup        int     `hcl:"max_lineup,optional"`
	PlayersOnField   int     `hcl:"players_on_field,optional"` // including the pitcher
	SpeedLimit       int     `hcl:"speed_limit,optional"`      // mph, automatic walk above this
	SpeedWarning     int     `hcl:"speed_warning,optional"`    // pressure situation at or above this
	GamesPerPair     int     `hcl:"games_per_pair,optional"`
	GamesPerSeries   int     `hcl:"games_per_series,optional"`
	SeriesPitcherCap int     `hcl:"series_pitcher_cap,optional"`
	PlayoffTeams     int     `hcl:"playoff_teams,optional"`
	SemifinalBestOf  int     `hcl:"semifinal_best_of,optional"`
	FinalBestOf      int     `hcl:"final_best_of,optional"`
	StarterInnings   float64 `hcl:"starter_innings_credit,optional"`
}

// FactorsConfig holds the scale factors and bias constants for the four raw
// outcome scores, the composite attribute weights, and the situational
// modifier sizes.
type FactorsConfig struct {
	PitcherVelocityWeight  float64 `hcl:"pitcher_velocity_weight,optional"`
	PitcherMovementWeight  float64 `hcl:"pitcher_movement_weight,optional"`
	PitcherControlWeight   float64 `hcl:"pitcher_control_weight,optional"`
	HitterContactWeight    float64 `hcl:"hitter_contact_weight,optional"`
	HitterDisciplineWeight float64 `hcl:"hitter_discipline_weight,optional"`
	HitterPowerWeight      float64 `hcl:"hitter_power_weight,optional"`

	StrikeoutFactor         float64 `hcl:"strikeout_factor,optional"`
	BaseStrikeoutAdjustment float64 `hcl:"base_strikeout_adjustment,optional"`
	WalkFactor              float64 `hcl:"walk_factor,optional"`
	BaseWalkAdjustment      float64 `hcl:"base_walk_adjustment,optional"`
	HitFactor               float64 `hcl:"hit_factor,optional"`
	BaseHitAdjustment       float64 `hcl:"base_hit_adjustment,optional"`
	HomerunFactor           float64 `hcl:"homerun_factor,optional"`
	BaseHomerunAdjustment   float64 `hcl:"base_homerun_adjustment,optional"`

	ClutchModifier  float64 `hcl:"clutch_modifier,optional"`
	FatigueModifier float64 `hcl:"fatigue_modifier,optional"`
}

// HitWeightsConfig holds the base weights for the secondary hit-type draw and
// the attribute thresholds that reshape them.
type HitWeightsConfig struct {
	Single  float64 `hcl:"single,optional"`
	Double  float64 `hcl:"double,optional"`
	Triple  float64 `hcl:"triple,optional"`
	Homerun float64 `hcl:"homerun,optional"`

	PowerScalingFactor      float64 `hcl:"power_scaling_factor,optional"`
	HomerunPowerThreshold   int     `hcl:"homerun_power_threshold,optional"`
	ExtraBasePowerThreshold int     `hcl:"extra_base_power_threshold,optional"`
	TripleSpeedThreshold    int     `hcl:"triple_speed_threshold,optional"`
}

// Default returns the compiled-in configuration. Every value here is the MLW
// baseline the tests are tuned against.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			InningsPerGame:    3,
			MercyRuleRuns:     6,
			MercyRuleInnings:  3,
			BattersSafetyCap:  30,
			MinLineup:         3,
			MaxLineup:         5,
			PlayersOnField:    3,
			SpeedLimit:        75,
			SpeedWarning:      70,
			GamesPerPair:      3,
			GamesPerSeries:    3,
			SeriesPitcherCap:  2,
			PlayoffTeams:      4,
			SemifinalBestOf:   5,
			FinalBestOf:       7,
			StarterInnings:    3.0,
		},
		Factors: FactorsConfig{
			PitcherVelocityWeight:  0.40,
			PitcherMovementWeight:  0.35,
			PitcherControlWeight:   0.25,
			HitterContactWeight:    0.70,
			HitterDisciplineWeight: 0.70,
			HitterPowerWeight:      1.00,

			StrikeoutFactor:         1.50,
			BaseStrikeoutAdjustment: -1.00,
			WalkFactor:              1.20,
			BaseWalkAdjustment:      -2.20,
			HitFactor:               1.30,
			BaseHitAdjustment:       -0.90,
			HomerunFactor:           1.80,
			BaseHomerunAdjustment:   -2.80,

			ClutchModifier:  0.30,
			FatigueModifier: 0.25,
		},
		HitWeights: HitWeightsConfig{
			Single:  0.62,
			Double:  0.23,
			Triple:  0.06,
			Homerun: 0.09,

			PowerScalingFactor:      0.50,
			HomerunPowerThreshold:   75,
			ExtraBasePowerThreshold: 60,
			TripleSpeedThreshold:    60,
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default when the
// file does not exist. Zero-valued fields are backfilled with defaults so a
// tuning file only needs to name the values it changes.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Rules.InningsPerGame == 0 {
		cfg.Rules.InningsPerGame = def.Rules.InningsPerGame
	}
	if cfg.Rules.MercyRuleRuns == 0 {
		cfg.Rules.MercyRuleRuns = def.Rules.MercyRuleRuns
	}
	if cfg.Rules.MercyRuleInnings == 0 {
		cfg.Rules.MercyRuleInnings = def.Rules.MercyRuleInnings
	}
	if cfg.Rules.BattersSafetyCap == 0 {
		cfg.Rules.BattersSafetyCap = def.Rules.BattersSafetyCap
	}
	if cfg.Rules.MinLineup == 0 {
		cfg.Rules.MinLineup = def.Rules.MinLineup
	}
	if cfg.Rules.MaxLineup == 0 {
		cfg.Rules.MaxLineup = def.Rules.MaxLineup
	}
	if cfg.Rules.PlayersOnField == 0 {
		cfg.Rules.PlayersOnField = def.Rules.PlayersOnField
	}
	if cfg.Rules.SpeedLimit == 0 {
		cfg.Rules.SpeedLimit = def.Rules.SpeedLimit
	}
	if cfg.Rules.SpeedWarning == 0 {
		cfg.Rules.SpeedWarning = def.Rules.SpeedWarning
	}
	if cfg.Rules.GamesPerPair == 0 {
		cfg.Rules.GamesPerPair = def.Rules.GamesPerPair
	}
	if cfg.Rules.GamesPerSeries == 0 {
		cfg.Rules.GamesPerSeries = def.Rules.GamesPerSeries
	}
	if cfg.Rules.SeriesPitcherCap == 0 {
		cfg.Rules.SeriesPitcherCap = def.Rules.SeriesPitcherCap
	}
	if cfg.Rules.PlayoffTeams == 0 {
		cfg.Rules.PlayoffTeams = def.Rules.PlayoffTeams
	}
	if cfg.Rules.SemifinalBestOf == 0 {
		cfg.Rules.SemifinalBestOf = def.Rules.SemifinalBestOf
	}
	if cfg.Rules.FinalBestOf == 0 {
		cfg.Rules.FinalBestOf = def.Rules.FinalBestOf
	}
	if cfg.Rules.StarterInnings == 0 {
		cfg.Rules.StarterInnings = def.Rules.StarterInnings
	}

	if cfg.Factors.PitcherVelocityWeight == 0 {
		cfg.Factors.PitcherVelocityWeight = def.Factors.PitcherVelocityWeight
	}
	if cfg.Factors.PitcherMovementWeight == 0 {
		cfg.Factors.PitcherMovementWeight = def.Factors.PitcherMovementWeight
	}
	if cfg.Factors.PitcherControlWeight == 0 {
		cfg.Factors.PitcherControlWeight = def.Factors.PitcherControlWeight
	}
	if cfg.Factors.HitterContactWeight == 0 {
		cfg.Factors.HitterContactWeight = def.Factors.HitterContactWeight
	}
	if cfg.Factors.HitterDisciplineWeight == 0 {
		cfg.Factors.HitterDisciplineWeight = def.Factors.HitterDisciplineWeight
	}
	if cfg.Factors.HitterPowerWeight == 0 {
		cfg.Factors.HitterPowerWeight = def.Factors.HitterPowerWeight
	}
	if cfg.Factors.StrikeoutFactor == 0 {
		cfg.Factors.StrikeoutFactor = def.Factors.StrikeoutFactor
	}
	if cfg.Factors.BaseStrikeoutAdjustment == 0 {
		cfg.Factors.BaseStrikeoutAdjustment = def.Factors.BaseStrikeoutAdjustment
	}
	if cfg.Factors.WalkFactor == 0 {
		cfg.Factors.WalkFactor = def.Factors.WalkFactor
	}
	if cfg.Factors.BaseWalkAdjustment == 0 {
		cfg.Factors.BaseWalkAdjustment = def.Factors.BaseWalkAdjustment
	}
	if cfg.Factors.HitFactor == 0 {
		cfg.Factors.HitFactor = def.Factors.HitFactor
	}
	if cfg.Factors.BaseHitAdjustment == 0 {
		cfg.Factors.BaseHitAdjustment = def.Factors.BaseHitAdjustment
	}
	if cfg.Factors.HomerunFactor == 0 {
		cfg.Factors.HomerunFactor = def.Factors.HomerunFactor
	}
	if cfg.Factors.BaseHomerunAdjustment == 0 {
		cfg.Factors.BaseHomerunAdjustment = def.Factors.BaseHomerunAdjustment
	}
	if cfg.Factors.ClutchModifier == 0 {
		cfg.Factors.ClutchModifier = def.Factors.ClutchModifier
	}
	if cfg.Factors.FatigueModifier == 0 {
		cfg.Factors.FatigueModifier = def.Factors.FatigueModifier
	}

	if cfg.HitWeights.Single == 0 {
		cfg.HitWeights.Single = def.HitWeights.Single
	}
	if cfg.HitWeights.Double == 0 {
		cfg.HitWeights.Double = def.HitWeights.Double
	}
	if cfg.HitWeights.Triple == 0 {
		cfg.HitWeights.Triple = def.HitWeights.Triple
	}
	if cfg.HitWeights.Homerun == 0 {
		cfg.HitWeights.Homerun = def.HitWeights.Homerun
	}
	if cfg.HitWeights.PowerScalingFactor == 0 {
		cfg.HitWeights.PowerScalingFactor = def.HitWeights.PowerScalingFactor
	}
	if cfg.HitWeights.HomerunPowerThreshold == 0 {
		cfg.HitWeights.HomerunPowerThreshold = def.HitWeights.HomerunPowerThreshold
	}
	if cfg.HitWeights.ExtraBasePowerThreshold == 0 {
		cfg.HitWeights.ExtraBasePowerThreshold = def.HitWeights.ExtraBasePowerThreshold
	}
	if cfg.HitWeights.TripleSpeedThreshold == 0 {
		cfg.HitWeights.TripleSpeedThreshold = def.HitWeights.TripleSpeedThreshold
	}
}

// Validate rejects configurations no season could meaningfully run under.
func (c *Config) Validate() error {
	if c.Rules.InningsPerGame < 1 {
		return fmt.Errorf("innings_per_game must be at least 1, got %d", c.Rules.InningsPerGame)
	}
	if c.Rules.MinLineup < 1 || c.Rules.MaxLineup < c.Rules.MinLineup {
		return fmt.Errorf("invalid lineup bounds: min %d, max %d", c.Rules.MinLineup, c.Rules.MaxLineup)
	}
	if c.Rules.GamesPerSeries < 1 {
		return fmt.Errorf("games_per_series must be at least 1, got %d", c.Rules.GamesPerSeries)
	}
	if c.Rules.SeriesPitcherCap < 1 {
		return fmt.Errorf("series_pitcher_cap must be at least 1, got %d", c.Rules.SeriesPitcherCap)
	}
	if c.Rules.PlayoffTeams != 4 {
		return fmt.Errorf("playoff bracket requires exactly 4 teams, got %d", c.Rules.PlayoffTeams)
	}
	if c.Rules.SemifinalBestOf%2 == 0 || c.Rules.FinalBestOf%2 == 0 {
		return fmt.Errorf("playoff series lengths must be odd: semifinal %d, final %d",
			c.Rules.SemifinalBestOf, c.Rules.FinalBestOf)
	}
	total := c.HitWeights.Single + c.HitWeights.Double + c.HitWeights.Triple + c.HitWeights.Homerun
	if total <= 0 {
		return fmt.Errorf("hit type weights must sum to a positive value, got %f", total)
	}
	return nil
}

package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameSample is one finished game distilled to the numbers the aggregate
// distributions care about.
type GameSample struct {
	TotalRuns int     // combined runs from both sides
	Margin    float64 // home score minus away score
	Innings   int     // innings played, above regulation means extras
	Mercy     bool    // game ended on the mercy rule
	Extra     bool    // game went past regulation
	Tie       bool
}

// Statistics accumulates run-distribution analytics across many games.
type Statistics struct {
	Games      int
	SumRuns    float64
	SumRuns2   float64   // sum of squares for variance calculation
	RunValues  []float64 // stored per-game totals for median/percentile
	SumMargin  float64
	SumInnings int

	MercyGames int
	ExtraGames int
	Ties       int

	MaxRuns int // highest combined score observed
}

// Add incorporates one game into the aggregates.
func (s *Statistics) Add(sample GameSample) {
	runs := float64(sample.TotalRuns)
	s.Games++
	s.SumRuns += runs
	s.SumRuns2 += runs * runs
	s.RunValues = append(s.RunValues, runs)
	s.SumMargin += math.Abs(sample.Margin)
	s.SumInnings += sample.Innings

	if sample.Mercy {
		s.MercyGames++
	}
	if sample.Extra {
		s.ExtraGames++
	}
	if sample.Tie {
		s.Ties++
	}
	if sample.TotalRuns > s.MaxRuns {
		s.MaxRuns = sample.TotalRuns
	}
}

// Mean returns the mean combined runs per game.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRuns / float64(s.Games)
}

// Variance returns the sample variance of combined runs.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRuns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of combined runs.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for mean runs.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// MeanMargin returns the mean absolute victory margin.
func (s *Statistics) MeanMargin() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumMargin / float64(s.Games)
}

// MeanInnings returns the mean game length in innings.
func (s *Statistics) MeanInnings() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumInnings) / float64(s.Games)
}

// Median returns the median combined runs per game.
func (s *Statistics) Median() float64 {
	if len(s.RunValues) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.RunValues))
	copy(sorted, s.RunValues)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the combined-runs value at the given percentile
// (0.0 to 1.0), linearly interpolated.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.RunValues) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.RunValues))
	copy(sorted, s.RunValues)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the internal accounting for consistency.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.RunValues) != s.Games {
		return fmt.Errorf("run values length (%d) does not match games count (%d)",
			len(s.RunValues), s.Games)
	}
	if s.MercyGames > s.Games {
		return fmt.Errorf("mercy games (%d) exceeds total games (%d)", s.MercyGames, s.Games)
	}
	if s.ExtraGames > s.Games {
		return fmt.Errorf("extra-inning games (%d) exceeds total games (%d)", s.ExtraGames, s.Games)
	}
	if s.Ties > s.Games {
		return fmt.Errorf("ties (%d) exceeds total games (%d)", s.Ties, s.Games)
	}
	return nil
}

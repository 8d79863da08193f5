package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty stats, got %f", stats.StdDev())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
}

func TestStatistics_SingleGame(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameSample{TotalRuns: 7, Margin: 3, Innings: 3})

	if stats.Games != 1 {
		t.Errorf("Expected 1 game, got %d", stats.Games)
	}
	if stats.Mean() != 7 {
		t.Errorf("Expected mean of 7, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 7 {
		t.Errorf("Expected median of 7, got %f", stats.Median())
	}
	if stats.MeanMargin() != 3 {
		t.Errorf("Expected mean margin of 3, got %f", stats.MeanMargin())
	}
	if stats.MeanInnings() != 3 {
		t.Errorf("Expected mean innings of 3, got %f", stats.MeanInnings())
	}
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := &Statistics{}
	for _, runs := range []int{2, 4, 6, 8, 10} {
		stats.Add(GameSample{TotalRuns: runs, Margin: 2, Innings: 3})
	}

	if stats.Games != 5 {
		t.Errorf("Expected 5 games, got %d", stats.Games)
	}
	if stats.Mean() != 6 {
		t.Errorf("Expected mean of 6, got %f", stats.Mean())
	}
	if stats.Median() != 6 {
		t.Errorf("Expected median of 6, got %f", stats.Median())
	}
	// Sample variance of 2,4,6,8,10 is 10
	if math.Abs(stats.Variance()-10) > 1e-9 {
		t.Errorf("Expected variance of 10, got %f", stats.Variance())
	}
	if stats.MaxRuns != 10 {
		t.Errorf("Expected max runs of 10, got %d", stats.MaxRuns)
	}
	if stats.Percentile(0) != 2 {
		t.Errorf("Expected 0th percentile of 2, got %f", stats.Percentile(0))
	}
	if stats.Percentile(1) != 10 {
		t.Errorf("Expected 100th percentile of 10, got %f", stats.Percentile(1))
	}
}

func TestStatistics_FlagCounters(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameSample{TotalRuns: 8, Margin: 8, Innings: 1, Mercy: true})
	stats.Add(GameSample{TotalRuns: 5, Margin: 1, Innings: 5, Extra: true})
	stats.Add(GameSample{TotalRuns: 4, Margin: 0, Innings: 3, Tie: true})

	if stats.MercyGames != 1 {
		t.Errorf("Expected 1 mercy game, got %d", stats.MercyGames)
	}
	if stats.ExtraGames != 1 {
		t.Errorf("Expected 1 extra-inning game, got %d", stats.ExtraGames)
	}
	if stats.Ties != 1 {
		t.Errorf("Expected 1 tie, got %d", stats.Ties)
	}
}

func TestStatistics_Validate(t *testing.T) {
	stats := &Statistics{}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation to fail with no games")
	}

	stats.Add(GameSample{TotalRuns: 3, Margin: 1, Innings: 3})
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected validation to pass, got %v", err)
	}

	stats.MercyGames = 5
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation to fail with mercy games exceeding total")
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := &Statistics{}
	for i := 0; i < 100; i++ {
		stats.Add(GameSample{TotalRuns: 6, Margin: 2, Innings: 3})
	}

	lo, hi := stats.ConfidenceInterval95()
	if lo != 6 || hi != 6 {
		t.Errorf("Expected degenerate interval at 6, got [%f, %f]", lo, hi)
	}
}

package montecarlo

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/randutil"
	"github.com/lox/wiffleball/internal/season"
	"github.com/lox/wiffleball/internal/statistics"
)

// Runner simulates many independent seasons in parallel. Each season gets a
// cloned league and a seed derived from the master seed, so runs share
// nothing and any single season can be replayed alone from its seed.
type Runner struct {
	teams  []*league.Team
	cfg    *config.Config
	seed   int64
	logger *log.Logger
}

// Outcome aggregates a batch of simulated seasons.
type Outcome struct {
	Seasons        int
	ChampionCounts map[string]int
	Games          *statistics.Statistics
}

// New creates a runner over the given league.
func New(teams []*league.Team, cfg *config.Config, seed int64, logger *log.Logger) *Runner {
	return &Runner{teams: teams, cfg: cfg, seed: seed, logger: logger}
}

// SeasonSeed returns the seed season run i executes under.
func (r *Runner) SeasonSeed(i int) int64 {
	return randutil.Derive(r.seed, int64(i)+1)
}

// Run simulates n seasons and returns the aggregate outcome. The original
// teams are never mutated; every season plays on its own clones.
func (r *Runner) Run(ctx context.Context, n int) (*Outcome, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least 1 season, got %d", n)
	}

	outcome := &Outcome{
		ChampionCounts: make(map[string]int),
		Games:          &statistics.Statistics{},
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			clones := make([]*league.Team, len(r.teams))
			for j, t := range r.teams {
				clones[j] = t.Clone()
			}

			s, err := season.New(clones, r.cfg, r.SeasonSeed(i), r.logger, nil)
			if err != nil {
				return err
			}
			summary, err := s.Run()
			if err != nil {
				return fmt.Errorf("season %d failed: %w", i, err)
			}

			mu.Lock()
			defer mu.Unlock()
			outcome.Seasons++
			outcome.ChampionCounts[summary.Champion.Name]++
			for _, res := range summary.Results {
				outcome.Games.Add(statistics.GameSample{
					TotalRuns: res.HomeScore + res.AwayScore,
					Margin:    float64(res.HomeScore - res.AwayScore),
					Innings:   res.Innings,
					Mercy:     res.Innings < r.cfg.Rules.InningsPerGame,
					Extra:     res.Innings > r.cfg.Rules.InningsPerGame,
					Tie:       res.Tie,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := outcome.Games.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return outcome, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/montecarlo"
	"github.com/lox/wiffleball/internal/randutil"
	"github.com/lox/wiffleball/internal/season"
)

type CLI struct {
	Teams   int    `default:"6" help:"Number of teams in the league (2-12)"`
	Seed    *int64 `help:"Random seed for reproducible seasons"`
	Config  string `default:"wiffleball.hcl" help:"Path to an HCL tuning file"`
	Runs    int    `default:"1" help:"Number of seasons to simulate (more than 1 aggregates)"`
	NoColor bool   `help:"Disable colored output"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	teamStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	championStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("season"),
		kong.Description("Simulate MLW wiffle ball seasons"),
		kong.UsageOnError(),
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "file", cli.Config, "error", err)
	}

	teams, err := league.Generate(randutil.New(seed), cli.Teams)
	if err != nil {
		logger.Fatal("failed to generate league", "error", err)
	}

	if cli.Runs > 1 {
		runMonteCarlo(ctx, cli, cfg, teams, seed, logger)
		return
	}

	s, err := season.New(teams, cfg, seed, logger, nil)
	if err != nil {
		logger.Fatal("failed to set up season", "error", err)
	}
	summary, err := s.Run()
	if err != nil {
		logger.Fatal("season failed", "error", err)
	}

	printStandings(summary)
	printLeaders(summary.Leaders)
	printBracket(summary.Bracket)
	fmt.Printf("\n%s %s\n", headerStyle.Render("Champion:"), championStyle.Render(summary.Champion.Name))
	fmt.Printf("Seed: %d\n", seed)
}

func runMonteCarlo(ctx *kong.Context, cli CLI, cfg *config.Config, teams []*league.Team, seed int64, logger *log.Logger) {
	runner := montecarlo.New(teams, cfg, seed, logger)
	outcome, err := runner.Run(context.Background(), cli.Runs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		ctx.Exit(1)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("=== %d Seasons ===", outcome.Seasons)))

	type championCount struct {
		name  string
		count int
	}
	counts := make([]championCount, 0, len(outcome.ChampionCounts))
	for name, count := range outcome.ChampionCounts {
		counts = append(counts, championCount{name, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", "TEAM", "TITLES", "SHARE")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n",
			teamStyle.Render(c.name), c.count,
			100*float64(c.count)/float64(outcome.Seasons))
	}
	w.Flush()

	games := outcome.Games
	lo, hi := games.ConfidenceInterval95()
	fmt.Printf("\n%s\n", headerStyle.Render("Game distribution"))
	fmt.Printf("  games:        %d\n", games.Games)
	fmt.Printf("  runs/game:    %s (95%% CI %.2f to %.2f)\n",
		statStyle.Render(fmt.Sprintf("%.2f", games.Mean())), lo, hi)
	fmt.Printf("  median runs:  %.1f\n", games.Median())
	fmt.Printf("  avg margin:   %.2f\n", games.MeanMargin())
	fmt.Printf("  avg innings:  %.2f\n", games.MeanInnings())
	fmt.Printf("  mercy rate:   %.1f%%\n", 100*float64(games.MercyGames)/float64(games.Games))
	fmt.Printf("  extras rate:  %.1f%%\n", 100*float64(games.ExtraGames)/float64(games.Games))
	fmt.Printf("  tie rate:     %.1f%%\n", 100*float64(games.Ties)/float64(games.Games))
	fmt.Printf("  seed:         %d\n", seed)
}

func printStandings(summary *season.Summary) {
	fmt.Println(headerStyle.Render("=== Final Standings ==="))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", "TEAM", "DIV", "W", "L", "T", "RS", "RA")
	for _, t := range summary.Standings {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			teamStyle.Render(t.Name), t.Division, t.Wins, t.Losses, t.Ties, t.RunsScored, t.RunsAllowed)
	}
	w.Flush()
}

func printLeaders(leaders *season.Leaders) {
	fmt.Printf("\n%s\n", headerStyle.Render("=== Season Leaders ==="))
	printLeader("Batting Average", leaders.BattingAverage, "%.3f")
	printLeader("Home Runs", leaders.HomeRuns, "%.0f")
	printLeader("RBI", leaders.RBI, "%.0f")
	printLeader("ERA", leaders.ERA, "%.2f")
	printLeader("Wins", leaders.Wins, "%.0f")
	printLeader("Strikeouts", leaders.Strikeouts, "%.0f")
}

func printLeader(category string, entry *season.LeaderEntry, format string) {
	if entry == nil {
		fmt.Printf("  %-16s no qualified players\n", category+":")
		return
	}
	value := fmt.Sprintf(format, entry.Value)
	fmt.Printf("  %-16s %s (%s) %s\n",
		category+":", entry.Player.Name, entry.Team, statStyle.Render(value))
}

func printBracket(bracket *season.BracketResult) {
	if bracket == nil {
		return
	}
	fmt.Printf("\n%s\n", headerStyle.Render("=== Playoffs ==="))
	for _, semi := range bracket.Semifinals {
		printSeries(semi)
	}
	printSeries(bracket.Final)
}

func printSeries(sr *season.SeriesResult) {
	var scores []string
	for _, g := range sr.Games {
		scores = append(scores, fmt.Sprintf("%d-%d", g.HomeScore, g.AwayScore))
	}
	fmt.Printf("  %s: %s def. %s %d-%d (%s)\n",
		sr.Name,
		teamStyle.Render(sr.Winner.Name),
		otherTeam(sr).Name,
		max(sr.Wins1, sr.Wins2),
		min(sr.Wins1, sr.Wins2),
		strings.Join(scores, ", "))
}

func otherTeam(sr *season.SeriesResult) *league.Team {
	if sr.Winner == sr.Team1 {
		return sr.Team2
	}
	return sr.Team1
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/wiffleball/internal/config"
	"github.com/lox/wiffleball/internal/league"
	"github.com/lox/wiffleball/internal/probability"
	"github.com/lox/wiffleball/internal/randutil"
)

type CLI struct {
	Pitcher   string `default:"velocity=65,movement=60,control=60,deception=55" help:"Pitcher attributes as name=value pairs"`
	Batter    string `default:"power=60,contact=60,discipline=55,speed=55" help:"Batter attributes as name=value pairs"`
	Situation string `default:"none" enum:"none,clutch,fatigue,speed_limit_pressure" help:"Situational context"`
	Config    string `default:"wiffleball.hcl" help:"Path to an HCL tuning file"`
	Samples   int    `default:"0" help:"Also sample this many at-bats empirically"`
	Seed      *int64 `help:"Random seed for sampling"`
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	outcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	percentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("matchup"),
		kong.Description("Show the at-bat outcome distribution for a pitcher/batter matchup"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		ctx.Exit(1)
	}

	pitcher, err := buildPlayer("Pitcher", cli.Pitcher)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid pitcher: %v\n", err)
		ctx.Exit(1)
	}
	batter, err := buildPlayer("Batter", cli.Batter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid batter: %v\n", err)
		ctx.Exit(1)
	}

	situation := parseSituation(cli.Situation)
	model := probability.NewModel(cfg)
	probs := model.Outcomes(pitcher, batter, situation)
	hits := model.HitTypes(pitcher, batter)

	fmt.Println(headerStyle.Render("Outcome distribution"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printRow(w, "Strikeout", probs.Strikeout)
	printRow(w, "Walk", probs.Walk)
	printRow(w, "Ball in play", probs.BallInPlay)
	printRow(w, "Home run", probs.HomeRun)
	printRow(w, "Out", probs.Out)
	w.Flush()

	fmt.Printf("\n%s\n", headerStyle.Render("Hit type split (ball in play)"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printRow(w, "Single", hits.Single)
	printRow(w, "Double", hits.Double)
	printRow(w, "Triple", hits.Triple)
	printRow(w, "Home run", hits.HomeRun)
	w.Flush()

	if cli.Samples > 0 {
		sample(model, pitcher, batter, situation, cli)
	}
}

func sample(model *probability.Model, pitcher, batter *league.Player, situation probability.Situation, cli CLI) {
	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}
	rng := randutil.New(seed)

	counts := make(map[string]int)
	for i := 0; i < cli.Samples; i++ {
		result := model.Evaluate(rng, pitcher, batter, situation)
		counts[result.Detail]++
	}

	fmt.Printf("\n%s\n", headerStyle.Render(fmt.Sprintf("Sampled %d at-bats (seed %d)", cli.Samples, seed)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, detail := range []string{"Strikeout", "Walk", "Single", "Double", "Triple", "Home run", "Ground out"} {
		if counts[detail] == 0 {
			continue
		}
		printRow(w, detail, float64(counts[detail])/float64(cli.Samples))
	}
	w.Flush()
}

func printRow(w *tabwriter.Writer, label string, p float64) {
	fmt.Fprintf(w, "%s\t%s\n",
		outcomeStyle.Render(label),
		percentStyle.Render(fmt.Sprintf("%6.2f%%", 100*p)))
}

// buildPlayer parses "name=value" attribute pairs onto a league-average
// player, so unspecified ratings stay at 50.
func buildPlayer(name, spec string) (*league.Player, error) {
	attrs := league.Attributes{}
	for _, kind := range league.AttributeKinds() {
		attrs.Set(kind, 50)
	}

	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("expected name=value, got %q", pair)
		}
		kind, ok := league.AttributeKindFromName(strings.TrimSpace(key))
		if !ok {
			return nil, fmt.Errorf("unknown attribute %q", key)
		}
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", key, err)
		}
		attrs.Set(kind, v)
	}
	return league.NewPlayer(name, 25, attrs), nil
}

func parseSituation(s string) probability.Situation {
	switch s {
	case "clutch":
		return probability.SituationClutch
	case "fatigue":
		return probability.SituationFatigue
	case "speed_limit_pressure":
		return probability.SituationSpeedPressure
	default:
		return probability.SituationNone
	}
}

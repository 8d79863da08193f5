package season

import (
	"github.com/charmbracelet/log"

	"github.com/lox/wiffleball/internal/league"
)

// Rotation assigns starting pitchers. During the regular season it caps how
// many starts any one pitcher can make within a series; in the playoffs the
// cap does not apply and the best arm always starts.
type Rotation struct {
	cap    int
	logger *log.Logger
	usage  map[int]map[*league.Player]int
}

// NewRotation creates a rotation manager with the given per-series start cap.
func NewRotation(cap int, logger *log.Logger) *Rotation {
	return &Rotation{
		cap:    cap,
		logger: logger,
		usage:  make(map[int]map[*league.Player]int),
	}
}

// SelectPitcher returns the starter for a team's next game in the given
// series. Among pitchers still under the cap it picks the one with the
// fewest series starts, tie-broken by highest velocity plus control. If the
// whole roster is capped out it falls back to the least-used pitcher and
// emits a diagnostic; a game must always have a starter.
func (r *Rotation) SelectPitcher(team *league.Team, seriesID int, playoff bool) *league.Player {
	if playoff {
		return bestBySkill(team.ActiveRoster)
	}

	usage := r.usage[seriesID]

	var selected *league.Player
	for _, p := range team.ActiveRoster {
		starts := usage[p]
		if starts >= r.cap {
			continue
		}
		if selected == nil || starts < usage[selected] ||
			(starts == usage[selected] && p.PitchingSkill() > selected.PitchingSkill()) {
			selected = p
		}
	}
	if selected != nil {
		return selected
	}

	selected = team.ActiveRoster[0]
	for _, p := range team.ActiveRoster[1:] {
		if usage[p] < usage[selected] {
			selected = p
		}
	}
	r.logger.Warn("no pitcher under series cap, using least-used",
		"team", team.Name,
		"series", seriesID,
		"pitcher", selected.Name)
	return selected
}

// RecordStart counts a start against the pitcher's series usage.
func (r *Rotation) RecordStart(pitcher *league.Player, seriesID int) {
	if r.usage[seriesID] == nil {
		r.usage[seriesID] = make(map[*league.Player]int)
	}
	r.usage[seriesID][pitcher]++
}

// SeriesStarts reports how many starts the pitcher has made in the series.
func (r *Rotation) SeriesStarts(pitcher *league.Player, seriesID int) int {
	return r.usage[seriesID][pitcher]
}

func bestBySkill(roster []*league.Player) *league.Player {
	best := roster[0]
	for _, p := range roster[1:] {
		if p.PitchingSkill() > best.PitchingSkill() {
			best = p
		}
	}
	return best
}

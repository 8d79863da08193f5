package league

import "fmt"

// Roster size caps from the MLW rulebook: 6 active players plus 2 reserves.
const (
	MaxActiveRoster  = 6
	MaxReserveRoster = 2
)

// Team owns its players exclusively; trades and drafts move players between
// teams, they never share them. Regular-season and playoff records are kept
// apart so a playoff run can never corrupt the standings.
type Team struct {
	Name     string
	Division string

	ActiveRoster  []*Player
	ReserveRoster []*Player

	Wins   int
	Losses int
	Ties   int

	PlayoffWins   int
	PlayoffLosses int

	RunsScored  int
	RunsAllowed int
}

// NewTeam creates an empty team.
func NewTeam(name, division string) *Team {
	return &Team{Name: name, Division: division}
}

// AddPlayer places a player on the active or reserve roster, enforcing the
// roster size caps at the mutation boundary.
func (t *Team) AddPlayer(p *Player, active bool) error {
	if active {
		if len(t.ActiveRoster) >= MaxActiveRoster {
			return fmt.Errorf("%s: active roster full (%d)", t.Name, MaxActiveRoster)
		}
		t.ActiveRoster = append(t.ActiveRoster, p)
	} else {
		if len(t.ReserveRoster) >= MaxReserveRoster {
			return fmt.Errorf("%s: reserve roster full (%d)", t.Name, MaxReserveRoster)
		}
		t.ReserveRoster = append(t.ReserveRoster, p)
	}
	p.Team = t.Name
	return nil
}

// RemovePlayer takes a player off whichever roster holds them.
func (t *Team) RemovePlayer(p *Player) bool {
	for i, rp := range t.ActiveRoster {
		if rp == p {
			t.ActiveRoster = append(t.ActiveRoster[:i], t.ActiveRoster[i+1:]...)
			p.Team = ""
			return true
		}
	}
	for i, rp := range t.ReserveRoster {
		if rp == p {
			t.ReserveRoster = append(t.ReserveRoster[:i], t.ReserveRoster[i+1:]...)
			p.Team = ""
			return true
		}
	}
	return false
}

// AllPlayers returns active then reserve players in roster order.
func (t *Team) AllPlayers() []*Player {
	all := make([]*Player, 0, len(t.ActiveRoster)+len(t.ReserveRoster))
	all = append(all, t.ActiveRoster...)
	all = append(all, t.ReserveRoster...)
	return all
}

// GameOutcome is a team-level game result kind.
type GameOutcome int

const (
	OutcomeWin GameOutcome = iota
	OutcomeLoss
	OutcomeTie
)

// RecordResult updates the regular-season record and run totals.
func (t *Team) RecordResult(runsScored, runsAllowed int, outcome GameOutcome) {
	t.RunsScored += runsScored
	t.RunsAllowed += runsAllowed
	switch outcome {
	case OutcomeWin:
		t.Wins++
	case OutcomeLoss:
		t.Losses++
	case OutcomeTie:
		t.Ties++
	}
}

// ResetPlayoffRecord zeroes the playoff counters ahead of a bracket run.
func (t *Team) ResetPlayoffRecord() {
	t.PlayoffWins = 0
	t.PlayoffLosses = 0
}

// Clone deep-copies the team and its rosters.
func (t *Team) Clone() *Team {
	cp := *t
	cp.ActiveRoster = make([]*Player, len(t.ActiveRoster))
	for i, p := range t.ActiveRoster {
		cp.ActiveRoster[i] = p.Clone()
	}
	cp.ReserveRoster = make([]*Player, len(t.ReserveRoster))
	for i, p := range t.ReserveRoster {
		cp.ReserveRoster[i] = p.Clone()
	}
	return &cp
}

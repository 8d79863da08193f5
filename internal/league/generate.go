package league

import (
	"fmt"
	rand "math/rand/v2"
)

// Fixture generation for a runnable league. The engine itself only consumes
// pre-validated teams; this is the producer the CLI and tests use.

var divisions = []string{"American", "National"}

var teamNames = map[string][]string{
	"American": {"Thunder", "Lightning", "Storm", "Hurricane", "Tornado", "Cyclone"},
	"National": {"Fire", "Flame", "Blaze", "Inferno", "Phoenix", "Dragon"},
}

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Drew", "Skyler",
	"Jamie", "Quinn", "Avery", "Reese",
}

var lastNames = []string{
	"Smith", "Johnson", "Lee", "Brown", "Garcia", "Martinez", "Davis", "Clark",
	"Walker", "Young", "Reyes", "Cooper",
}

// archetype shapes a generated player's attribute ranges.
type archetype int

const (
	hitterOnly archetype = iota
	pitcherOnly
	twoWay
)

// Generate builds a league of numTeams fully rostered teams from the given
// RNG. The same seed always yields the same league.
func Generate(rng *rand.Rand, numTeams int) ([]*Team, error) {
	if numTeams < 2 {
		return nil, fmt.Errorf("league needs at least 2 teams, got %d", numTeams)
	}
	maxTeams := len(teamNames["American"]) + len(teamNames["National"])
	if numTeams > maxTeams {
		return nil, fmt.Errorf("league supports at most %d teams, got %d", maxTeams, numTeams)
	}

	teams := make([]*Team, 0, numTeams)
	for i := 0; i < numTeams; i++ {
		division := divisions[i%len(divisions)]
		name := teamNames[division][i/len(divisions)]
		team := NewTeam(name, division)

		for j := 0; j < MaxActiveRoster; j++ {
			if err := team.AddPlayer(generatePlayer(rng), true); err != nil {
				return nil, err
			}
		}
		for j := 0; j < MaxReserveRoster; j++ {
			if err := team.AddPlayer(generatePlayer(rng), false); err != nil {
				return nil, err
			}
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func generatePlayer(rng *rand.Rand) *Player {
	name := fmt.Sprintf("%s %s",
		firstNames[rng.IntN(len(firstNames))],
		lastNames[rng.IntN(len(lastNames))])
	age := 18 + rng.IntN(15)

	// Archetype mix mirrors the league: more hitters than pure arms.
	var arch archetype
	switch roll := rng.Float64(); {
	case roll < 0.4:
		arch = hitterOnly
	case roll < 0.7:
		arch = pitcherOnly
	default:
		arch = twoWay
	}

	attrs := Attributes{
		Range:       between(rng, 40, 85),
		ArmStrength: between(rng, 45, 85),
		Hands:       between(rng, 40, 85),
		Reaction:    between(rng, 40, 85),
		Leadership:  between(rng, 25, 90),
		Clutch:      between(rng, 25, 90),
		Composure:   between(rng, 25, 90),
	}

	switch arch {
	case hitterOnly:
		attrs.Power = between(rng, 55, 90)
		attrs.Contact = between(rng, 55, 90)
		attrs.Discipline = between(rng, 45, 85)
		attrs.Speed = between(rng, 40, 90)
		attrs.Velocity = between(rng, 30, 50)
		attrs.Movement = between(rng, 30, 50)
		attrs.Control = between(rng, 30, 50)
		attrs.Stamina = between(rng, 30, 50)
		attrs.Deception = between(rng, 30, 50)
	case pitcherOnly:
		attrs.Power = between(rng, 30, 55)
		attrs.Contact = between(rng, 30, 55)
		attrs.Discipline = between(rng, 30, 55)
		attrs.Speed = between(rng, 30, 60)
		attrs.Velocity = between(rng, 55, 74)
		attrs.Movement = between(rng, 55, 85)
		attrs.Control = between(rng, 55, 85)
		attrs.Stamina = between(rng, 55, 85)
		attrs.Deception = between(rng, 50, 85)
	case twoWay:
		attrs.Power = between(rng, 45, 75)
		attrs.Contact = between(rng, 45, 75)
		attrs.Discipline = between(rng, 40, 70)
		attrs.Speed = between(rng, 40, 75)
		attrs.Velocity = between(rng, 50, 70)
		attrs.Movement = between(rng, 45, 70)
		attrs.Control = between(rng, 45, 70)
		attrs.Stamina = between(rng, 45, 70)
		attrs.Deception = between(rng, 40, 70)
	}

	return NewPlayer(name, age, attrs)
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

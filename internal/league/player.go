package league

import "fmt"

// Attribute bounds. Every rating is clamped into this range at each mutation
// boundary so downstream code never sees an out-of-range value.
const (
	MinAttribute = 1
	MaxAttribute = 100
)

// Attributes holds a player's skill ratings on the 1-100 MLW scouting scale.
// Hitting, pitching, fielding and mental groups are flattened into one struct
// because MLW players are two-way by default.
type Attributes struct {
	// Hitting
	Power      int
	Contact    int
	Discipline int
	Speed      int

	// Pitching
	Velocity  int
	Movement  int
	Control   int
	Stamina   int
	Deception int

	// Fielding
	Range       int
	ArmStrength int
	Hands       int
	Reaction    int

	// Mental
	Leadership int
	Clutch     int
	Composure  int
}

// AttributeKind identifies a single rating for table-driven access. External
// collaborators (development events, trades) mutate ratings through this
// enum rather than by field name.
type AttributeKind int

const (
	AttrPower AttributeKind = iota
	AttrContact
	AttrDiscipline
	AttrSpeed
	AttrVelocity
	AttrMovement
	AttrControl
	AttrStamina
	AttrDeception
	AttrRange
	AttrArmStrength
	AttrHands
	AttrReaction
	AttrLeadership
	AttrClutch
	AttrComposure
)

var attributeNames = map[AttributeKind]string{
	AttrPower:       "power",
	AttrContact:     "contact",
	AttrDiscipline:  "discipline",
	AttrSpeed:       "speed",
	AttrVelocity:    "velocity",
	AttrMovement:    "movement",
	AttrControl:     "control",
	AttrStamina:     "stamina",
	AttrDeception:   "deception",
	AttrRange:       "range",
	AttrArmStrength: "arm_strength",
	AttrHands:       "hands",
	AttrReaction:    "reaction",
	AttrLeadership:  "leadership",
	AttrClutch:      "clutch",
	AttrComposure:   "composure",
}

// AttributeKindFromName resolves the lowercase attribute name used in
// configuration and CLI input.
func AttributeKindFromName(name string) (AttributeKind, bool) {
	for kind, n := range attributeNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

func (k AttributeKind) String() string {
	if name, ok := attributeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("attribute(%d)", int(k))
}

// accessor pairs a getter and setter for one rating. The table below is the
// full set of mutable ratings; there is no reflection anywhere in the model.
type accessor struct {
	get func(*Attributes) int
	set func(*Attributes, int)
}

var attributeTable = map[AttributeKind]accessor{
	AttrPower:       {func(a *Attributes) int { return a.Power }, func(a *Attributes, v int) { a.Power = v }},
	AttrContact:     {func(a *Attributes) int { return a.Contact }, func(a *Attributes, v int) { a.Contact = v }},
	AttrDiscipline:  {func(a *Attributes) int { return a.Discipline }, func(a *Attributes, v int) { a.Discipline = v }},
	AttrSpeed:       {func(a *Attributes) int { return a.Speed }, func(a *Attributes, v int) { a.Speed = v }},
	AttrVelocity:    {func(a *Attributes) int { return a.Velocity }, func(a *Attributes, v int) { a.Velocity = v }},
	AttrMovement:    {func(a *Attributes) int { return a.Movement }, func(a *Attributes, v int) { a.Movement = v }},
	AttrControl:     {func(a *Attributes) int { return a.Control }, func(a *Attributes, v int) { a.Control = v }},
	AttrStamina:     {func(a *Attributes) int { return a.Stamina }, func(a *Attributes, v int) { a.Stamina = v }},
	AttrDeception:   {func(a *Attributes) int { return a.Deception }, func(a *Attributes, v int) { a.Deception = v }},
	AttrRange:       {func(a *Attributes) int { return a.Range }, func(a *Attributes, v int) { a.Range = v }},
	AttrArmStrength: {func(a *Attributes) int { return a.ArmStrength }, func(a *Attributes, v int) { a.ArmStrength = v }},
	AttrHands:       {func(a *Attributes) int { return a.Hands }, func(a *Attributes, v int) { a.Hands = v }},
	AttrReaction:    {func(a *Attributes) int { return a.Reaction }, func(a *Attributes, v int) { a.Reaction = v }},
	AttrLeadership:  {func(a *Attributes) int { return a.Leadership }, func(a *Attributes, v int) { a.Leadership = v }},
	AttrClutch:      {func(a *Attributes) int { return a.Clutch }, func(a *Attributes, v int) { a.Clutch = v }},
	AttrComposure:   {func(a *Attributes) int { return a.Composure }, func(a *Attributes, v int) { a.Composure = v }},
}

// AttributeKinds returns every kind in declaration order.
func AttributeKinds() []AttributeKind {
	kinds := make([]AttributeKind, 0, len(attributeTable))
	for k := AttrPower; k <= AttrComposure; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ClampAttribute forces a raw value into the legal [1,100] range.
func ClampAttribute(v int) int {
	if v < MinAttribute {
		return MinAttribute
	}
	if v > MaxAttribute {
		return MaxAttribute
	}
	return v
}

// Get returns the rating for the given kind.
func (a *Attributes) Get(kind AttributeKind) int {
	acc, ok := attributeTable[kind]
	if !ok {
		return MinAttribute
	}
	return acc.get(a)
}

// Set writes the rating for the given kind, clamping into [1,100].
func (a *Attributes) Set(kind AttributeKind, value int) {
	acc, ok := attributeTable[kind]
	if !ok {
		return
	}
	acc.set(a, ClampAttribute(value))
}

// Adjust shifts a rating by delta, clamping the result. Used by development
// event collaborators.
func (a *Attributes) Adjust(kind AttributeKind, delta int) {
	a.Set(kind, a.Get(kind)+delta)
}

// Clamp normalises every rating in place. Constructors call this so a struct
// literal with out-of-range values can never leak into the engine.
func (a *Attributes) Clamp() {
	for _, acc := range attributeTable {
		acc.set(a, ClampAttribute(acc.get(a)))
	}
}

// Player is a league member: identity, age, and ratings. Season counting
// stats deliberately do NOT live here; they belong to the season's StatBook
// so simulations can run against injected fixtures.
type Player struct {
	Name string
	Age  int
	Team string // back-reference for display only

	Attributes Attributes
}

// NewPlayer constructs a player with clamped attributes.
func NewPlayer(name string, age int, attrs Attributes) *Player {
	attrs.Clamp()
	return &Player{Name: name, Age: age, Attributes: attrs}
}

// PitchingSkill is the scouting shorthand used for rotation ordering:
// velocity plus control.
func (p *Player) PitchingSkill() int {
	return p.Attributes.Velocity + p.Attributes.Control
}

// Clone returns an independent copy of the player. Monte Carlo runs clone
// whole leagues so parallel seasons never share mutable state.
func (p *Player) Clone() *Player {
	cp := *p
	return &cp
}

package league

// Per-season counting stats. Rate stats are always computed on read from the
// counts so they can never drift out of sync with the underlying events.

// BattingLine accumulates a hitter's season counts.
type BattingLine struct {
	GamesPlayed      int
	PlateAppearances int
	AtBats           int
	Runs             int
	Hits             int
	Doubles          int
	Triples          int
	HomeRuns         int
	RBI              int
	Walks            int
	Strikeouts       int
	HitByPitch       int
}

// Singles derives the 1B count from the hit breakdown.
func (b *BattingLine) Singles() int {
	return b.Hits - b.Doubles - b.Triples - b.HomeRuns
}

// TotalBases derives total bases from the hit breakdown.
func (b *BattingLine) TotalBases() int {
	return b.Singles() + 2*b.Doubles + 3*b.Triples + 4*b.HomeRuns
}

// Average returns batting average, 0 with no at-bats.
func (b *BattingLine) Average() float64 {
	if b.AtBats == 0 {
		return 0
	}
	return float64(b.Hits) / float64(b.AtBats)
}

// OnBase returns on-base percentage.
func (b *BattingLine) OnBase() float64 {
	denom := b.AtBats + b.Walks + b.HitByPitch
	if denom == 0 {
		return 0
	}
	return float64(b.Hits+b.Walks+b.HitByPitch) / float64(denom)
}

// Slugging returns slugging percentage.
func (b *BattingLine) Slugging() float64 {
	if b.AtBats == 0 {
		return 0
	}
	return float64(b.TotalBases()) / float64(b.AtBats)
}

// OPS returns on-base plus slugging.
func (b *BattingLine) OPS() float64 {
	return b.OnBase() + b.Slugging()
}

// PitchingLine accumulates a pitcher's season counts.
type PitchingLine struct {
	GamesPitched   int
	GamesStarted   int
	InningsPitched float64
	Runs           int
	EarnedRuns     int
	HitsAllowed    int
	WalksAllowed   int
	HitBatters     int
	Strikeouts     int
	Wins           int
	Losses         int
	BattersFaced   int
}

// ERA returns earned runs per six innings, the MLW convention.
func (p *PitchingLine) ERA() float64 {
	if p.InningsPitched == 0 {
		return 0
	}
	return float64(p.EarnedRuns) * 6 / p.InningsPitched
}

// WHIP returns walks plus hits per inning pitched.
func (p *PitchingLine) WHIP() float64 {
	if p.InningsPitched == 0 {
		return 0
	}
	return float64(p.WalksAllowed+p.HitsAllowed) / p.InningsPitched
}

// StrikeoutWalkRatio returns K/BB, or the raw strikeout count with no walks.
func (p *PitchingLine) StrikeoutWalkRatio() float64 {
	if p.WalksAllowed == 0 {
		return float64(p.Strikeouts)
	}
	return float64(p.Strikeouts) / float64(p.WalksAllowed)
}

// FieldingLine accumulates a defender's season counts.
type FieldingLine struct {
	Putouts int
	Assists int
	Errors  int
}

// Percentage returns fielding percentage, 1.0 with no chances.
func (f *FieldingLine) Percentage() float64 {
	chances := f.Putouts + f.Assists + f.Errors
	if chances == 0 {
		return 1.0
	}
	return float64(f.Putouts+f.Assists) / float64(chances)
}

// StatBook is the season-scoped stat container. It is owned by a season
// context and passed by reference into every simulation call; players carry
// no ambient mutable stats of their own.
type StatBook struct {
	batting  map[*Player]*BattingLine
	pitching map[*Player]*PitchingLine
	fielding map[*Player]*FieldingLine
}

// NewStatBook returns an empty book with all lines zeroed.
func NewStatBook() *StatBook {
	return &StatBook{
		batting:  make(map[*Player]*BattingLine),
		pitching: make(map[*Player]*PitchingLine),
		fielding: make(map[*Player]*FieldingLine),
	}
}

// Batting returns the player's batting line, creating a zeroed one on first
// touch.
func (sb *StatBook) Batting(p *Player) *BattingLine {
	line, ok := sb.batting[p]
	if !ok {
		line = &BattingLine{}
		sb.batting[p] = line
	}
	return line
}

// Pitching returns the player's pitching line, creating a zeroed one on first
// touch.
func (sb *StatBook) Pitching(p *Player) *PitchingLine {
	line, ok := sb.pitching[p]
	if !ok {
		line = &PitchingLine{}
		sb.pitching[p] = line
	}
	return line
}

// Fielding returns the player's fielding line, creating a zeroed one on first
// touch.
func (sb *StatBook) Fielding(p *Player) *FieldingLine {
	line, ok := sb.fielding[p]
	if !ok {
		line = &FieldingLine{}
		sb.fielding[p] = line
	}
	return line
}

// HasBatting reports whether the player batted at all this season.
func (sb *StatBook) HasBatting(p *Player) bool {
	_, ok := sb.batting[p]
	return ok
}

// HasPitching reports whether the player pitched at all this season.
func (sb *StatBook) HasPitching(p *Player) bool {
	_, ok := sb.pitching[p]
	return ok
}

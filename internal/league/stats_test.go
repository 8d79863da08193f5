package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBattingLineDerivedRates(t *testing.T) {
	b := &BattingLine{
		AtBats:   10,
		Hits:     4,
		Doubles:  1,
		Triples:  1,
		HomeRuns: 1,
		Walks:    2,
	}

	assert.Equal(t, 1, b.Singles())
	assert.Equal(t, 10, b.TotalBases()) // 1 + 2 + 3 + 4
	assert.InDelta(t, 0.400, b.Average(), 1e-9)
	assert.InDelta(t, 0.500, b.OnBase(), 1e-9)
	assert.InDelta(t, 1.000, b.Slugging(), 1e-9)
	assert.InDelta(t, 1.500, b.OPS(), 1e-9)
}

func TestBattingLineZeroDenominators(t *testing.T) {
	b := &BattingLine{}
	assert.Zero(t, b.Average())
	assert.Zero(t, b.OnBase())
	assert.Zero(t, b.Slugging())
}

func TestPitchingLineERA(t *testing.T) {
	// ERA is per six innings, two regulation games worth of work.
	p := &PitchingLine{InningsPitched: 6, EarnedRuns: 4}
	assert.InDelta(t, 4.0, p.ERA(), 1e-9)

	p = &PitchingLine{InningsPitched: 3, EarnedRuns: 2}
	assert.InDelta(t, 4.0, p.ERA(), 1e-9)

	assert.Zero(t, (&PitchingLine{}).ERA())
}

func TestPitchingLineWHIP(t *testing.T) {
	p := &PitchingLine{InningsPitched: 6, WalksAllowed: 3, HitsAllowed: 6}
	assert.InDelta(t, 1.5, p.WHIP(), 1e-9)
}

func TestStrikeoutWalkRatio(t *testing.T) {
	p := &PitchingLine{Strikeouts: 12, WalksAllowed: 4}
	assert.InDelta(t, 3.0, p.StrikeoutWalkRatio(), 1e-9)

	p = &PitchingLine{Strikeouts: 9}
	assert.InDelta(t, 9.0, p.StrikeoutWalkRatio(), 1e-9)
}

func TestFieldingPercentage(t *testing.T) {
	f := &FieldingLine{Putouts: 7, Assists: 2, Errors: 1}
	assert.InDelta(t, 0.9, f.Percentage(), 1e-9)

	assert.Equal(t, 1.0, (&FieldingLine{}).Percentage(), "no chances means a clean sheet")
}

func TestStatBookLazyCreation(t *testing.T) {
	book := NewStatBook()
	p := testPlayer("Riley Garcia")

	assert.False(t, book.HasBatting(p))
	assert.False(t, book.HasPitching(p))

	book.Batting(p).Hits++
	assert.True(t, book.HasBatting(p))
	assert.Equal(t, 1, book.Batting(p).Hits, "same line on every access")

	book.Pitching(p).Strikeouts += 3
	assert.Equal(t, 3, book.Pitching(p).Strikeouts)

	book.Fielding(p).Putouts++
	assert.Equal(t, 1, book.Fielding(p).Putouts)
}

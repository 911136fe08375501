package sandbox

// Level is one predefined decomposition step of a breakdown sandbox.
type Level struct {
	Title       string  `json:"title"`
	Pieces      []Piece `json:"pieces"`
	Explanation string  `json:"explanation"`
}

// Breakdown runs the strictly linear level-unlock machine: clicking the
// current target reveals the next level until levels are exhausted.
type Breakdown struct {
	target   Piece
	levels   []Level
	revealed int
}

func NewBreakdown(target Piece, levels []Level) *Breakdown {
	return &Breakdown{target: target, levels: levels}
}

func (b *Breakdown) Target() Piece {
	return b.target
}

// Advance reveals the next level. Returns false once all levels are revealed.
func (b *Breakdown) Advance() (Level, bool) {
	if b.revealed >= len(b.levels) {
		return Level{}, false
	}
	lvl := b.levels[b.revealed]
	b.revealed++
	return lvl, true
}

// Revealed returns the levels unlocked so far.
func (b *Breakdown) Revealed() []Level {
	out := make([]Level, b.revealed)
	copy(out, b.levels[:b.revealed])
	return out
}

func (b *Breakdown) Exhausted() bool {
	return b.revealed >= len(b.levels)
}

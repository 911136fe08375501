package sandbox

// Piece is one draggable sandbox element, either starting inventory or the
// result of a combination.
type Piece struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Combination is a declarative rule: placing exactly the required pieces
// together yields the result piece.
type Combination struct {
	RequiredPieceIDs []string `json:"required_piece_ids"`
	Result           Piece    `json:"result"`
	Explanation      string   `json:"explanation"`
}

type Mode string

const (
	ModeBuild     Mode = "build"
	ModeBreakdown Mode = "breakdown"
)

// ZoneState names the sandbox state machine position derived from the
// combination zone's contents.
type ZoneState string

const (
	ZoneIdle       ZoneState = "idle"
	ZoneFilling    ZoneState = "filling"
	ZoneEvaluating ZoneState = "evaluating"
)

// Result of a combine attempt. A non-match is not a failure state: Hint
// carries a generic "these don't combine" message and the zone keeps its
// pieces so the user can experiment further.
type Result struct {
	Matched     bool   `json:"matched"`
	Result      *Piece `json:"result,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Hint        string `json:"hint,omitempty"`
}

const noMatchHint = "Potongan-potongan ini belum bisa digabungkan. Coba kombinasi lain!"

// Engine runs a build-mode sandbox: a multiset inventory, a combination zone
// and a declarative rule table. Matching is exact set equality on piece ids,
// order-independent by design.
type Engine struct {
	pieces      map[string]Piece
	rules       []Combination
	inventory   map[string]int
	zone        []string
	created     []Piece
	createdEver map[string]bool
}

func NewEngine(starting []Piece, rules []Combination) *Engine {
	e := &Engine{
		pieces:      make(map[string]Piece, len(starting)),
		rules:       rules,
		inventory:   make(map[string]int, len(starting)),
		createdEver: make(map[string]bool),
	}
	for _, p := range starting {
		e.pieces[p.ID] = p
		e.inventory[p.ID]++
	}
	for _, r := range rules {
		// Results are resolvable for deconstruction even before creation.
		e.pieces[r.Result.ID] = r.Result
	}
	return e
}

// Place moves one piece from inventory into the combination zone. Unknown or
// unavailable pieces are a no-op.
func (e *Engine) Place(pieceID string) bool {
	if e.inventory[pieceID] <= 0 {
		return false
	}
	e.inventory[pieceID]--
	e.zone = append(e.zone, pieceID)
	return true
}

// Remove returns one piece from the zone back to inventory.
func (e *Engine) Remove(pieceID string) bool {
	for i, id := range e.zone {
		if id == pieceID {
			e.zone = append(e.zone[:i], e.zone[i+1:]...)
			e.inventory[pieceID]++
			return true
		}
	}
	return false
}

// Combine checks the zone against the rule table. On an exact set match the
// zone is cleared and the result piece joins both the created collection and
// the inventory, so results can participate in further combinations.
func (e *Engine) Combine() Result {
	if len(e.zone) < 2 {
		return Result{}
	}

	placed := make(map[string]bool, len(e.zone))
	for _, id := range e.zone {
		placed[id] = true
	}

	for _, rule := range e.rules {
		if !setMatches(placed, rule.RequiredPieceIDs) {
			continue
		}
		e.zone = e.zone[:0]
		e.pieces[rule.Result.ID] = rule.Result
		e.inventory[rule.Result.ID]++
		e.created = append(e.created, rule.Result)
		e.createdEver[rule.Result.ID] = true
		result := rule.Result
		return Result{Matched: true, Result: &result, Explanation: rule.Explanation}
	}

	return Result{Hint: noMatchHint}
}

// Deconstruct reverses a created piece: the combination whose result matches
// pieceID has its required pieces returned to inventory. The piece must be
// available in inventory. Returns the restored pieces.
func (e *Engine) Deconstruct(pieceID string) ([]Piece, bool) {
	if e.inventory[pieceID] <= 0 {
		return nil, false
	}

	for _, rule := range e.rules {
		if rule.Result.ID != pieceID {
			continue
		}
		e.inventory[pieceID]--
		for i := len(e.created) - 1; i >= 0; i-- {
			if e.created[i].ID == pieceID {
				e.created = append(e.created[:i], e.created[i+1:]...)
				break
			}
		}
		restored := make([]Piece, 0, len(rule.RequiredPieceIDs))
		for _, id := range rule.RequiredPieceIDs {
			e.inventory[id]++
			restored = append(restored, e.pieces[id])
		}
		return restored, true
	}

	return nil, false
}

// Completed reports whether every rule's result has been created at least
// once, the terminal state for a build-mode sandbox.
func (e *Engine) Completed() bool {
	for _, rule := range e.rules {
		if !e.createdEver[rule.Result.ID] {
			return false
		}
	}
	return len(e.rules) > 0
}

func (e *Engine) State() ZoneState {
	switch {
	case len(e.zone) == 0:
		return ZoneIdle
	case len(e.zone) == 1:
		return ZoneFilling
	default:
		return ZoneEvaluating
	}
}

// Inventory expands the multiset into pieces, duplicates included.
func (e *Engine) Inventory() []Piece {
	out := make([]Piece, 0, len(e.inventory))
	for id, n := range e.inventory {
		for i := 0; i < n; i++ {
			out = append(out, e.pieces[id])
		}
	}
	return out
}

func (e *Engine) Zone() []Piece {
	out := make([]Piece, 0, len(e.zone))
	for _, id := range e.zone {
		out = append(out, e.pieces[id])
	}
	return out
}

func (e *Engine) Created() []Piece {
	out := make([]Piece, len(e.created))
	copy(out, e.created)
	return out
}

// setMatches reports exact set equality between the placed ids and the
// rule's required ids: same size, same members. Supersets and subsets do not
// match.
func setMatches(placed map[string]bool, required []string) bool {
	req := make(map[string]bool, len(required))
	for _, id := range required {
		req[id] = true
	}
	if len(placed) != len(req) {
		return false
	}
	for id := range req {
		if !placed[id] {
			return false
		}
	}
	return true
}

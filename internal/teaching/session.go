package teaching

// The teach-it-back challenge: the user explains the lesson to a curious
// "kid" persona; an external evaluator scores each explanation with an
// understanding delta. Evaluator failures are absorbed, never fatal to the
// session.

type Speaker string

const (
	SpeakerKid     Speaker = "kid"
	SpeakerTeacher Speaker = "teacher"
)

type Turn struct {
	Speaker  Speaker `json:"speaker"`
	Text     string  `json:"text"`
	Reaction string  `json:"reaction,omitempty"`
}

type State string

const (
	StateAwaitingFirstQuestion State = "awaiting_first_question"
	StateAwaitingExplanation   State = "awaiting_explanation"
	StateEvaluating            State = "evaluating"
	StateComplete              State = "complete"
)

const (
	// MaxDelta caps a single evaluation's understanding gain.
	MaxDelta = 10

	DefaultMaxUnderstanding = 100
	DefaultRetryCeiling     = 3

	ReactionNeutral = "neutral"
)

var validReactions = map[string]bool{
	"excited":       true,
	"happy":         true,
	"curious":       true,
	"confused":      true,
	ReactionNeutral: true,
}

type Session struct {
	turns         []Turn
	understanding int
	max           int
	state         State
	failures      int
	retryCeiling  int
}

func NewSession(maxUnderstanding, retryCeiling int) *Session {
	if maxUnderstanding <= 0 {
		maxUnderstanding = DefaultMaxUnderstanding
	}
	if retryCeiling <= 0 {
		retryCeiling = DefaultRetryCeiling
	}
	return &Session{
		max:          maxUnderstanding,
		retryCeiling: retryCeiling,
		state:        StateAwaitingFirstQuestion,
	}
}

// BeginQuestion records the kid's opening question and unlocks explanations.
func (s *Session) BeginQuestion(text string) bool {
	if s.state != StateAwaitingFirstQuestion {
		return false
	}
	s.turns = append(s.turns, Turn{Speaker: SpeakerKid, Text: text})
	s.state = StateAwaitingExplanation
	return true
}

// SubmitExplanation records the user's explanation and moves to Evaluating.
func (s *Session) SubmitExplanation(text string) bool {
	if s.state != StateAwaitingExplanation {
		return false
	}
	s.turns = append(s.turns, Turn{Speaker: SpeakerTeacher, Text: text})
	s.state = StateEvaluating
	return true
}

// ApplyEvaluation folds an evaluator verdict into the session. The delta is
// clamped to [0, MaxDelta], cumulative understanding to [0, max]; an unknown
// reaction tag falls back to neutral. Reaching max completes the session.
func (s *Session) ApplyEvaluation(delta int, reaction, kidReply string) State {
	if s.state != StateEvaluating {
		return s.state
	}
	if delta < 0 {
		delta = 0
	}
	if delta > MaxDelta {
		delta = MaxDelta
	}
	if !validReactions[reaction] {
		reaction = ReactionNeutral
	}

	s.understanding += delta
	if s.understanding > s.max {
		s.understanding = s.max
	}
	s.failures = 0
	s.turns = append(s.turns, Turn{Speaker: SpeakerKid, Text: kidReply, Reaction: reaction})

	if s.understanding >= s.max {
		s.state = StateComplete
	} else {
		s.state = StateAwaitingExplanation
	}
	return s.state
}

// RecordFailure counts an evaluator failure. Once the retry ceiling is hit
// the fallback utterance is injected as the kid's reply and the session
// returns to awaiting an explanation; the caller should retry otherwise.
func (s *Session) RecordFailure(fallback string) (gaveUp bool) {
	if s.state != StateEvaluating {
		return false
	}
	s.failures++
	if s.failures < s.retryCeiling {
		return false
	}
	s.failures = 0
	s.turns = append(s.turns, Turn{Speaker: SpeakerKid, Text: fallback, Reaction: ReactionNeutral})
	s.state = StateAwaitingExplanation
	return true
}

func (s *Session) State() State { return s.state }

func (s *Session) Understanding() int { return s.understanding }

func (s *Session) MaxUnderstanding() int { return s.max }

func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

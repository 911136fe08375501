package quiz

// OptionCount is the number of options every well-formed question carries.
const OptionCount = 4

type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// ValidQuestions drops malformed generator output: a question must be
// non-empty, carry exactly four options and a correct index in range. The
// session machine assumes well-formed questions only after this gate.
func ValidQuestions(in []Question) []Question {
	out := make([]Question, 0, len(in))
	for _, q := range in {
		if q.Question == "" {
			continue
		}
		if len(q.Options) != OptionCount {
			continue
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
			continue
		}
		out = append(out, q)
	}
	return out
}

type State string

const (
	StateQuestion   State = "question"
	StateExplaining State = "explaining"
	StateComplete   State = "complete"
)

// Session walks Question(i) -> Explaining(i) -> {Question(i+1) | Complete}.
// Each question accepts exactly one answer; later attempts are no-ops.
type Session struct {
	questions []Question
	current   int
	selected  int
	score     int
	state     State
}

func NewSession(questions []Question) *Session {
	s := &Session{questions: questions, selected: -1, state: StateQuestion}
	if len(questions) == 0 {
		s.state = StateComplete
	}
	return s
}

// Answer records the selection for the current question. Returns whether the
// answer was correct and whether it was accepted at all (false when the
// question was already answered or the option is out of range).
func (s *Session) Answer(option int) (correct bool, accepted bool) {
	if s.state != StateQuestion {
		return false, false
	}
	if option < 0 || option >= OptionCount {
		return false, false
	}
	s.selected = option
	s.state = StateExplaining
	correct = option == s.questions[s.current].CorrectIndex
	if correct {
		s.score++
	}
	return correct, true
}

// Next advances past the explanation to the next question, or to Complete
// after the last one. A no-op outside the explaining state.
func (s *Session) Next() State {
	if s.state != StateExplaining {
		return s.state
	}
	s.current++
	s.selected = -1
	if s.current >= len(s.questions) {
		s.state = StateComplete
	} else {
		s.state = StateQuestion
	}
	return s.state
}

// Retry resets to the first question with a zero score.
func (s *Session) Retry() {
	s.current = 0
	s.selected = -1
	s.score = 0
	s.state = StateQuestion
	if len(s.questions) == 0 {
		s.state = StateComplete
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) Score() int { return s.score }

// Percentage of correct answers, 0 for an empty session.
func (s *Session) Percentage() int {
	if len(s.questions) == 0 {
		return 0
	}
	return s.score * 100 / len(s.questions)
}

// Current returns the active question and its index; ok is false once the
// session is complete.
func (s *Session) Current() (Question, int, bool) {
	if s.state == StateComplete {
		return Question{}, 0, false
	}
	return s.questions[s.current], s.current, true
}

func (s *Session) Selected() int { return s.selected }

func (s *Session) Total() int { return len(s.questions) }

package quiz

import "testing"

func twoQuestions() []Question {
	return []Question{
		{
			Question:     "Apa fungsi dendrit?",
			Options:      []string{"Menerima sinyal", "Mengirim sinyal", "Menyimpan energi", "Membelah sel"},
			CorrectIndex: 0,
			Explanation:  "Dendrit menerima sinyal dari neuron lain.",
		},
		{
			Question:     "Apa fungsi akson?",
			Options:      []string{"Menerima sinyal", "Mengirim sinyal", "Menyimpan energi", "Membelah sel"},
			CorrectIndex: 1,
			Explanation:  "Akson membawa sinyal keluar dari badan sel.",
		},
	}
}

func TestValidQuestions(t *testing.T) {
	in := []Question{
		{Question: "", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{Question: "kurang opsi", Options: []string{"a", "b"}, CorrectIndex: 0},
		{Question: "indeks di luar", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 4},
		{Question: "indeks negatif", Options: []string{"a", "b", "c", "d"}, CorrectIndex: -1},
		{Question: "valid", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
	}

	out := ValidQuestions(in)
	if len(out) != 1 || out[0].Question != "valid" {
		t.Errorf("ValidQuestions kept %d questions, want only the valid one", len(out))
	}
}

func TestSessionWalk(t *testing.T) {
	s := NewSession(twoQuestions())

	if s.State() != StateQuestion {
		t.Fatalf("initial state = %q, want %q", s.State(), StateQuestion)
	}

	correct, accepted := s.Answer(0)
	if !accepted || !correct {
		t.Fatalf("Answer(0) = (%v, %v), want correct and accepted", correct, accepted)
	}
	if s.State() != StateExplaining {
		t.Fatalf("state after answer = %q, want %q", s.State(), StateExplaining)
	}

	if got := s.Next(); got != StateQuestion {
		t.Fatalf("Next() = %q, want %q", got, StateQuestion)
	}

	correct, accepted = s.Answer(3)
	if !accepted || correct {
		t.Fatalf("Answer(3) = (%v, %v), want wrong but accepted", correct, accepted)
	}
	if got := s.Next(); got != StateComplete {
		t.Fatalf("Next() after last question = %q, want %q", got, StateComplete)
	}

	if s.Score() != 1 {
		t.Errorf("Score() = %d, want 1", s.Score())
	}
	if s.Percentage() != 50 {
		t.Errorf("Percentage() = %d, want 50", s.Percentage())
	}
}

func TestSessionSingleAnswerPerQuestion(t *testing.T) {
	s := NewSession(twoQuestions())

	s.Answer(3)
	if _, accepted := s.Answer(0); accepted {
		t.Error("second Answer on the same question was accepted")
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d after a rejected correction, want 0", s.Score())
	}
}

func TestSessionRejectsOutOfRangeOption(t *testing.T) {
	s := NewSession(twoQuestions())

	if _, accepted := s.Answer(4); accepted {
		t.Error("Answer(4) was accepted")
	}
	if _, accepted := s.Answer(-1); accepted {
		t.Error("Answer(-1) was accepted")
	}
	if s.State() != StateQuestion {
		t.Errorf("state = %q after rejected answers, want %q", s.State(), StateQuestion)
	}
}

func TestSessionRetryResetsScore(t *testing.T) {
	s := NewSession(twoQuestions())
	s.Answer(0)
	s.Next()
	s.Answer(1)
	s.Next()

	if s.Score() != 2 || s.State() != StateComplete {
		t.Fatalf("Score() = %d, State() = %q before retry", s.Score(), s.State())
	}

	s.Retry()
	if s.Score() != 0 {
		t.Errorf("Score() = %d after retry, want 0", s.Score())
	}
	if s.State() != StateQuestion {
		t.Errorf("State() = %q after retry, want %q", s.State(), StateQuestion)
	}
	if _, idx, ok := s.Current(); !ok || idx != 0 {
		t.Errorf("Current() after retry = (%d, %v), want question 0", idx, ok)
	}
}

func TestEmptySessionIsComplete(t *testing.T) {
	s := NewSession(nil)

	if s.State() != StateComplete {
		t.Fatalf("empty session state = %q, want %q", s.State(), StateComplete)
	}
	if _, accepted := s.Answer(0); accepted {
		t.Error("Answer accepted on an empty session")
	}
	if s.Percentage() != 0 {
		t.Errorf("Percentage() = %d on empty session, want 0", s.Percentage())
	}
	s.Retry()
	if s.State() != StateComplete {
		t.Errorf("empty session left %q after retry, want %q", s.State(), StateComplete)
	}
}

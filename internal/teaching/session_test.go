package teaching

import "testing"

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(20, 3)
	if !s.BeginQuestion("Apa itu fotosintesis?") {
		t.Fatal("BeginQuestion failed on a fresh session")
	}
	return s
}

func TestSessionHappyPath(t *testing.T) {
	s := startedSession(t)

	if !s.SubmitExplanation("Tumbuhan membuat makanan dari sinar matahari.") {
		t.Fatal("SubmitExplanation failed")
	}
	if s.State() != StateEvaluating {
		t.Fatalf("state = %q, want %q", s.State(), StateEvaluating)
	}

	if got := s.ApplyEvaluation(8, "excited", "Keren! Terus bagaimana?"); got != StateAwaitingExplanation {
		t.Fatalf("ApplyEvaluation = %q, want %q", got, StateAwaitingExplanation)
	}
	if s.Understanding() != 8 {
		t.Errorf("Understanding() = %d, want 8", s.Understanding())
	}

	turns := s.Turns()
	last := turns[len(turns)-1]
	if last.Speaker != SpeakerKid || last.Reaction != "excited" {
		t.Errorf("last turn = %+v, want excited kid reply", last)
	}
}

func TestApplyEvaluationClampsDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"negative delta clamps to zero", -5, 0},
		{"delta above cap clamps to cap", 50, MaxDelta},
		{"in-range delta passes through", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startedSession(t)
			s.SubmitExplanation("penjelasan")
			s.ApplyEvaluation(tt.delta, "happy", "oke")
			if s.Understanding() != tt.want {
				t.Errorf("Understanding() = %d, want %d", s.Understanding(), tt.want)
			}
		})
	}
}

func TestUnderstandingClampsToMax(t *testing.T) {
	s := startedSession(t) // max 20

	s.SubmitExplanation("satu")
	s.ApplyEvaluation(10, "happy", "lanjut")
	s.SubmitExplanation("dua")
	if got := s.ApplyEvaluation(10, "happy", "hampir"); got != StateComplete {
		t.Fatalf("state at max understanding = %q, want %q", got, StateComplete)
	}
	if s.Understanding() != 20 {
		t.Errorf("Understanding() = %d, want capped at 20", s.Understanding())
	}

	// Complete sessions accept nothing further.
	if s.SubmitExplanation("tiga") {
		t.Error("SubmitExplanation accepted on a complete session")
	}
}

func TestUnknownReactionBecomesNeutral(t *testing.T) {
	s := startedSession(t)
	s.SubmitExplanation("penjelasan")
	s.ApplyEvaluation(5, "ecstatic", "hmm")

	turns := s.Turns()
	if got := turns[len(turns)-1].Reaction; got != ReactionNeutral {
		t.Errorf("reaction = %q, want %q", got, ReactionNeutral)
	}
}

func TestRecordFailureHitsCeiling(t *testing.T) {
	s := startedSession(t)
	s.SubmitExplanation("penjelasan")

	if s.RecordFailure("maaf, ulangi ya") {
		t.Fatal("first failure already gave up")
	}
	if s.RecordFailure("maaf, ulangi ya") {
		t.Fatal("second failure already gave up")
	}
	if !s.RecordFailure("maaf, ulangi ya") {
		t.Fatal("third failure did not give up at the ceiling")
	}

	if s.State() != StateAwaitingExplanation {
		t.Errorf("state after give-up = %q, want %q", s.State(), StateAwaitingExplanation)
	}
	turns := s.Turns()
	last := turns[len(turns)-1]
	if last.Text != "maaf, ulangi ya" || last.Reaction != ReactionNeutral {
		t.Errorf("fallback turn = %+v", last)
	}
	if s.Understanding() != 0 {
		t.Errorf("Understanding() = %d after failures, want 0", s.Understanding())
	}
}

func TestSuccessResetsFailureCount(t *testing.T) {
	s := startedSession(t)
	s.SubmitExplanation("satu")
	s.RecordFailure("fallback")
	s.RecordFailure("fallback")
	s.ApplyEvaluation(5, "curious", "oh begitu")

	s.SubmitExplanation("dua")
	if s.RecordFailure("fallback") {
		t.Error("failure count survived a successful evaluation")
	}
}

func TestBeginQuestionOnlyOnce(t *testing.T) {
	s := startedSession(t)
	if s.BeginQuestion("pertanyaan kedua") {
		t.Error("BeginQuestion accepted twice")
	}
}

func TestDefaultsApplied(t *testing.T) {
	s := NewSession(0, 0)
	if s.MaxUnderstanding() != DefaultMaxUnderstanding {
		t.Errorf("MaxUnderstanding() = %d, want %d", s.MaxUnderstanding(), DefaultMaxUnderstanding)
	}
}

package playback

import (
	"testing"
	"time"

	"github.com/arkanasution/lentera-be/internal/lesson"
)

func testSection() *lesson.Section {
	return &lesson.Section{
		ID:         "sec-1",
		Title:      "Sel",
		Transcript: "The cell grows. It divides.",
		ImageURLs:  []string{"img-0", "img-1"},
		Alignment: []lesson.WordAlignment{
			{Text: "the", Start: 0, End: 0.3},
			{Text: "cell", Start: 0.3, End: 0.6},
			{Text: "grows", Start: 0.6, End: 0.9},
			{Text: "it", Start: 0.9, End: 1.2},
			{Text: "divides", Start: 1.2, End: 1.5},
		},
		ImageTimings: []float64{0.0, 0.9},
	}
}

func TestEvaluateWordSelection(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		currentTime float64
		wantWord    int
	}{
		{"before first word start keeps nothing active", -0.1, -1},
		{"start boundary is inclusive", 0.3, 1},
		{"end boundary is exclusive", 0.6, 2},
		{"mid interval", 0.45, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(testSection(), 0)
			got := e.Evaluate(tt.currentTime, now)
			if got.WordIndex != tt.wantWord {
				t.Errorf("Evaluate(%v).WordIndex = %d, want %d", tt.currentTime, got.WordIndex, tt.wantWord)
			}
			if got.Fallback {
				t.Errorf("Evaluate(%v).Fallback = true, want false", tt.currentTime)
			}
		})
	}
}

func TestEvaluateRetainsWordAcrossGaps(t *testing.T) {
	now := time.Now()
	sec := &lesson.Section{
		Transcript: "satu dua",
		Alignment: []lesson.WordAlignment{
			{Text: "satu", Start: 0, End: 0.5},
			{Text: "dua", Start: 1.0, End: 1.5},
		},
	}
	e := NewEngine(sec, 0)

	if got := e.Evaluate(0.2, now); got.WordIndex != 0 {
		t.Fatalf("WordIndex at 0.2 = %d, want 0", got.WordIndex)
	}
	// 0.7 falls in the alignment gap: the previous word stays highlighted.
	if got := e.Evaluate(0.7, now); got.WordIndex != 0 {
		t.Errorf("WordIndex in gap = %d, want retained 0", got.WordIndex)
	}
	if got := e.Evaluate(1.2, now); got.WordIndex != 1 {
		t.Errorf("WordIndex at 1.2 = %d, want 1", got.WordIndex)
	}
	// Seeking backwards needs no special casing.
	if got := e.Evaluate(0.2, now); got.WordIndex != 0 {
		t.Errorf("WordIndex after seek back = %d, want 0", got.WordIndex)
	}
}

func TestEvaluateIsIdempotentForSameTime(t *testing.T) {
	now := time.Now()
	e := NewEngine(testSection(), 0)

	first := e.Evaluate(0.5, now)
	second := e.Evaluate(0.5, now)
	if first != second {
		t.Errorf("repeated Evaluate(0.5) = %+v, then %+v", first, second)
	}
}

func TestEvaluateSentenceIndex(t *testing.T) {
	now := time.Now()
	e := NewEngine(testSection(), 0)

	if got := e.Evaluate(0.7, now); got.SentenceIndex != 0 {
		t.Errorf("SentenceIndex for 'grows' = %d, want 0", got.SentenceIndex)
	}
	if got := e.Evaluate(1.3, now); got.SentenceIndex != 1 {
		t.Errorf("SentenceIndex for 'divides' = %d, want 1", got.SentenceIndex)
	}
	if got := e.Evaluate(-1, now); got.SentenceIndex != -1 {
		t.Errorf("SentenceIndex before playback = %d, want -1", got.SentenceIndex)
	}
}

func TestEvaluateAutoImage(t *testing.T) {
	now := time.Now()
	e := NewEngine(testSection(), 0)

	if got := e.Evaluate(0.5, now); got.ImageIndex != 0 {
		t.Errorf("ImageIndex at 0.5 = %d, want 0", got.ImageIndex)
	}
	if got := e.Evaluate(0.9, now); got.ImageIndex != 1 {
		t.Errorf("ImageIndex at 0.9 = %d, want 1", got.ImageIndex)
	}
	// Seeking back moves the image back too.
	if got := e.Evaluate(0.1, now); got.ImageIndex != 0 {
		t.Errorf("ImageIndex after seek back = %d, want 0", got.ImageIndex)
	}
}

func TestEvaluateClampsImageToAvailable(t *testing.T) {
	now := time.Now()
	sec := testSection()
	sec.ImageURLs = []string{"only"}
	sec.ImageTimings = []float64{0.0, 0.4, 0.8}
	e := NewEngine(sec, 0)

	if got := e.Evaluate(1.0, now); got.ImageIndex != 0 {
		t.Errorf("ImageIndex with one image = %d, want clamped 0", got.ImageIndex)
	}
}

func TestEvaluateFallbackWithoutAlignment(t *testing.T) {
	now := time.Now()
	sec := testSection()
	sec.Alignment = nil
	e := NewEngine(sec, 0)

	got := e.Evaluate(0.5, now)
	if !got.Fallback {
		t.Fatal("Fallback = false, want true")
	}
	if got.WordIndex != -1 || got.SentenceIndex != -1 {
		t.Errorf("fallback snapshot = %+v, want no active word or sentence", got)
	}
}

func TestSelectImageOverride(t *testing.T) {
	start := time.Now()
	e := NewEngine(testSection(), 5*time.Second)

	if got := e.SelectImage(1, start); got != 1 {
		t.Fatalf("SelectImage(1) = %d, want 1", got)
	}

	// Inside the window the manual choice wins over the automatic one.
	snap := e.Evaluate(0.1, start.Add(2*time.Second))
	if snap.ImageIndex != 1 || !snap.OverrideActive {
		t.Errorf("snapshot inside window = %+v, want image 1 with override active", snap)
	}

	// After the window automatic selection resumes immediately.
	snap = e.Evaluate(0.1, start.Add(6*time.Second))
	if snap.ImageIndex != 0 || snap.OverrideActive {
		t.Errorf("snapshot after window = %+v, want image 0 without override", snap)
	}
}

func TestSelectImageRestartsWindow(t *testing.T) {
	start := time.Now()
	e := NewEngine(testSection(), 5*time.Second)

	e.SelectImage(1, start)
	e.SelectImage(0, start.Add(4*time.Second))

	// 8s after the first change but only 4s after the second.
	snap := e.Evaluate(1.0, start.Add(8*time.Second))
	if snap.ImageIndex != 0 || !snap.OverrideActive {
		t.Errorf("snapshot after restart = %+v, want image 0 with override active", snap)
	}

	if want := start.Add(9 * time.Second); !e.OverrideExpiry().Equal(want) {
		t.Errorf("OverrideExpiry() = %v, want %v", e.OverrideExpiry(), want)
	}
}

func TestSelectImageClampsIndex(t *testing.T) {
	now := time.Now()
	e := NewEngine(testSection(), 0)

	if got := e.SelectImage(99, now); got != 1 {
		t.Errorf("SelectImage(99) = %d, want 1", got)
	}
	if got := e.SelectImage(-3, now); got != 0 {
		t.Errorf("SelectImage(-3) = %d, want 0", got)
	}
}

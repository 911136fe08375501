package playback

import (
	"testing"

	"github.com/arkanasution/lentera-be/internal/lesson"
)

func testAlignment() []lesson.WordAlignment {
	return []lesson.WordAlignment{
		{Text: "The", Start: 0, End: 0.3},
		{Text: "cell", Start: 0.3, End: 0.9},
		{Text: "grows,", Start: 0.9, End: 1.5},
		{Text: "the", Start: 1.5, End: 1.8},
		{Text: "cell", Start: 1.8, End: 2.4},
		{Text: "divides.", Start: 2.4, End: 3.0},
	}
}

func TestResolveCueTimingsExactMatch(t *testing.T) {
	got := ResolveCueTimings(testAlignment(), []string{"the cell"})
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("ResolveCueTimings = %v, want [0]", got)
	}
}

func TestResolveCueTimingsIgnoresCaseAndPunctuation(t *testing.T) {
	got := ResolveCueTimings(testAlignment(), []string{"CELL, grows!"})
	if len(got) != 1 || got[0] != 0.3 {
		t.Errorf("ResolveCueTimings = %v, want [0.3]", got)
	}
}

func TestResolveCueTimingsFirstOccurrenceWins(t *testing.T) {
	// "the cell" appears twice; the first match is used.
	got := ResolveCueTimings(testAlignment(), []string{"cell divides"})
	if got[0] != 1.8 {
		t.Errorf("timing for second phrase = %v, want 1.8", got[0])
	}
	got = ResolveCueTimings(testAlignment(), []string{"the cell"})
	if got[0] != 0 {
		t.Errorf("timing for repeated phrase = %v, want first occurrence 0", got[0])
	}
}

func TestResolveCueTimingsProportionalFallback(t *testing.T) {
	got := ResolveCueTimings(testAlignment(), []string{"tidak ada", "juga hilang", "the cell"})
	// Duration 3.0 split over 3 cues: unmatched cues land on their slot.
	if got[0] != 0 {
		t.Errorf("fallback slot 0 = %v, want 0", got[0])
	}
	if got[1] != 1.0 {
		t.Errorf("fallback slot 1 = %v, want 1", got[1])
	}
	if got[2] != 0 {
		t.Errorf("matched cue = %v, want 0", got[2])
	}
}

func TestResolveCueTimingsEmptyAlignment(t *testing.T) {
	got := ResolveCueTimings(nil, []string{"apa saja", "dua"})
	for i, v := range got {
		if v != 0 {
			t.Errorf("timing[%d] = %v, want 0 without alignment", i, v)
		}
	}
}

func TestResolveCueTimingsNoCues(t *testing.T) {
	if got := ResolveCueTimings(testAlignment(), nil); len(got) != 0 {
		t.Errorf("ResolveCueTimings with no cues = %v, want empty", got)
	}
}

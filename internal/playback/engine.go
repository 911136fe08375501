package playback

import (
	"strings"
	"time"

	"github.com/arkanasution/lentera-be/internal/lesson"
)

// DefaultOverrideWindow is how long automatic image switching stays
// suppressed after a manual image change.
const DefaultOverrideWindow = 5 * time.Second

// Snapshot is the engine's answer for one point in playback time.
// WordIndex and SentenceIndex are -1 when nothing is active yet.
type Snapshot struct {
	WordIndex      int  `json:"word_index"`
	SentenceIndex  int  `json:"sentence_index"`
	ImageIndex     int  `json:"image_index"`
	Fallback       bool `json:"fallback"`
	OverrideActive bool `json:"override_active"`
}

// Engine derives the active word, sentence and image for a section from the
// current playback time. Selection is a pure function of currentTime except
// for two pieces of state: the previously active word (kept through alignment
// gaps so highlighting does not flicker) and the manual override timer.
// Seeks need no special casing for the same reason.
type Engine struct {
	alignment    []lesson.WordAlignment
	wordOffsets  []int
	sentenceEnds []int
	imageTimings []float64
	imageCount   int
	window       time.Duration

	lastWordIndex  int
	displayedImage int
	overrideActive bool
	overrideExpiry time.Time
}

// NewEngine builds an engine for one section. An empty alignment puts the
// engine in fallback mode: the full transcript is shown statically with no
// word highlighting and no automatic image switching.
func NewEngine(sec *lesson.Section, window time.Duration) *Engine {
	if window <= 0 {
		window = DefaultOverrideWindow
	}
	e := &Engine{
		alignment:     sec.Alignment,
		imageTimings:  sec.ImageTimings,
		imageCount:    len(sec.ImageURLs),
		window:        window,
		lastWordIndex: -1,
	}
	e.wordOffsets = wordOffsets(sec.Alignment)
	e.sentenceEnds = sentenceEnds(sec.Transcript)
	return e
}

// Evaluate computes the snapshot for currentTime. now drives the override
// timer; callers pass time.Now() outside tests.
func (e *Engine) Evaluate(currentTime float64, now time.Time) Snapshot {
	if e.overrideActive && !now.Before(e.overrideExpiry) {
		// Window elapsed: automatic selection resumes from this instant's
		// computation, not from where it left off.
		e.overrideActive = false
	}

	if len(e.alignment) == 0 {
		return Snapshot{
			WordIndex:      -1,
			SentenceIndex:  -1,
			ImageIndex:     e.displayedImage,
			Fallback:       true,
			OverrideActive: e.overrideActive,
		}
	}

	word := e.lastWordIndex
	if currentTime < e.alignment[0].Start {
		word = -1
	} else {
		for i := range e.alignment {
			if currentTime >= e.alignment[i].Start && currentTime < e.alignment[i].End {
				word = i
				break
			}
		}
		// No interval claimed currentTime: keep the previous word.
	}
	e.lastWordIndex = word

	sentence := -1
	if word >= 0 {
		sentence = e.sentenceFor(word)
	}

	image := e.displayedImage
	if !e.overrideActive {
		image = e.autoImage(currentTime)
		e.displayedImage = image
	}

	return Snapshot{
		WordIndex:      word,
		SentenceIndex:  sentence,
		ImageIndex:     image,
		OverrideActive: e.overrideActive,
	}
}

// SelectImage records a user-initiated image change and suppresses automatic
// selection for the override window. A second change before expiry restarts
// the timer (last write wins). Returns the clamped index.
func (e *Engine) SelectImage(index int, now time.Time) int {
	if e.imageCount > 0 {
		if index < 0 {
			index = 0
		}
		if index >= e.imageCount {
			index = e.imageCount - 1
		}
	} else {
		index = 0
	}
	e.displayedImage = index
	e.overrideActive = true
	e.overrideExpiry = now.Add(e.window)
	return index
}

// OverrideExpiry reports when automatic selection resumes; the zero time when
// no override is active.
func (e *Engine) OverrideExpiry() time.Time {
	if !e.overrideActive {
		return time.Time{}
	}
	return e.overrideExpiry
}

// autoImage returns the greatest index whose timing is at or before
// currentTime (0 when none), clamped to the section's image range. The
// greatest-index rule keeps advancement monotonic and glitch-free even when
// cues fired early or late.
func (e *Engine) autoImage(currentTime float64) int {
	idx := 0
	for i, t := range e.imageTimings {
		if t <= currentTime {
			idx = i
		}
	}
	if e.imageCount == 0 {
		return 0
	}
	if idx >= e.imageCount {
		idx = e.imageCount - 1
	}
	return idx
}

// sentenceFor returns the first sentence whose cumulative character span
// reaches the active word's estimated character offset.
func (e *Engine) sentenceFor(word int) int {
	if len(e.sentenceEnds) == 0 {
		return -1
	}
	off := e.wordOffsets[word]
	for i, end := range e.sentenceEnds {
		if end >= off {
			return i
		}
	}
	return len(e.sentenceEnds) - 1
}

// wordOffsets estimates each aligned word's character position in the
// transcript assuming single-space-separated tokens. The estimate can drift
// on transcripts with irregular whitespace; the sentence rule tolerates it.
func wordOffsets(alignment []lesson.WordAlignment) []int {
	offsets := make([]int, len(alignment))
	pos := 0
	for i, w := range alignment {
		offsets[i] = pos
		pos += len(w.Text) + 1
	}
	return offsets
}

// sentenceEnds partitions the transcript at terminal punctuation and returns
// the cumulative character offset at the end of each sentence.
func sentenceEnds(transcript string) []int {
	var ends []int
	runeLen := 0
	lastEnd := -1
	for i, r := range transcript {
		runeLen = i + len(string(r))
		if r == '.' || r == '!' || r == '?' {
			ends = append(ends, runeLen)
			lastEnd = runeLen
		}
	}
	if strings.TrimSpace(transcript[min(len(transcript), lastEnd+1):]) != "" {
		// Trailing text without terminal punctuation counts as a sentence.
		ends = append(ends, runeLen)
	}
	return ends
}

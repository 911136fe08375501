package playback

import (
	"strings"
	"unicode"

	"github.com/arkanasution/lentera-be/internal/lesson"
)

// ResolveCueTimings maps each image cue (a short phrase expected to occur in
// the transcript) to the start time of its first token-sequence match in the
// alignment. A cue with no verbatim match falls back to a proportional slot,
// (duration / number of cues) * index, so every image still receives a
// monotonically increasing default even on total match failure.
func ResolveCueTimings(alignment []lesson.WordAlignment, cues []string) []float64 {
	timings := make([]float64, len(cues))
	if len(cues) == 0 {
		return timings
	}

	var duration float64
	if len(alignment) > 0 {
		duration = alignment[len(alignment)-1].End
	}

	words := make([]string, len(alignment))
	for i, w := range alignment {
		words[i] = normalizeToken(w.Text)
	}

	for i, cue := range cues {
		if start, ok := findCueStart(alignment, words, cue); ok {
			timings[i] = start
			continue
		}
		timings[i] = duration / float64(len(cues)) * float64(i)
	}

	return timings
}

// findCueStart slides a window of the cue's length across the aligned words
// looking for an exact sequential token match. Repeated phrases resolve to
// the first occurrence only.
func findCueStart(alignment []lesson.WordAlignment, words []string, cue string) (float64, bool) {
	tokens := tokenize(cue)
	if len(tokens) == 0 || len(tokens) > len(words) {
		return 0, false
	}

	for i := 0; i+len(tokens) <= len(words); i++ {
		match := true
		for j, tok := range tokens {
			if words[i+j] != tok {
				match = false
				break
			}
		}
		if match {
			return alignment[i].Start, true
		}
	}

	return 0, false
}

func tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := normalizeToken(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// normalizeToken lowercases and strips everything that is not a letter or
// digit, so "cell," matches "cell" and "It's" matches "its".
func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package lesson

// WordAlignment is one word of synthesized speech with its playback interval.
// Intervals are ordered by Start and do not overlap; Start < End.
type WordAlignment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Section is one narrated, illustrated unit of a lesson. Immutable once
// generated.
type Section struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Transcript    string          `json:"transcript"`
	ImageURLs     []string        `json:"image_urls"`
	ImageCues     []string        `json:"image_cues"`
	EmphasisWords []string        `json:"emphasis_words"`
	AudioBase64   string          `json:"audio_base64,omitempty"`
	Alignment     []WordAlignment `json:"alignment"`
	ImageTimings  []float64       `json:"image_timings"`
}

type Lesson struct {
	ID       string    `json:"id"`
	Topic    string    `json:"topic"`
	Sections []Section `json:"sections"`
}

// Duration returns the end time of the last aligned word, 0 when the section
// has no alignment (synthesis failed).
func (s *Section) Duration() float64 {
	if len(s.Alignment) == 0 {
		return 0
	}
	return s.Alignment[len(s.Alignment)-1].End
}

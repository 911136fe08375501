package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/arkanasution/lentera-be/internal/cache"
	"github.com/arkanasution/lentera-be/internal/lesson"
	"github.com/arkanasution/lentera-be/internal/pkg/imagesearch"
	"github.com/arkanasution/lentera-be/internal/pkg/llm"
	"github.com/arkanasution/lentera-be/internal/pkg/tts"
	"github.com/arkanasution/lentera-be/internal/playback"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type LessonUsecase interface {
	Generate(ctx context.Context, topic string) (*lesson.Lesson, error)
	Get(ctx context.Context, lessonID string) (*lesson.Lesson, error)
}

type LessonConfig struct {
	Gemini *llm.GeminiClient
	TTS    *tts.Client
	Images *imagesearch.Client
	Store  *lesson.Store
	Cache  cache.Store
	Log    *logrus.Logger
	Config *viper.Viper
}

type lessonUsecase struct {
	cfg LessonConfig
}

func NewLessonUsecase(cfg LessonConfig) LessonUsecase {
	return &lessonUsecase{cfg: cfg}
}

type lessonSectionJSON struct {
	Title         string   `json:"title"`
	Transcript    string   `json:"transcript"`
	ImageQueries  []string `json:"image_queries"`
	ImageCues     []string `json:"image_cues"`
	EmphasisWords []string `json:"emphasis_words"`
}

type lessonJSON struct {
	Sections []lessonSectionJSON `json:"sections"`
}

func (u *lessonUsecase) Generate(ctx context.Context, topic string) (*lesson.Lesson, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, u.generationTimeout())
	defer cancel()

	raw, err := u.sectionsJSON(ctx, topic)
	if err != nil {
		return nil, err
	}

	var parsed lessonJSON
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("AI output is not valid json: %w", err)
	}

	defs := make([]lessonSectionJSON, 0, len(parsed.Sections))
	for _, s := range parsed.Sections {
		if strings.TrimSpace(s.Transcript) == "" {
			continue
		}
		defs = append(defs, s)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("AI returned no usable sections")
	}

	// Enrich sections in parallel: synthesis and image search dominate the
	// wall time of a lesson request.
	type result struct {
		section lesson.Section
		index   int
	}
	resultChan := make(chan result, len(defs))

	for i, def := range defs {
		go func(index int, def lessonSectionJSON) {
			resultChan <- result{section: u.buildSection(ctx, def), index: index}
		}(i, def)
	}

	sections := make([]lesson.Section, len(defs))
	for range defs {
		r := <-resultChan
		sections[r.index] = r.section
	}

	l := &lesson.Lesson{
		ID:       uuid.NewString(),
		Topic:    topic,
		Sections: sections,
	}
	u.cfg.Store.Put(l)

	return l, nil
}

func (u *lessonUsecase) Get(_ context.Context, lessonID string) (*lesson.Lesson, error) {
	l, ok := u.cfg.Store.Get(lessonID)
	if !ok {
		return nil, fmt.Errorf("lesson not found")
	}
	return l, nil
}

// sectionsJSON returns the generator's raw payload, cache-first keyed by the
// normalized topic.
func (u *lessonUsecase) sectionsJSON(ctx context.Context, topic string) (string, error) {
	key := cache.Key("lesson", "", strings.ToLower(topic))

	if u.cfg.Cache != nil {
		if payload, ok, err := u.cfg.Cache.Get(ctx, key); err == nil && ok {
			return string(payload), nil
		}
	}

	prompt := strings.ReplaceAll(lessonPromptTemplate, "{{topic}}", topic)
	raw, err := u.cfg.Gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate lesson sections: %w", err)
	}

	if u.cfg.Cache != nil {
		if err := u.cfg.Cache.Set(ctx, key, []byte(raw)); err != nil {
			u.cfg.Log.Warnf("failed to cache lesson payload: %v", err)
		}
	}

	return raw, nil
}

// buildSection runs synthesis, image resolution and cue timing for one
// section. Failures degrade: a section without alignment still plays via the
// engine's static fallback, a failed image search yields the fallback URL.
func (u *lessonUsecase) buildSection(ctx context.Context, def lessonSectionJSON) lesson.Section {
	sec := lesson.Section{
		ID:            uuid.NewString(),
		Title:         def.Title,
		Transcript:    strings.TrimSpace(def.Transcript),
		EmphasisWords: def.EmphasisWords,
	}

	if u.cfg.TTS != nil {
		synth, err := u.cfg.TTS.Synthesize(ctx, sec.Transcript)
		if err != nil {
			u.cfg.Log.Warnf("speech synthesis failed for section %s: %v", sec.ID, err)
		} else {
			sec.AudioBase64 = synth.AudioBase64
			sec.Alignment = make([]lesson.WordAlignment, len(synth.Words))
			for i, w := range synth.Words {
				sec.Alignment[i] = lesson.WordAlignment{Text: w.Text, Start: w.Start, End: w.End}
			}
		}
	}

	queries := def.ImageQueries
	cues := def.ImageCues
	if len(cues) > len(queries) {
		cues = cues[:len(queries)]
	}
	for len(cues) < len(queries) {
		// Fewer cues than images is a data-quality issue, not an error: pad
		// so every image still gets a proportional fallback slot.
		cues = append(cues, "")
	}

	sec.ImageURLs = make([]string, len(queries))
	for i, q := range queries {
		sec.ImageURLs[i] = u.cfg.Images.Resolve(ctx, q)
	}
	sec.ImageCues = cues
	sec.ImageTimings = playback.ResolveCueTimings(sec.Alignment, cues)

	return sec
}

func (u *lessonUsecase) generationTimeout() time.Duration {
	seconds := u.cfg.Config.GetInt("llm.timeout_seconds")
	if seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

// stripCodeFences removes the markdown fences some models wrap around JSON
// despite instructions.
func stripCodeFences(s string) string {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

const lessonPromptTemplate = `You are creating a narrated, illustrated lesson for curious kids (ages 8-12).

Topic: {{topic}}

Create 3 to 5 lesson sections. Each section has:
- "title": a short, exciting section title
- "transcript": 3-6 spoken sentences, simple words, warm and vivid. This text
  will be narrated aloud, so no markdown, no lists, no parentheses.
- "image_queries": 2-3 short image-search phrases, one per visual moment of
  the transcript, concrete and photographable (e.g. "red blood cells
  microscope")
- "image_cues": for each image query, copy a short snippet (3-6 words) taken
  VERBATIM from the transcript marking when that image should appear
- "emphasis_words": 2-4 single words from the transcript worth highlighting

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"sections":[{"title":"...","transcript":"...","image_queries":["..."],"image_cues":["..."],"emphasis_words":["..."]}]}`

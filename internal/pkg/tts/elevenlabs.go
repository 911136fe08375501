package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 60 * time.Second

// WordTiming is one synthesized word with its playback interval in seconds.
type WordTiming struct {
	Text  string
	Start float64
	End   float64
}

// Result carries the synthesized audio plus its forced alignment.
type Result struct {
	AudioBase64 string
	Words       []WordTiming
}

// Client synthesizes speech through an ElevenLabs-style with-timestamps
// endpoint that returns base64 audio plus character-level timings.
type Client struct {
	apiKey     string
	voiceID    string
	baseURL    string
	modelID    string
	httpClient *http.Client
}

func NewClient(apiKey, voiceID, baseURL, modelID string) *Client {
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io"
	}
	if voiceID == "" {
		voiceID = "21m00Tcm4TlvDq8ikWAM"
	}
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}
	return &Client{
		apiKey:     apiKey,
		voiceID:    voiceID,
		baseURL:    strings.TrimRight(baseURL, "/"),
		modelID:    modelID,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

type synthesizeResponse struct {
	AudioBase64 string `json:"audio_base64"`
	Alignment   struct {
		Characters []string  `json:"characters"`
		StartTimes []float64 `json:"character_start_times_seconds"`
		EndTimes   []float64 `json:"character_end_times_seconds"`
	} `json:"alignment"`
}

// Synthesize converts the transcript to speech and returns word-level
// timings. Callers treat any error as "no alignment": the playback engine
// degrades to its static fallback rather than failing the lesson.
func (c *Client) Synthesize(ctx context.Context, text string) (*Result, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("tts api key not configured")
	}

	body, err := json.Marshal(synthesizeRequest{Text: text, ModelID: c.modelID})
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s/with-timestamps", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts unexpected status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}

	var parsed synthesizeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse tts response: %w", err)
	}
	if parsed.AudioBase64 == "" {
		return nil, fmt.Errorf("tts returned no audio")
	}

	words := WordsFromCharacters(parsed.Alignment.Characters, parsed.Alignment.StartTimes, parsed.Alignment.EndTimes)
	return &Result{AudioBase64: parsed.AudioBase64, Words: words}, nil
}

// WordsFromCharacters folds character-level timings into word-level ones:
// whitespace closes the current word, its start is the first character's
// start and its end the last character's end.
func WordsFromCharacters(chars []string, starts, ends []float64) []WordTiming {
	n := len(chars)
	if len(starts) < n {
		n = len(starts)
	}
	if len(ends) < n {
		n = len(ends)
	}

	var words []WordTiming
	var current strings.Builder
	var wordStart, wordEnd float64

	flush := func() {
		if current.Len() == 0 {
			return
		}
		words = append(words, WordTiming{Text: current.String(), Start: wordStart, End: wordEnd})
		current.Reset()
	}

	for i := 0; i < n; i++ {
		ch := chars[i]
		if strings.TrimSpace(ch) == "" {
			flush()
			continue
		}
		if current.Len() == 0 {
			wordStart = starts[i]
		}
		wordEnd = ends[i]
		current.WriteString(ch)
	}
	flush()

	return words
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/arkanasution/lentera-be/internal/delivery/http/entity"
	"github.com/arkanasution/lentera-be/internal/lesson"
	"github.com/arkanasution/lentera-be/internal/pkg/llm"
	"github.com/arkanasution/lentera-be/internal/teaching"
	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type TeachingUsecase interface {
	Start(ctx context.Context, lessonID string, sectionIndex int) (*entity.TeachingSessionResponse, error)
	Explain(ctx context.Context, sessionID string, explanation string) (*entity.TeachingExplainResponse, error)
	Transcript(ctx context.Context, sessionID string) (*entity.TeachingSessionResponse, error)
}

type TeachingConfig struct {
	Chat   *llm.ChatClient
	Store  *lesson.Store
	Log    *logrus.Logger
	Config *viper.Viper
}

type teachingSession struct {
	session    *teaching.Session
	transcript string
	title      string
}

type teachingUsecase struct {
	cfg      TeachingConfig
	mu       sync.Mutex
	sessions map[string]*teachingSession
}

func NewTeachingUsecase(cfg TeachingConfig) TeachingUsecase {
	return &teachingUsecase{
		cfg:      cfg,
		sessions: make(map[string]*teachingSession),
	}
}

const (
	fallbackFirstQuestion = "Hmm, aku penasaran! Bisa jelaskan pelajaran tadi dengan kata-katamu sendiri?"
	fallbackKidReply      = "Wah, aku masih mikir... Bisa ceritakan lagi dengan cara lain?"
)

func (u *teachingUsecase) Start(ctx context.Context, lessonID string, sectionIndex int) (*entity.TeachingSessionResponse, error) {
	sec := u.cfg.Store.Section(lessonID, sectionIndex)
	if sec == nil {
		return nil, fmt.Errorf("lesson section not found")
	}

	session := teaching.NewSession(
		u.cfg.Config.GetInt("teaching.max_understanding"),
		u.cfg.Config.GetInt("teaching.retry_limit"),
	)

	// A dead kid persona should not block the challenge: fall back to the
	// canned opener on any LLM failure.
	question := fallbackFirstQuestion
	if text, err := u.firstQuestion(ctx, sec); err != nil {
		u.cfg.Log.Warnf("failed to generate first kid question: %v", err)
	} else {
		question = text
	}
	session.BeginQuestion(question)

	sess := &teachingSession{
		session:    session,
		transcript: sec.Transcript,
		title:      sec.Title,
	}

	id := uuid.NewString()
	u.mu.Lock()
	u.sessions[id] = sess
	u.mu.Unlock()

	return sessionView(id, sess), nil
}

func (u *teachingUsecase) Explain(ctx context.Context, sessionID string, explanation string) (*entity.TeachingExplainResponse, error) {
	u.mu.Lock()
	sess, ok := u.sessions[sessionID]
	u.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("teaching session not found")
	}

	u.mu.Lock()
	accepted := sess.session.SubmitExplanation(explanation)
	u.mu.Unlock()
	if !accepted {
		return nil, fmt.Errorf("session is not awaiting an explanation")
	}

	for {
		verdict, err := u.evaluate(ctx, sess, explanation)
		if err == nil {
			u.mu.Lock()
			state := sess.session.ApplyEvaluation(verdict.Delta, verdict.Reaction, verdict.Reply)
			resp := &entity.TeachingExplainResponse{
				State:         string(state),
				Understanding: sess.session.Understanding(),
				Max:           sess.session.MaxUnderstanding(),
				Reaction:      verdict.Reaction,
				KidReply:      verdict.Reply,
			}
			u.mu.Unlock()
			return resp, nil
		}

		u.cfg.Log.Warnf("teaching evaluation failed: %v", err)
		u.mu.Lock()
		gaveUp := sess.session.RecordFailure(fallbackKidReply)
		u.mu.Unlock()
		if gaveUp {
			// Failures are absorbed: the session returns to awaiting an
			// explanation with a canned reply instead of terminating.
			u.mu.Lock()
			resp := &entity.TeachingExplainResponse{
				State:         string(sess.session.State()),
				Understanding: sess.session.Understanding(),
				Max:           sess.session.MaxUnderstanding(),
				Reaction:      teaching.ReactionNeutral,
				KidReply:      fallbackKidReply,
			}
			u.mu.Unlock()
			return resp, nil
		}
	}
}

func (u *teachingUsecase) Transcript(_ context.Context, sessionID string) (*entity.TeachingSessionResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("teaching session not found")
	}
	return sessionView(sessionID, sess), nil
}

func (u *teachingUsecase) firstQuestion(ctx context.Context, sec *lesson.Section) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: kidPersonaPrompt(sec.Title, sec.Transcript),
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: "Mulai tantangannya: ajukan satu pertanyaan pembuka tentang pelajaran ini.",
		},
	}
	return u.cfg.Chat.GenerateChatResponse(ctx, messages)
}

type teachingVerdict struct {
	Delta    int
	Reaction string
	Reply    string
}

func (u *teachingUsecase) evaluate(ctx context.Context, sess *teachingSession, explanation string) (*teachingVerdict, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: evaluatorPrompt(sess.title, sess.transcript),
		},
	}

	u.mu.Lock()
	turns := sess.session.Turns()
	u.mu.Unlock()
	for _, t := range turns {
		role := openai.ChatMessageRoleAssistant
		if t.Speaker == teaching.SpeakerTeacher {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: t.Text})
	}

	raw, err := u.cfg.Chat.GenerateJSON(ctx, messages)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		UnderstandingDelta int    `json:"understanding_delta"`
		Reaction           string `json:"reaction"`
		Reply              string `json:"reply"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("evaluator output is not valid json: %w", err)
	}
	if parsed.Reply == "" {
		return nil, fmt.Errorf("evaluator returned no reply")
	}

	return &teachingVerdict{
		Delta:    parsed.UnderstandingDelta,
		Reaction: parsed.Reaction,
		Reply:    parsed.Reply,
	}, nil
}

func sessionView(id string, sess *teachingSession) *entity.TeachingSessionResponse {
	return &entity.TeachingSessionResponse{
		SessionID:     id,
		State:         string(sess.session.State()),
		Understanding: sess.session.Understanding(),
		Max:           sess.session.MaxUnderstanding(),
		Turns:         sess.session.Turns(),
	}
}

func kidPersonaPrompt(title, transcript string) string {
	return fmt.Sprintf(`Kamu adalah anak kecil berumur 7 tahun yang sangat penasaran. Kakakmu baru saja belajar tentang "%s" dan sekarang giliran dia menjelaskannya kepadamu.

Materi pelajaran (jangan tunjukkan kamu tahu ini):
%s

Ajukan satu pertanyaan pembuka yang polos dan penasaran dalam bahasa Indonesia sederhana. Maksimal dua kalimat.`, title, transcript)
}

func evaluatorPrompt(title, transcript string) string {
	return fmt.Sprintf(`Kamu berperan ganda: anak kecil penasaran yang diajari tentang "%s", sekaligus evaluator pemahaman pengajarnya.

Materi acuan:
%s

Nilai penjelasan terakhir pengajar terhadap materi acuan, lalu balas sebagai anak kecil.

Return JSON dengan tiga field:
{"understanding_delta":0,"reaction":"curious","reply":"..."}

- understanding_delta: 0-10, seberapa banyak penjelasan terakhir menambah pemahaman yang benar
- reaction: salah satu dari excited, happy, curious, confused, neutral
- reply: balasan anak kecil dalam bahasa Indonesia sederhana, boleh bertanya lanjutan, maksimal tiga kalimat

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.`, title, transcript)
}

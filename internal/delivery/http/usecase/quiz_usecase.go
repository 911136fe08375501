package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/arkanasution/lentera-be/internal/cache"
	"github.com/arkanasution/lentera-be/internal/delivery/http/entity"
	"github.com/arkanasution/lentera-be/internal/lesson"
	"github.com/arkanasution/lentera-be/internal/pkg/llm"
	"github.com/arkanasution/lentera-be/internal/quiz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type QuizUsecase interface {
	Generate(ctx context.Context, lessonID string, sectionIndex int) (*entity.QuizSessionResponse, error)
	Answer(ctx context.Context, sessionID string, option int) (*entity.QuizAnswerResponse, error)
	Next(ctx context.Context, sessionID string) (*entity.QuizProgressResponse, error)
	Retry(ctx context.Context, sessionID string) (*entity.QuizProgressResponse, error)
}

type QuizConfig struct {
	Gemini *llm.GeminiClient
	Store  *lesson.Store
	Cache  cache.Store
	Log    *logrus.Logger
	Config *viper.Viper
}

type quizUsecase struct {
	cfg      QuizConfig
	mu       sync.Mutex
	sessions map[string]*quiz.Session
}

func NewQuizUsecase(cfg QuizConfig) QuizUsecase {
	return &quizUsecase{
		cfg:      cfg,
		sessions: make(map[string]*quiz.Session),
	}
}

type quizBatchJSON struct {
	Questions []quiz.Question `json:"questions"`
}

func (u *quizUsecase) Generate(ctx context.Context, lessonID string, sectionIndex int) (*entity.QuizSessionResponse, error) {
	sec := u.cfg.Store.Section(lessonID, sectionIndex)
	if sec == nil {
		return nil, fmt.Errorf("lesson section not found")
	}

	raw, err := u.questionsJSON(ctx, sec)
	if err != nil {
		return nil, err
	}

	var parsed quizBatchJSON
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("AI output is not valid json: %w", err)
	}

	questions := quiz.ValidQuestions(parsed.Questions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("AI returned no valid questions")
	}

	session := quiz.NewSession(questions)
	id := uuid.NewString()

	u.mu.Lock()
	u.sessions[id] = session
	u.mu.Unlock()

	q, index, _ := session.Current()
	return &entity.QuizSessionResponse{
		SessionID: id,
		State:     string(session.State()),
		Index:     index,
		Total:     session.Total(),
		Score:     session.Score(),
		Question:  questionView(q),
	}, nil
}

func (u *quizUsecase) Answer(_ context.Context, sessionID string, option int) (*entity.QuizAnswerResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("quiz session not found")
	}

	correct, accepted := session.Answer(option)

	resp := &entity.QuizAnswerResponse{
		Accepted: accepted,
		Correct:  correct,
		Score:    session.Score(),
		State:    string(session.State()),
	}
	if q, _, ok := session.Current(); ok {
		resp.CorrectIndex = q.CorrectIndex
		resp.Explanation = q.Explanation
	}
	return resp, nil
}

func (u *quizUsecase) Next(_ context.Context, sessionID string) (*entity.QuizProgressResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("quiz session not found")
	}

	session.Next()
	return progressView(session), nil
}

func (u *quizUsecase) Retry(_ context.Context, sessionID string) (*entity.QuizProgressResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("quiz session not found")
	}

	session.Retry()
	return progressView(session), nil
}

func (u *quizUsecase) questionsJSON(ctx context.Context, sec *lesson.Section) (string, error) {
	key := cache.Key("quiz", sec.ID, sec.Transcript)

	if u.cfg.Cache != nil {
		if payload, ok, err := u.cfg.Cache.Get(ctx, key); err == nil && ok {
			return string(payload), nil
		}
	}

	prompt := strings.ReplaceAll(quizPromptTemplate, "{{title}}", sec.Title)
	prompt = strings.ReplaceAll(prompt, "{{transcript}}", sec.Transcript)

	raw, err := u.cfg.Gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate quiz: %w", err)
	}

	if u.cfg.Cache != nil {
		if err := u.cfg.Cache.Set(ctx, key, []byte(raw)); err != nil {
			u.cfg.Log.Warnf("failed to cache quiz payload: %v", err)
		}
	}

	return raw, nil
}

func questionView(q quiz.Question) *entity.QuizQuestionView {
	return &entity.QuizQuestionView{Question: q.Question, Options: q.Options}
}

func progressView(session *quiz.Session) *entity.QuizProgressResponse {
	resp := &entity.QuizProgressResponse{
		State:      string(session.State()),
		Total:      session.Total(),
		Score:      session.Score(),
		Percentage: session.Percentage(),
	}
	if q, index, ok := session.Current(); ok {
		resp.Index = index
		if session.State() == quiz.StateQuestion {
			resp.Question = questionView(q)
		}
	}
	return resp
}

const quizPromptTemplate = `You are writing a comprehension quiz for kids (ages 8-12) about a lesson section.

Section title: {{title}}
Section transcript:
{{transcript}}

Create 3 to 5 multiple-choice questions that check understanding of the
transcript. Each question must have EXACTLY 4 options, exactly one of which
is correct, and a one-sentence kid-friendly explanation of the right answer.

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"questions":[{"question":"...","options":["...","...","...","..."],"correct_index":0,"explanation":"..."}]}`

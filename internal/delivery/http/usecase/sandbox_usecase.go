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
	"github.com/arkanasution/lentera-be/internal/sandbox"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SandboxUsecase interface {
	Generate(ctx context.Context, lessonID string, sectionIndex int, mode string) (*entity.SandboxStateResponse, error)
	Place(ctx context.Context, sessionID, pieceID string) (*entity.SandboxStateResponse, error)
	Remove(ctx context.Context, sessionID, pieceID string) (*entity.SandboxStateResponse, error)
	Combine(ctx context.Context, sessionID string) (*entity.SandboxStateResponse, error)
	Deconstruct(ctx context.Context, sessionID, pieceID string) (*entity.SandboxStateResponse, error)
	Reset(ctx context.Context, sessionID string) (*entity.SandboxStateResponse, error)
	Advance(ctx context.Context, sessionID string) (*entity.SandboxStateResponse, error)
}

type SandboxConfig struct {
	Gemini *llm.GeminiClient
	Store  *lesson.Store
	Cache  cache.Store
	Log    *logrus.Logger
	Config *viper.Viper
}

type sandboxSession struct {
	mode      sandbox.Mode
	engine    *sandbox.Engine
	breakdown *sandbox.Breakdown
	starting  []sandbox.Piece
	rules     []sandbox.Combination
}

type sandboxUsecase struct {
	cfg      SandboxConfig
	mu       sync.Mutex
	sessions map[string]*sandboxSession
}

func NewSandboxUsecase(cfg SandboxConfig) SandboxUsecase {
	return &sandboxUsecase{
		cfg:      cfg,
		sessions: make(map[string]*sandboxSession),
	}
}

type buildSandboxJSON struct {
	Pieces       []sandbox.Piece       `json:"pieces"`
	Combinations []sandbox.Combination `json:"combinations"`
}

type breakdownSandboxJSON struct {
	Target sandbox.Piece   `json:"target"`
	Levels []sandbox.Level `json:"levels"`
}

func (u *sandboxUsecase) Generate(ctx context.Context, lessonID string, sectionIndex int, mode string) (*entity.SandboxStateResponse, error) {
	if mode == "" {
		mode = string(sandbox.ModeBuild)
	}
	if mode != string(sandbox.ModeBuild) && mode != string(sandbox.ModeBreakdown) {
		return nil, fmt.Errorf("invalid sandbox mode: %s", mode)
	}

	sec := u.cfg.Store.Section(lessonID, sectionIndex)
	if sec == nil {
		return nil, fmt.Errorf("lesson section not found")
	}

	raw, err := u.sandboxJSON(ctx, sec, mode)
	if err != nil {
		return nil, err
	}

	sess, err := buildSandboxSession(raw, sandbox.Mode(mode))
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	u.mu.Lock()
	u.sessions[id] = sess
	u.mu.Unlock()

	return stateView(id, sess, nil, nil), nil
}

// buildSandboxSession validates the generator payload: build mode needs at
// least two starting pieces and one combination; breakdown mode needs a
// target piece and at least one level.
func buildSandboxSession(raw string, mode sandbox.Mode) (*sandboxSession, error) {
	clean := stripCodeFences(raw)

	if mode == sandbox.ModeBreakdown {
		var parsed breakdownSandboxJSON
		if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
			return nil, fmt.Errorf("AI output is not valid json: %w", err)
		}
		if parsed.Target.ID == "" || len(parsed.Levels) == 0 {
			return nil, fmt.Errorf("AI returned an incomplete breakdown sandbox")
		}
		return &sandboxSession{
			mode:      mode,
			breakdown: sandbox.NewBreakdown(parsed.Target, parsed.Levels),
		}, nil
	}

	var parsed buildSandboxJSON
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("AI output is not valid json: %w", err)
	}

	rules := make([]sandbox.Combination, 0, len(parsed.Combinations))
	for _, c := range parsed.Combinations {
		if len(c.RequiredPieceIDs) < 2 || c.Result.ID == "" {
			continue
		}
		rules = append(rules, c)
	}
	if len(parsed.Pieces) < 2 || len(rules) == 0 {
		return nil, fmt.Errorf("AI returned an incomplete build sandbox")
	}

	return &sandboxSession{
		mode:     mode,
		engine:   sandbox.NewEngine(parsed.Pieces, rules),
		starting: parsed.Pieces,
		rules:    rules,
	}, nil
}

func (u *sandboxUsecase) Place(_ context.Context, sessionID, pieceID string) (*entity.SandboxStateResponse, error) {
	return u.withBuildSession(sessionID, func(id string, sess *sandboxSession) *entity.SandboxStateResponse {
		sess.engine.Place(pieceID)
		return stateView(id, sess, nil, nil)
	})
}

func (u *sandboxUsecase) Remove(_ context.Context, sessionID, pieceID string) (*entity.SandboxStateResponse, error) {
	return u.withBuildSession(sessionID, func(id string, sess *sandboxSession) *entity.SandboxStateResponse {
		sess.engine.Remove(pieceID)
		return stateView(id, sess, nil, nil)
	})
}

func (u *sandboxUsecase) Combine(_ context.Context, sessionID string) (*entity.SandboxStateResponse, error) {
	return u.withBuildSession(sessionID, func(id string, sess *sandboxSession) *entity.SandboxStateResponse {
		result := sess.engine.Combine()
		return stateView(id, sess, &result, nil)
	})
}

func (u *sandboxUsecase) Deconstruct(_ context.Context, sessionID, pieceID string) (*entity.SandboxStateResponse, error) {
	return u.withBuildSession(sessionID, func(id string, sess *sandboxSession) *entity.SandboxStateResponse {
		restored, _ := sess.engine.Deconstruct(pieceID)
		return stateView(id, sess, nil, restored)
	})
}

func (u *sandboxUsecase) Reset(_ context.Context, sessionID string) (*entity.SandboxStateResponse, error) {
	return u.withBuildSession(sessionID, func(id string, sess *sandboxSession) *entity.SandboxStateResponse {
		sess.engine = sandbox.NewEngine(sess.starting, sess.rules)
		return stateView(id, sess, nil, nil)
	})
}

func (u *sandboxUsecase) Advance(_ context.Context, sessionID string) (*entity.SandboxStateResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("sandbox session not found")
	}
	if sess.mode != sandbox.ModeBreakdown {
		return nil, fmt.Errorf("advance is only available in breakdown mode")
	}

	sess.breakdown.Advance()
	return stateView(sessionID, sess, nil, nil), nil
}

func (u *sandboxUsecase) withBuildSession(sessionID string, fn func(string, *sandboxSession) *entity.SandboxStateResponse) (*entity.SandboxStateResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("sandbox session not found")
	}
	if sess.mode != sandbox.ModeBuild {
		return nil, fmt.Errorf("operation is only available in build mode")
	}

	return fn(sessionID, sess), nil
}

func (u *sandboxUsecase) sandboxJSON(ctx context.Context, sec *lesson.Section, mode string) (string, error) {
	key := cache.Key("sandbox:"+mode, sec.ID, sec.Transcript)

	if u.cfg.Cache != nil {
		if payload, ok, err := u.cfg.Cache.Get(ctx, key); err == nil && ok {
			return string(payload), nil
		}
	}

	template := buildSandboxPromptTemplate
	if mode == string(sandbox.ModeBreakdown) {
		template = breakdownSandboxPromptTemplate
	}
	prompt := strings.ReplaceAll(template, "{{title}}", sec.Title)
	prompt = strings.ReplaceAll(prompt, "{{transcript}}", sec.Transcript)

	raw, err := u.cfg.Gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate sandbox: %w", err)
	}

	if u.cfg.Cache != nil {
		if err := u.cfg.Cache.Set(ctx, key, []byte(raw)); err != nil {
			u.cfg.Log.Warnf("failed to cache sandbox payload: %v", err)
		}
	}

	return raw, nil
}

func stateView(id string, sess *sandboxSession, last *sandbox.Result, restored []sandbox.Piece) *entity.SandboxStateResponse {
	resp := &entity.SandboxStateResponse{
		SessionID: id,
		Mode:      string(sess.mode),
	}

	if sess.mode == sandbox.ModeBreakdown {
		target := sess.breakdown.Target()
		resp.Target = &target
		resp.Levels = sess.breakdown.Revealed()
		resp.Exhausted = sess.breakdown.Exhausted()
		return resp
	}

	resp.Inventory = sess.engine.Inventory()
	resp.Zone = sess.engine.Zone()
	resp.Created = sess.engine.Created()
	resp.ZoneState = string(sess.engine.State())
	resp.Completed = sess.engine.Completed()
	resp.LastResult = last
	resp.Restored = restored
	return resp
}

const buildSandboxPromptTemplate = `You are designing a playful "combine the pieces" sandbox for kids about a lesson section.

Section title: {{title}}
Section transcript:
{{transcript}}

Create 4 to 6 starting pieces (core concepts from the transcript) and 3 to 5
combinations. Each piece has a short lowercase id, a label, one emoji, a CSS
color and a one-sentence description. Each combination lists 2 or 3 required
piece ids, a result piece (same shape) and a kid-friendly explanation of why
those pieces combine. Result pieces may appear as required pieces of later
combinations.

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"pieces":[{"id":"dendrite","label":"Dendrite","emoji":"🌿","color":"#4ade80","description":"..."}],"combinations":[{"required_piece_ids":["dendrite","soma"],"result":{"id":"receiving","label":"Receiving End","emoji":"📡","color":"#60a5fa","description":"..."},"explanation":"..."}]}`

const breakdownSandboxPromptTemplate = `You are designing a "break it down" exploration for kids about a lesson section.

Section title: {{title}}
Section transcript:
{{transcript}}

Pick ONE central thing from the transcript as the target piece, then create 3
to 4 decomposition levels. Each level reveals the parts one layer deeper:
level 1 splits the target into its main parts, level 2 splits those parts,
and so on. Each level has a title, 2 to 4 pieces (id, label, emoji, color,
description) and a kid-friendly explanation.

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"target":{"id":"cell","label":"Cell","emoji":"🔬","color":"#f472b6","description":"..."},"levels":[{"title":"...","pieces":[{"id":"nucleus","label":"Nucleus","emoji":"🧠","color":"#a78bfa","description":"..."}],"explanation":"..."}]}`

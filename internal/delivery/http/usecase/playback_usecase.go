package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/arkanasution/lentera-be/internal/delivery/http/entity"
	"github.com/arkanasution/lentera-be/internal/lesson"
	"github.com/arkanasution/lentera-be/internal/playback"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type PlaybackUsecase interface {
	Create(lessonID string, sectionIndex int) (*entity.PlaybackSessionResponse, error)
	Tick(sessionID string, currentTime float64) (*entity.TickResponse, error)
	SelectImage(sessionID string, imageIndex int) (*entity.SelectImageResponse, error)
}

type PlaybackConfig struct {
	Store  *lesson.Store
	Log    *logrus.Logger
	Config *viper.Viper
}

type playbackSession struct {
	engine   *playback.Engine
	lessonID string
	section  int
	imageCnt int
	fallback bool
}

type playbackUsecase struct {
	cfg      PlaybackConfig
	mu       sync.Mutex
	sessions map[string]*playbackSession
}

func NewPlaybackUsecase(cfg PlaybackConfig) PlaybackUsecase {
	return &playbackUsecase{
		cfg:      cfg,
		sessions: make(map[string]*playbackSession),
	}
}

func (u *playbackUsecase) Create(lessonID string, sectionIndex int) (*entity.PlaybackSessionResponse, error) {
	sec := u.cfg.Store.Section(lessonID, sectionIndex)
	if sec == nil {
		return nil, fmt.Errorf("lesson section not found")
	}

	window := playback.DefaultOverrideWindow
	if s := u.cfg.Config.GetInt("playback.override_window_seconds"); s > 0 {
		window = time.Duration(s) * time.Second
	}

	sess := &playbackSession{
		engine:   playback.NewEngine(sec, window),
		lessonID: lessonID,
		section:  sectionIndex,
		imageCnt: len(sec.ImageURLs),
		fallback: len(sec.Alignment) == 0,
	}

	id := uuid.NewString()
	u.mu.Lock()
	u.sessions[id] = sess
	u.mu.Unlock()

	return &entity.PlaybackSessionResponse{
		SessionID:  id,
		LessonID:   lessonID,
		Section:    sectionIndex,
		ImageCount: sess.imageCnt,
		Fallback:   sess.fallback,
	}, nil
}

func (u *playbackUsecase) Tick(sessionID string, currentTime float64) (*entity.TickResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("playback session not found")
	}

	snap := sess.engine.Evaluate(currentTime, time.Now())
	return &entity.TickResponse{Snapshot: snap}, nil
}

func (u *playbackUsecase) SelectImage(sessionID string, imageIndex int) (*entity.SelectImageResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("playback session not found")
	}

	now := time.Now()
	idx := sess.engine.SelectImage(imageIndex, now)

	return &entity.SelectImageResponse{
		ImageIndex:    idx,
		OverrideUntil: sess.engine.OverrideExpiry().Format(time.RFC3339),
	}, nil
}

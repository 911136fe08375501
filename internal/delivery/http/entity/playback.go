package entity

import "github.com/arkanasution/lentera-be/internal/playback"

type TickRequest struct {
	CurrentTime *float64 `json:"current_time" validate:"required,min=0"`
}

type SelectImageRequest struct {
	ImageIndex *int `json:"image_index" validate:"required"`
}

type PlaybackSessionResponse struct {
	SessionID  string `json:"session_id"`
	LessonID   string `json:"lesson_id"`
	Section    int    `json:"section_index"`
	ImageCount int    `json:"image_count"`
	Fallback   bool   `json:"fallback"`
}

type TickResponse struct {
	playback.Snapshot
}

type SelectImageResponse struct {
	ImageIndex    int    `json:"image_index"`
	OverrideUntil string `json:"override_until"`
}

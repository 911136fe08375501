package entity

type GenerateLessonRequest struct {
	Topic string `json:"topic" validate:"required,min=2,max=200"`
}

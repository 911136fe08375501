package entity

import "github.com/arkanasution/lentera-be/internal/teaching"

type TeachingExplainRequest struct {
	Explanation string `json:"explanation" validate:"required,min=1,max=2000"`
}

type TeachingSessionResponse struct {
	SessionID     string          `json:"session_id"`
	State         string          `json:"state"`
	Understanding int             `json:"understanding"`
	Max           int             `json:"max_understanding"`
	Turns         []teaching.Turn `json:"turns"`
}

type TeachingExplainResponse struct {
	State         string `json:"state"`
	Understanding int    `json:"understanding"`
	Max           int    `json:"max_understanding"`
	Reaction      string `json:"reaction"`
	KidReply      string `json:"kid_reply"`
}

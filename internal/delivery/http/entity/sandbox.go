package entity

import "github.com/arkanasution/lentera-be/internal/sandbox"

type GenerateSandboxRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=build breakdown"`
}

type SandboxPieceRequest struct {
	PieceID string `json:"piece_id" validate:"required"`
}

// SandboxStateResponse is the full sandbox view after any operation. Build
// and breakdown modes fill different halves.
type SandboxStateResponse struct {
	SessionID string `json:"session_id"`
	Mode      string `json:"mode"`

	Inventory []sandbox.Piece `json:"inventory,omitempty"`
	Zone      []sandbox.Piece `json:"zone,omitempty"`
	Created   []sandbox.Piece `json:"created,omitempty"`
	ZoneState string          `json:"zone_state,omitempty"`
	Completed bool            `json:"completed"`

	Target    *sandbox.Piece  `json:"target,omitempty"`
	Levels    []sandbox.Level `json:"levels,omitempty"`
	Exhausted bool            `json:"exhausted,omitempty"`

	LastResult *sandbox.Result `json:"last_result,omitempty"`
	Restored   []sandbox.Piece `json:"restored,omitempty"`
}

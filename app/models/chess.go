package models

// MoveRequest is what the frontend sends for each half-move. Move may be the
// empty string, which means "the engine moves first" (the player took Black).
type MoveRequest struct {
	FEN  string `json:"fen"`
	Move string `json:"move"`
}

// MoveResponse carries the engine's reply plus commentary. EngineMove is empty
// when the player's move ended the game.
type MoveResponse struct {
	EngineMove string  `json:"engineMove"`
	Evaluation float64 `json:"evaluation"` // pawns, White's perspective
	Commentary string  `json:"commentary"`
}

// TipsRequest carries the true previous evaluation from the client, which
// tracks it across the request sequence.
type TipsRequest struct {
	Move               string  `json:"move"`
	Evaluation         float64 `json:"evaluation"`
	PreviousEvaluation float64 `json:"previousEvaluation"`
}

type TipsResponse struct {
	Tips string `json:"tips"`
}

// BestReply drives one full engine consultation: search, apply the reply on a
// copy, evaluate the resulting position, tear the process down.

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/notnil/chess"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
	"github.com/uchihaitachilz/Ai-chess-bot/app/models"
)

var ErrEngineUnavailable = errors.New("engine unavailable")

// BestReply asks the engine for its best move from fen, applies that move to a
// private copy of the position, then asks for an evaluation of the result.
// One process per call, closed on every exit path. The evaluation is in pawns
// from White's perspective.
func BestReply(ctx context.Context, fen string, cfg *config.Config) (string, float64, error) {
	path, err := ResolveEnginePath(cfg)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	eng, err := NewUCIEngine(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: starting %s: %v", ErrEngineUnavailable, path, err)
	}
	defer eng.Close()

	if err := eng.NewGame(); err != nil {
		return "", 0, fmt.Errorf("engine search failed: %w", err)
	}

	settings := models.EngineSettings{
		Depth:      cfg.Engine.Depth,
		MoveTimeMS: cfg.Engine.MoveTime,
		UseDepth:   cfg.Engine.DepthOrTime,
	}

	search, err := eng.EvalFEN(ctx, fen, settings)
	if err != nil {
		return "", 0, fmt.Errorf("engine search failed: %w", err)
	}
	if search.Best == "" || search.Best == "(none)" {
		return "", 0, errors.New("engine search failed: no best move in output")
	}

	after, err := positionAfter(fen, search.Best)
	if err != nil {
		return "", 0, fmt.Errorf("engine search failed: best move %q not applicable: %v", search.Best, err)
	}

	result, err := eng.EvalFEN(ctx, after.String(), settings)
	if err != nil {
		return "", 0, fmt.Errorf("engine evaluation failed: %w", err)
	}

	eval := NormalizeScore(result, after.Turn() == chess.White)
	return search.Best, eval, nil
}

// positionAfter applies a UCI move to a fresh game built from fen and returns
// the resulting position. The caller's own game state is never touched.
func positionAfter(fen, uciMove string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	game := chess.NewGame(opt)
	move, err := chess.UCINotation{}.Decode(game.Position(), uciMove)
	if err != nil {
		return nil, err
	}
	if err := game.Move(move); err != nil {
		return nil, err
	}
	return game.Position(), nil
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notnil/chess"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
	"github.com/uchihaitachilz/Ai-chess-bot/app/models"
)

var httpc = &http.Client{Timeout: 15 * time.Second}

// engineTimeout bounds a single move request end to end. Searches are bounded
// by depth, not wall clock, so this only guards against a wedged process.
const engineTimeout = 60 * time.Second

const cannedTip = "Focus on piece safety and development before anything fancy, dummy. Dis is da whey to improve, kid!"

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ProcessMove handles POST /api/move:
// validate the move, apply it, short-circuit terminal positions, otherwise
// query the engine for a reply and attach commentary.
func ProcessMove(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		fenOpt, err := chess.FEN(req.FEN)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid FEN: %v", err)})
			return
		}
		game := chess.NewGame(fenOpt)

		if strings.TrimSpace(req.Move) == "" {
			// Empty move means the engine opens (the player took Black).
			// Only valid while the first side is still to move.
			if game.Position().Turn() != chess.White {
				c.JSON(http.StatusBadRequest, gin.H{"error": "empty move is only valid when the engine opens as White"})
				return
			}
		} else {
			move, err := chess.UCINotation{}.Decode(game.Position(), req.Move)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid move format: %s", req.Move)})
				return
			}
			if err := game.Move(move); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("illegal move: %s", req.Move)})
				return
			}
		}

		// Terminal positions answer immediately; the engine is never consulted.
		if resp, over := terminalResponse(game); over {
			c.JSON(http.StatusOK, resp)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), engineTimeout)
		defer cancel()

		engineMove, evaluation, err := BestReply(ctx, game.FEN(), cfg)
		if err != nil {
			// Engine failures block the core function; surface the full
			// diagnostic (checked paths included) so operators can fix it.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		commentary := GenerateCommentary(ctx, cfg, game, req.Move, engineMove, evaluation)

		c.JSON(http.StatusOK, models.MoveResponse{
			EngineMove: engineMove,
			Evaluation: evaluation,
			Commentary: commentary,
		})
	}
}

// terminalResponse maps a finished game to its fixed response. The evaluation
// uses the same ±100 saturation as normalized mate scores.
func terminalResponse(game *chess.Game) (models.MoveResponse, bool) {
	switch game.Method() {
	case chess.Checkmate:
		evaluation := MateEvaluation
		if game.Outcome() == chess.BlackWon {
			evaluation = -MateEvaluation
		}
		return models.MoveResponse{
			Evaluation: evaluation,
			Commentary: "Checkmate! Game over. Well played... or not.",
		}, true
	case chess.Stalemate:
		return models.MoveResponse{
			Commentary: "Stalemate. A draw by boredom. How exciting.",
		}, true
	case chess.InsufficientMaterial:
		return models.MoveResponse{
			Commentary: "Insufficient material. Even the engine can't win this one.",
		}, true
	}
	return models.MoveResponse{}, false
}

// ImprovementTips handles POST /api/improvement-tips. This endpoint never
// fails: malformed input or internal trouble degrades to a canned tip.
func ImprovementTips(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TipsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, models.TipsResponse{Tips: cannedTip})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		tips := GenerateImprovementTips(ctx, cfg, req.Move, req.Evaluation, req.PreviousEvaluation, true)
		c.JSON(http.StatusOK, models.TipsResponse{Tips: tips})
	}
}

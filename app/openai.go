// Remote commentary via an OpenAI-compatible chat-completions endpoint.
// One attempt with a short timeout; every failure mode falls back to the
// rule-based generator and is never surfaced to the client.

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/notnil/chess"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

var openaiClient = &http.Client{Timeout: 10 * time.Second}

const commentarySystemPrompt = "You are SadisticTushi - EXTREMELY TOXIC, SARCASATIC, WITTY, and SAVAGE but FUNNY. " +
	"CRITICAL: Generate UNIQUE, VARIED commentary. Never repeat the same jokes, phrases, or commentary style. " +
	"Each move deserves fresh, creative roasts. Use catchphrases naturally: Pony, Juicer, Monster Cookie, Fatty, Chicken, Candy, Lollipop, " +
	"'dummy', 'kid', 'That's why you are the dummy', 'Dis is da whey!', 'Fried the chicken', 'HOP IN THE PONY', " +
	"'Bring out the Juicer', 'Spilling the tomato ketchup'. Be BRUTALLY SARCASATIC, WITTY, and TOXIC but in a playful, entertaining way. " +
	"ALWAYS reference specific details from the move/position to make commentary contextual and unique."

const tipsSystemPrompt = "You are SadisticTushi - a chess coach who roasts but also helps players improve. " +
	"Use catchphrases: 'dummy', 'kid', 'That's why you are the dummy', 'Dis is da whey!'. " +
	"Give SIMPLE, ACTIONABLE improvement tips in a toxic but funny and encouraging way."

var variationInstructions = []string{
	"Use a DIFFERENT angle/approach than you've used before",
	"Reference something specific about THIS position that's unique",
	"Vary your delivery style - try a different sarcastic tone",
	"Focus on a different aspect (timing, piece choice, position, etc.)",
	"Make an observation that's unique to this exact moment in the game",
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens"`
	Temperature      float64       `json:"temperature"`
	TopP             float64       `json:"top_p,omitempty"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func generateCommentaryOpenAI(ctx context.Context, cfg *config.Config, game *chess.Game, playerMove, engineMove string, evaluation float64) (string, error) {
	bc := getBoardContext(game, playerMove, engineMove)
	engineOpens := strings.TrimSpace(playerMove) == ""

	var quality Quality
	if engineOpens {
		// The engine opens from a balanced board; nothing to classify.
		quality = QualityGood
	} else {
		// This request carries no history, so the previous evaluation is a
		// fixed approximation. Known shortcut; the tips endpoint takes the
		// real prior eval from the client instead.
		prevEval := evaluation + 0.3
		quality = ClassifyMove(prevEval, evaluation, game.Position().Turn() == chess.Black)
	}

	var details, roastInstruction, roastTarget string
	if !engineOpens {
		details = fmt.Sprintf(`Move #%d - %s:
- Player played: %s (%s)
- Engine responds: %s (%s)
- Move quality: %s
- Position evaluation: %.2f pawns
- Pieces remaining: %d
- Current check: %t
- Engine move causes check: %t`,
			bc.moveNumber, strings.ToUpper(bc.phase),
			playerMove, bc.playerPiece,
			engineMove, bc.enginePiece,
			quality, evaluation, bc.pieces, bc.isCheck, bc.engineGivesCheck)
		roastInstruction = "Roast the player's move with UNIQUE, CREATIVE sarcasm - avoid repeating the same jokes or phrases from previous moves."
		roastTarget = "of this specific move - be creative and reference what makes THIS move unique (piece type, position, timing, etc.)"
	} else {
		details = fmt.Sprintf(`Move #1 - OPENING:
- Engine opening move: %s (%s)
- Position evaluation: %.2f pawns
- Starting the game!`,
			engineMove, bc.enginePiece, evaluation)
		roastInstruction = "Comment on the opening move with unique, creative commentary - make it different from typical opening comments."
		roastTarget = "about this specific opening - reference the piece moved or strategy implied, be creative!"
	}

	prompt := fmt.Sprintf(`You are SadisticTushi - a chess commentator who is EXTREMELY TOXIC, SARCASATIC, WITTY, and SAVAGE but FUNNY.

CRITICAL: Generate UNIQUE commentary that doesn't repeat phrases or jokes from previous moves. Be CREATIVE and VARIED.

Your vocabulary (use NATURALLY, don't force every phrase):
- Pieces: Pony (knight), Juicer (bishop), Monster Cookie (rook), Fatty (queen), Chicken (king), Candy (pawn), Lollipop (king)
- Phrases: "dummy", "kid", "That's why you are the dummy", "Dis is da whey!", "Looks so cheeky",
  "Fried the chicken" (checkmate), "Get diabetes" (capturing pieces), "HOP IN THE PONY",
  "Bring out the Juicer", "Bring oudda juucerrr", "Focus on the Lollipop" (target king),
  "Spilling the tomato ketchup" (blunder), "That's why you the dummy", "Giga dummy", "Copycat"

%s

%s
%s
- Use EXTREME sarcasm and wit %s - but make it FRESH and UNIQUE to this specific move
- Be TOXIC but in a playful, funny way
- Reference specific details from the move details above to make it contextual
- Keep it to 1-2 sentences maximum
- Make it EXTREMELY sarcastic, witty, and ORIGINAL - avoid clichés and repetition`,
		details, roastInstruction, choice(variationInstructions), roastTarget)

	return chatComplete(ctx, cfg, chatCompletionRequest{
		Model: cfg.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: commentarySystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:        150,
		Temperature:      1.2,  // higher temperature for more creativity and variety
		TopP:             0.95, // nucleus sampling for more diverse outputs
		FrequencyPenalty: 0.5,  // penalize repetition
		PresencePenalty:  0.3,  // encourage new topics/phrases
	})
}

func improvementTipOpenAI(ctx context.Context, cfg *config.Config, move string, delta float64) (string, error) {
	var severity string
	switch {
	case delta < -2.0:
		severity = "blunder"
	case delta < -1.0:
		severity = "bad move"
	default:
		severity = "questionable move"
	}

	prompt := fmt.Sprintf(`You are SadisticTushi, a chess coach helping a player improve. The player just made a %s (move: %s).
The evaluation dropped by %.2f pawns.

Generate a HELPFUL, SIMPLE improvement tip in TUSHI's style - toxic but funny, but also genuinely educational.
- Use simple, actionable advice
- Reference the move or position
- Use catchphrases naturally: "dummy", "kid", "That's why you are the dummy", "Dis is da whey!"
- Keep it to 1-2 sentences
- Focus on what they should do better next time
- Be encouraging despite the roasts

Example style: "That's why you are the dummy! Next time, focus on piece development before moving your pieces randomly, kid. Dis is da whey to improve!"

Generate the tip now:`, severity, move, -delta)

	return chatComplete(ctx, cfg, chatCompletionRequest{
		Model: cfg.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: tipsSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:        100,
		Temperature:      1.1,
		FrequencyPenalty: 0.4,
		PresencePenalty:  0.2,
	})
}

// chatComplete makes exactly one attempt against the configured endpoint.
// Callers treat any error as a signal to use the deterministic fallback.
func chatComplete(ctx context.Context, cfg *config.Config, payload chatCompletionRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(cfg.OpenAI.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.OpenAI.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := openaiClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion: http %d", res.StatusCode)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completion: no choices in response")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("chat completion: empty content")
	}
	return text, nil
}

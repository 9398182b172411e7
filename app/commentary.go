// SadisticTushi commentary. Remote generation is the primary path when an API
// key is configured; everything in this file is the deterministic fallback
// and the shared board-context extraction. Randomness here is presentational
// only and never touches game state or classification.

package app

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/notnil/chess"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

// SadisticTushi piece names
var pieceNames = map[chess.PieceType]string{
	chess.Knight: "Pony",
	chess.Bishop: "Juicer",
	chess.Rook:   "Monster Cookie",
	chess.Queen:  "Fatty",
	chess.King:   "Chicken",
	chess.Pawn:   "Candy",
}

// commentaryTemplates is keyed by the closed Quality enumeration, one ordered
// list of lines per bucket plus the check/checkmate overrides.
var commentaryTemplates = map[Quality][]string{
	QualityExcellent: {
		"Looks so cheeky! That's actually... wait, did you just make a good move? That's why you are NOT the dummy for once, kid!",
		"Not bad, dummy! You're making me work for it. Dis is da whey! But don't get too excited.",
		"Alright, I see what you're going for here. That's... surprisingly decent. Are you sure you meant to do that?",
		"Interesting choice. The position is getting complex. You're actually thinking? That's new!",
		"Wow, that's... actually good? Who are you and what did you do with the dummy?",
		"Okay, okay. That's a solid move. I see you, kid. Don't let it go to your head though!",
		"Hmm, interesting. That actually works well here. Are you sure you're not cheating, dummy?",
		"That's a proper move right there. The engine is nodding in approval... barely.",
	},
	QualityGood: {
		"Solid move. Nothing flashy, but it works. Can't fault you for that, dummy. Barely.",
		"Standard play. The engine approves... barely. You're not completely hopeless, kid.",
		"Reasonable. I mean, it's not terrible. That's the best I can say, dummy.",
		"Okay, that's a move. It exists. Moving on before you mess it up.",
		"That'll work. Nothing special, but it's playable. Keep going, dummy.",
		"Decent. Not impressive, but acceptable. That's the bar, kid.",
		"Standard stuff. Nothing to write home about, but it works.",
		"Okay move. The position stays playable. Don't mess it up now!",
	},
	QualityQuestionable: {
		"Hmm, that's... a choice. Let's see where this leads, dummy. Probably nowhere good.",
		"Interesting. Not what I would have done, but okay. That's why you the dummy and I'm not, kid.",
		"That move exists, I suppose. Moving forward... into what, I'm not sure.",
		"Well, it's legal. That's something, kid. The bar is on the floor and you're still limbo dancing under it.",
		"That's... an interesting decision. Let's see how this plays out, dummy.",
		"Hmm, okay. Not ideal, but we'll see. That's why you are the dummy!",
		"Interesting choice. The engine is confused, and so am I, kid.",
		"That's a move. Not a great one, but a move nonetheless.",
	},
	QualityBad: {
		"Oof. That's not ideal, dummy. The engine is laughing at you. We'll work with it... somehow.",
		"Yikes. The engine is not a fan of that one, kid. That's why you are the dummy!",
		"That's... certainly a move. Not a great one, but a move. Like, technically it's chess, I guess?",
		"Hmm, the evaluation just dropped. Interesting strategy, dummy. If your strategy is losing, you're nailing it!",
		"Ouch. That's not good, kid. The position is getting worse. That's why you are the dummy!",
		"That hurts. The engine is shaking its head, dummy. What were you thinking?",
		"Yikes. That move didn't help at all. The position is suffering, kid!",
		"That's rough, dummy. The evaluation is looking grim. Keep trying though!",
	},
	QualityBlunder: {
		"Oh no! That's why you are the dummy! Spilling the tomato ketchup everywhere! The position is bleeding, kid!",
		"Yikes! That's a blunder of epic proportions, dummy! The engine is having a field day with this one!",
		"Ouch. The position just collapsed like a house of cards. That's why you the dummy! Thanks for the free win!",
		"That's a blunder that would make beginners cry, kid. You're really out here doing the most... to lose!",
	},
	QualityCheck: {
		"Check! Focus on the Lollipop, dummy! The Chicken is in danger! Things are getting SPICY!",
		"Check! The pressure is on the Chicken, kid! Time to panic... I mean, defend!",
		"Check! Time to defend, dummy! Or don't, I'm not your mom. That's why you the dummy!",
	},
	QualityCheckmate: {
		"Fried the chicken! 🔥🐓 That's why you are the dummy! Checkmate, kid! Game over!",
		"Checkmate! Fried the chicken! That's a wrap, dummy. Well played... said no one ever!",
		"Checkmate! Game over, kid. The Chicken is cooked! That's why you are the dummy!",
	},
}

var ponyLines = []string{
	"HOP IN THE PONY! Let's go, dummy!",
	"Hoping the Pony! That's the way, kid!",
	"Bring out the Pony! Dis is da whey!",
}

var juicerLines = []string{
	"Bring oudda juucerrr! Let's get spicy, dummy!",
	"Bring out the Juicer! Time to cause chaos, kid!",
	"Bishop to juicer! Things are about to get wild, dummy!",
}

var candyLines = []string{
	"Taking the candy! Get diabetes, dummy!",
	"Free candies! That's why you are the dummy for falling for it, kid!",
	"Candy captured! Sweet moves lead to sweet defeats, dummy!",
}

// openingLines comment on the engine moving first; formatted with the engine
// move and its piece name.
var openingLines = []string{
	"Opening with %s! Bringing out the %s early. Let's see what you got, dummy!",
	"First move: %s. The %s enters the game! Time to play chess, kid!",
	"Engine starts with %s. Your move, dummy! The %s is ready to cause chaos!",
	"%s! The %s makes its debut. Try not to blunder on move 2, kid!",
	"Game on! %s to start. The %s is in play. That's why you are the dummy if you mess this up!",
	"Here we go! %s opens the game. %s movement detected. Don't disappoint, dummy!",
}

// GenerateCommentary picks the remote strategy when a key is configured and
// falls back to the rule-based generator on any remote failure. The caller
// never sees a remote error. game holds the position after the player's move
// (the engine's reply is not applied yet).
func GenerateCommentary(ctx context.Context, cfg *config.Config, game *chess.Game, playerMove, engineMove string, evaluation float64) string {
	if cfg.OpenAI.APIKey != "" {
		if text, err := generateCommentaryOpenAI(ctx, cfg, game, playerMove, engineMove, evaluation); err == nil {
			return text
		}
	}
	return fallbackCommentary(game, playerMove, engineMove, evaluation)
}

type boardContext struct {
	moveNumber       int
	ply              int
	phase            string // "opening", "middlegame" or "endgame"
	pieces           int
	isCheck          bool
	playerPiece      string
	enginePiece      string
	engineGivesCheck bool
}

func getBoardContext(game *chess.Game, playerMove, engineMove string) boardContext {
	pos := game.Position()
	ply := plyCount(pos)

	bc := boardContext{
		moveNumber:  ply/2 + 1,
		ply:         ply,
		pieces:      len(pos.Board().SquareMap()),
		isCheck:     lastMoveGaveCheck(game),
		playerPiece: "piece",
		enginePiece: pieceNameAt(pos, engineMove),
	}

	switch {
	case ply < 10:
		bc.phase = "opening"
	case ply < 30:
		bc.phase = "middlegame"
	default:
		bc.phase = "endgame"
	}

	if before := positionBefore(game); before != nil && strings.TrimSpace(playerMove) != "" {
		bc.playerPiece = pieceNameAt(before, playerMove)
	}

	if mv, err := decodeUCI(pos, engineMove); err == nil {
		bc.engineGivesCheck = mv.HasTag(chess.Check)
	}

	return bc
}

// plyCount derives half-moves played from the FEN counters; a game rebuilt
// from FEN carries no move history, so the fullmove field is the only record.
func plyCount(pos *chess.Position) int {
	parts := strings.Fields(pos.String())
	moveNum := 1
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &moveNum)
	}
	ply := (moveNum - 1) * 2
	if pos.Turn() == chess.Black {
		ply++
	}
	return ply
}

func positionBefore(game *chess.Game) *chess.Position {
	positions := game.Positions()
	if len(positions) < 2 {
		return nil
	}
	return positions[len(positions)-2]
}

func lastMoveGaveCheck(game *chess.Game) bool {
	moves := game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

func decodeUCI(pos *chess.Position, uciMove string) (*chess.Move, error) {
	return chess.UCINotation{}.Decode(pos, uciMove)
}

// pieceNameAt names the piece sitting on the move's origin square.
func pieceNameAt(pos *chess.Position, uciMove string) string {
	mv, err := decodeUCI(pos, uciMove)
	if err != nil {
		return "piece"
	}
	piece := pos.Board().Piece(mv.S1())
	if piece == chess.NoPiece {
		return "piece"
	}
	if name, ok := pieceNames[piece.Type()]; ok {
		return name
	}
	return "piece"
}

// fallbackQuality buckets by evaluation magnitude alone. Cruder than
// ClassifyMove, but it needs no previous evaluation.
func fallbackQuality(evaluation float64) Quality {
	abs := evaluation
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > 5.0:
		if evaluation < 0 {
			return QualityBlunder
		}
		return QualityExcellent
	case abs > 2.0:
		if evaluation < 0 {
			return QualityBad
		}
		return QualityGood
	case abs > 1.0:
		return QualityQuestionable
	default:
		return QualityGood
	}
}

func fallbackCommentary(game *chess.Game, playerMove, engineMove string, evaluation float64) string {
	pos := game.Position()

	if pos.Status() == chess.Checkmate {
		return choice(commentaryTemplates[QualityCheckmate])
	}
	if lastMoveGaveCheck(game) {
		return choice(commentaryTemplates[QualityCheck])
	}

	bc := getBoardContext(game, playerMove, engineMove)
	quality := fallbackQuality(evaluation)

	// Engine opens; the player hasn't moved yet.
	if strings.TrimSpace(playerMove) == "" {
		return fmt.Sprintf(choice(openingLines), engineMove, bc.enginePiece)
	}

	var parts []string
	if bc.playerPiece == "Pony" && rand.Float64() < 0.3 {
		parts = append(parts, choice(ponyLines))
	}
	if bc.playerPiece == "Juicer" && rand.Float64() < 0.3 {
		parts = append(parts, choice(juicerLines))
	}
	if before := positionBefore(game); before != nil {
		if mv, err := decodeUCI(before, playerMove); err == nil {
			if before.Board().Piece(mv.S1()).Type() == chess.Pawn && mv.HasTag(chess.Capture) {
				if rand.Float64() < 0.4 {
					parts = append(parts, choice(candyLines))
				}
			}
		}
	}

	base := choice(commentaryTemplates[quality])

	var additions []string
	if bc.phase == "opening" && rand.Float64() < 0.3 {
		additions = append(additions, "Still in the opening phase, dummy!")
	} else if bc.phase == "endgame" && rand.Float64() < 0.3 {
		additions = append(additions, "Endgame time, kid! Every move counts now!")
	}
	if bc.pieces < 10 && rand.Float64() < 0.4 {
		additions = append(additions, "Pieces are dropping like flies!")
	}

	commentary := base
	if len(parts) > 0 {
		commentary = strings.Join(parts, " ") + " " + base
	}
	if len(additions) > 0 && rand.Float64() < 0.5 {
		commentary += " " + choice(additions)
	}
	if evaluation > 3.0 && rand.Float64() < 0.6 {
		commentary += " The engine is feeling confident, dummy."
	} else if evaluation < -3.0 && rand.Float64() < 0.6 {
		commentary += " That's why you are the dummy!"
	}

	return commentary
}

func choice(options []string) string {
	return options[rand.Intn(len(options))]
}

// Improvement tips follow the same two-strategy shape but only fire for moves
// that actually hurt the mover (delta below -0.5); good moves get nothing.

var blunderTips = []string{
	"That's why you are the dummy! That was a huge blunder, kid! Next time, double-check your piece safety before moving. Dis is da whey to avoid mistakes!",
	"Ouch! That's a major mistake, dummy. Always think about what your opponent can do after your move. Think before you move, kid!",
	"Spilling the tomato ketchup everywhere! That's a big blunder. Focus on protecting your pieces and controlling the center, dummy!",
}

var badMoveTips = []string{
	"That's not ideal, dummy! Try to develop your pieces and control important squares. Dis is da whey to improve, kid!",
	"That move hurt your position, kid. Next time, think about piece coordination and avoid weakening your king's safety. That's why you are the dummy!",
	"Not great, dummy! Focus on piece activity and avoid moving the same piece multiple times in the opening. Learn from this, kid!",
}

var questionableTips = []string{
	"Hmm, that's questionable, dummy. Try to think about your opponent's threats and keep your pieces active. Dis is da whey, kid!",
	"That move could be better, kid. Focus on developing pieces and controlling the center. That's why you are the dummy if you keep making these moves!",
}

// GenerateImprovementTips returns coaching advice after a bad move, or the
// empty string when the move didn't lose anything. Evaluations are
// White-perspective; isWhite says which side the player holds.
func GenerateImprovementTips(ctx context.Context, cfg *config.Config, move string, evaluation, previousEvaluation float64, isWhite bool) string {
	prev, curr := previousEvaluation, evaluation
	if !isWhite {
		prev, curr = -prev, -curr
	}
	delta := curr - prev
	if delta >= -0.5 {
		return ""
	}

	if cfg.OpenAI.APIKey != "" {
		if tip, err := improvementTipOpenAI(ctx, cfg, move, delta); err == nil {
			return tip
		}
	}
	return fallbackImprovementTip(delta)
}

func fallbackImprovementTip(delta float64) string {
	switch {
	case delta < -2.0:
		return choice(blunderTips)
	case delta < -1.0:
		return choice(badMoveTips)
	default:
		return choice(questionableTips)
	}
}

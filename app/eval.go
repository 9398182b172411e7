package app

import "github.com/uchihaitachilz/Ai-chess-bot/app/models"

// MateEvaluation is the saturating sentinel for forced mates. Clamping keeps
// delta arithmetic finite, at the cost of losing the mate distance: mate in 1
// and mate in 9 normalize to the same value.
const MateEvaluation = 100.0

// NormalizeScore converts an engine-native score into pawns from White's
// perspective. UCI scores are relative to the side to move, so the sign flips
// when Black is on move. Centipawns divide by 100; mates clamp to ±100.
func NormalizeScore(score models.UCIScore, whiteToMove bool) float64 {
	var eval float64
	switch {
	case score.Mate != nil:
		if *score.Mate > 0 {
			eval = MateEvaluation
		} else {
			eval = -MateEvaluation
		}
	case score.CP != nil:
		eval = float64(*score.CP) / 100.0
	}
	if !whiteToMove {
		eval = -eval
	}
	return eval
}

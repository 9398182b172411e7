package app

// Quality buckets a move by how much the evaluation shifted from the mover's
// perspective. Check and Checkmate are not delta buckets; they are detected
// from board state and preempt bucket-based commentary selection.
type Quality int

const (
	QualityBlunder Quality = iota
	QualityBad
	QualityQuestionable
	QualityGood
	QualityExcellent
	QualityCheck
	QualityCheckmate
)

func (q Quality) String() string {
	switch q {
	case QualityBlunder:
		return "blunder"
	case QualityBad:
		return "bad"
	case QualityQuestionable:
		return "questionable"
	case QualityGood:
		return "good"
	case QualityExcellent:
		return "excellent"
	case QualityCheck:
		return "check"
	case QualityCheckmate:
		return "checkmate"
	}
	return "unknown"
}

// ClassifyMove maps an evaluation pair to a quality bucket. Both evaluations
// are White-perspective pawns; when Black moved they are negated first so the
// delta reads as "how much better off is the mover". Boundary values belong
// to the lower bucket: a delta of exactly -2.0 is a blunder, exactly -0.5 is
// bad, exactly 0.0 is good.
func ClassifyMove(prevEval, newEval float64, whiteMoved bool) Quality {
	if !whiteMoved {
		prevEval = -prevEval
		newEval = -newEval
	}
	delta := newEval - prevEval

	switch {
	case delta <= -2.0:
		return QualityBlunder
	case delta <= -0.5:
		return QualityBad
	case delta < 0.0:
		return QualityQuestionable
	case delta < 0.5:
		return QualityGood
	default:
		return QualityExcellent
	}
}

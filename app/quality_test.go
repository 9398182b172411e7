package app

import "testing"

func TestClassifyMoveZeroDelta(t *testing.T) {
	for _, e := range []float64{-3.2, -0.5, 0.0, 0.7, 4.1} {
		if got := ClassifyMove(e, e, true); got != QualityGood {
			t.Fatalf("ClassifyMove(%v, %v, true) = %v, want good", e, e, got)
		}
	}
}

func TestClassifyMovePerspectiveFlip(t *testing.T) {
	// Identical raw delta, opposite movers: a two-pawn drop in White's eval
	// is a blunder by White but a great move by Black.
	if got := ClassifyMove(0.0, -2.0, true); got != QualityBlunder {
		t.Fatalf("ClassifyMove(0, -2, white) = %v, want blunder", got)
	}
	if got := ClassifyMove(0.0, -2.0, false); got != QualityExcellent {
		t.Fatalf("ClassifyMove(0, -2, black) = %v, want excellent", got)
	}
}

func TestClassifyMoveBoundaries(t *testing.T) {
	cases := []struct {
		prev, next float64
		whiteMoved bool
		want       Quality
	}{
		{0.0, -2.01, true, QualityBlunder},
		{0.0, -2.0, true, QualityBlunder}, // boundary belongs to blunder
		{0.0, -1.99, true, QualityBad},
		{0.0, -0.5, true, QualityBad}, // boundary belongs to bad, not questionable
		{0.0, -0.49, true, QualityQuestionable},
		{0.0, 0.0, true, QualityGood},
		{0.0, 0.49, true, QualityGood},
		{0.0, 0.5, true, QualityExcellent},
		{1.2, 0.7, true, QualityBad},
		{-0.3, -0.6, false, QualityGood}, // Black gained 0.3
	}

	for _, tc := range cases {
		if got := ClassifyMove(tc.prev, tc.next, tc.whiteMoved); got != tc.want {
			t.Fatalf("ClassifyMove(%v, %v, %v) = %v, want %v",
				tc.prev, tc.next, tc.whiteMoved, got, tc.want)
		}
	}
}

func TestQualityString(t *testing.T) {
	cases := map[Quality]string{
		QualityBlunder:      "blunder",
		QualityBad:          "bad",
		QualityQuestionable: "questionable",
		QualityGood:         "good",
		QualityExcellent:    "excellent",
		QualityCheck:        "check",
		QualityCheckmate:    "checkmate",
	}
	for q, want := range cases {
		if got := q.String(); got != want {
			t.Fatalf("Quality(%d).String() = %q, want %q", q, got, want)
		}
	}
}

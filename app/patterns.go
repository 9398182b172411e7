// Batch pattern analysis over move lists: repeated sequences, opening
// signatures, move frequency, evaluation trends, and blunder spotting.
// Driven by cmd/analyze; shares the engine driver with the move endpoint.

package app

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/notnil/chess"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
	"github.com/uchihaitachilz/Ai-chess-bot/app/models"
)

// GameRecord is one game's worth of analysis input: UCI moves plus optional
// White-perspective evaluations aligned one-to-one with the moves.
type GameRecord struct {
	Moves       []string  `json:"moves"`
	Evaluations []float64 `json:"evaluations,omitempty"`
	BestMoves   []string  `json:"best_moves,omitempty"`
}

type SequenceCount struct {
	Sequence string `json:"sequence"`
	Count    int    `json:"count"`
}

type MoveCount struct {
	Move  string `json:"move"`
	Count int    `json:"count"`
}

type BlunderRecord struct {
	Game       int     `json:"game"`
	MoveNumber int     `json:"move_number"`
	Move       string  `json:"move"`
	Drop       float64 `json:"evaluation_drop"`
	BeforeEval float64 `json:"before_eval"`
	AfterEval  float64 `json:"after_eval"`
}

type EvaluationTrends struct {
	Average  float64 `json:"average_evaluation"`
	Max      float64 `json:"max_evaluation"`
	Min      float64 `json:"min_evaluation"`
	Range    float64 `json:"evaluation_range"`
	Positive int     `json:"positive_evaluations"`
	Negative int     `json:"negative_evaluations"`
	Neutral  int     `json:"neutral_evaluations"`
}

type PatternReport struct {
	Games             int               `json:"games"`
	TotalMoves        int               `json:"total_moves"`
	RepeatedSequences []SequenceCount   `json:"repeated_sequences"`
	OpeningPatterns   []SequenceCount   `json:"opening_patterns"`
	CommonMoves       []MoveCount       `json:"common_moves"`
	EvaluationTrends  *EvaluationTrends `json:"evaluation_trends,omitempty"`
	Blunders          []BlunderRecord   `json:"blunders"`
}

// LoadGamesFromPGN reads every game in a PGN stream into move lists.
func LoadGamesFromPGN(r io.Reader) ([]GameRecord, error) {
	games, err := chess.GamesFromPGN(r)
	if err != nil {
		return nil, err
	}
	records := make([]GameRecord, 0, len(games))
	for _, g := range games {
		var moves []string
		for _, m := range g.Moves() {
			moves = append(moves, chess.UCINotation{}.Encode(nil, m))
		}
		records = append(records, GameRecord{Moves: moves})
	}
	return records, nil
}

// LoadAnalysisJSON reads one engine-analysis dump:
// {"moves": [...], "evaluations": [...], "best_moves": [...]}
func LoadAnalysisJSON(r io.Reader) (GameRecord, error) {
	var rec GameRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return GameRecord{}, err
	}
	return rec, nil
}

// EvaluateGames fills in missing evaluations by replaying each game and
// scoring every position. One engine per worker, workers fed off a shared
// channel; a game that fails to evaluate is logged and skipped.
func EvaluateGames(ctx context.Context, cfg *config.Config, games []GameRecord) error {
	path, err := ResolveEnginePath(cfg)
	if err != nil {
		return err
	}

	numWorkers := GetWorkerCount()
	if numWorkers > len(games) {
		numWorkers = len(games)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobs := make(chan int, len(games))
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			eng, err := NewUCIEngine(path)
			if err != nil {
				log.Printf("worker %d: failed to create engine: %v", id, err)
				return
			}
			defer eng.Close()
			_ = eng.NewGame()

			for idx := range jobs {
				if err := evaluateGame(ctx, eng, cfg, &games[idx]); err != nil {
					log.Printf("worker %d: error evaluating game %d: %v", id, idx, err)
				}
			}
		}(i)
	}

	for i := range games {
		if len(games[i].Evaluations) == 0 {
			jobs <- i
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

func evaluateGame(ctx context.Context, eng *UCIEngine, cfg *config.Config, rec *GameRecord) error {
	game := chess.NewGame()
	settings := models.EngineSettings{
		Depth:      cfg.Engine.Depth,
		MoveTimeMS: cfg.Engine.MoveTime,
		UseDepth:   cfg.Engine.DepthOrTime,
	}

	evals := make([]float64, 0, len(rec.Moves))
	for _, uci := range rec.Moves {
		mv, err := chess.UCINotation{}.Decode(game.Position(), uci)
		if err != nil {
			return err
		}
		if err := game.Move(mv); err != nil {
			return err
		}

		c2, cancel := context.WithTimeout(ctx, 5*time.Second)
		score, err := eng.EvalFEN(c2, game.Position().String(), settings)
		cancel()
		if err != nil {
			return err
		}
		evals = append(evals, NormalizeScore(score, game.Position().Turn() == chess.White))
	}
	rec.Evaluations = evals
	return nil
}

// AnalyzePatterns aggregates move statistics across all loaded games.
// blunderThreshold is a negative pawn delta, e.g. -2.0.
func AnalyzePatterns(games []GameRecord, minOccurrences int, blunderThreshold float64) PatternReport {
	report := PatternReport{Games: len(games)}

	sequences := map[string]int{}
	openings := map[string]int{}
	moveCounts := map[string]int{}
	var allEvals []float64

	for gameIdx, g := range games {
		report.TotalMoves += len(g.Moves)

		// 2- and 3-move sequences
		for i := 0; i+1 < len(g.Moves); i++ {
			sequences[g.Moves[i]+" -> "+g.Moves[i+1]]++
		}
		for i := 0; i+2 < len(g.Moves); i++ {
			sequences[g.Moves[i]+" -> "+g.Moves[i+1]+" -> "+g.Moves[i+2]]++
		}

		// Opening signature: first three moves of games deep enough to matter.
		if len(g.Moves) >= 10 {
			openings[strings.Join(g.Moves[:3], " -> ")]++
		}

		for _, m := range g.Moves {
			moveCounts[m]++
		}

		allEvals = append(allEvals, g.Evaluations...)

		for i := 1; i < len(g.Evaluations); i++ {
			drop := g.Evaluations[i] - g.Evaluations[i-1]
			if drop <= blunderThreshold {
				move := "unknown"
				if i < len(g.Moves) {
					move = g.Moves[i]
				}
				report.Blunders = append(report.Blunders, BlunderRecord{
					Game:       gameIdx,
					MoveNumber: i,
					Move:       move,
					Drop:       drop,
					BeforeEval: g.Evaluations[i-1],
					AfterEval:  g.Evaluations[i],
				})
			}
		}
	}

	for seq, count := range sequences {
		if count >= minOccurrences {
			report.RepeatedSequences = append(report.RepeatedSequences, SequenceCount{Sequence: seq, Count: count})
		}
	}
	sortSequences(report.RepeatedSequences)

	for seq, count := range openings {
		report.OpeningPatterns = append(report.OpeningPatterns, SequenceCount{Sequence: seq, Count: count})
	}
	sortSequences(report.OpeningPatterns)
	if len(report.OpeningPatterns) > 10 {
		report.OpeningPatterns = report.OpeningPatterns[:10]
	}

	for m, count := range moveCounts {
		report.CommonMoves = append(report.CommonMoves, MoveCount{Move: m, Count: count})
	}
	sort.Slice(report.CommonMoves, func(i, j int) bool {
		if report.CommonMoves[i].Count != report.CommonMoves[j].Count {
			return report.CommonMoves[i].Count > report.CommonMoves[j].Count
		}
		return report.CommonMoves[i].Move < report.CommonMoves[j].Move
	})
	if len(report.CommonMoves) > 20 {
		report.CommonMoves = report.CommonMoves[:20]
	}

	if len(allEvals) > 0 {
		report.EvaluationTrends = evalTrends(allEvals)
	}

	sort.Slice(report.Blunders, func(i, j int) bool {
		return report.Blunders[i].Drop < report.Blunders[j].Drop
	})

	return report
}

func sortSequences(s []SequenceCount) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Count != s[j].Count {
			return s[i].Count > s[j].Count
		}
		return s[i].Sequence < s[j].Sequence
	})
}

func evalTrends(evals []float64) *EvaluationTrends {
	t := &EvaluationTrends{Max: evals[0], Min: evals[0]}
	var sum float64
	for _, e := range evals {
		sum += e
		if e > t.Max {
			t.Max = e
		}
		if e < t.Min {
			t.Min = e
		}
		switch {
		case e > 0:
			t.Positive++
		case e < 0:
			t.Negative++
		default:
			t.Neutral++
		}
	}
	t.Average = sum / float64(len(evals))
	t.Range = t.Max - t.Min
	return t
}

func GetWorkerCount() int {
	//default number of workers = number of cpus. Otherwise can be overwritten with WORKERS env var
	n := runtime.NumCPU()
	if v := os.Getenv("WORKERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}
	return n
}

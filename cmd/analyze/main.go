package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/uchihaitachilz/Ai-chess-bot/app"
	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

func main() {
	pgnPath := flag.String("pgn", "", "PGN file with games to analyze")
	analysisPath := flag.String("analysis", "", "JSON analysis file (moves/evaluations/best_moves)")
	evaluate := flag.Bool("eval", false, "score every position with the engine before analysis")
	minOcc := flag.Int("min", 2, "minimum occurrences for a repeated sequence")
	blunder := flag.Float64("blunder", -2.0, "evaluation drop that counts as a blunder")
	out := flag.String("out", "", "write the JSON report to this file instead of stdout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var games []app.GameRecord

	if *pgnPath != "" {
		f, err := os.Open(*pgnPath)
		if err != nil {
			log.Fatalf("failed to open PGN: %v", err)
		}
		loaded, err := app.LoadGamesFromPGN(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to parse PGN: %v", err)
		}
		games = append(games, loaded...)
	}

	if *analysisPath != "" {
		f, err := os.Open(*analysisPath)
		if err != nil {
			log.Fatalf("failed to open analysis file: %v", err)
		}
		rec, err := app.LoadAnalysisJSON(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to parse analysis file: %v", err)
		}
		games = append(games, rec)
	}

	if len(games) == 0 {
		log.Fatal("no games to analyze: pass -pgn and/or -analysis")
	}

	if *evaluate {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := app.EvaluateGames(ctx, cfg, games); err != nil {
			log.Fatalf("evaluation failed: %v", err)
		}
		log.Printf("Evaluated %d games in %s", len(games), time.Since(start))
	}

	report := app.AnalyzePatterns(games, *minOcc, *blunder)

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}

	if *out != "" {
		if err := os.WriteFile(*out, b, 0o644); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		log.Printf("Analysis exported to %s", *out)
		return
	}
	fmt.Println(string(b))
}

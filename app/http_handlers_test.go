package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
	"github.com/uchihaitachilz/Ai-chess-bot/app/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMoveResponse(t *testing.T, w *httptest.ResponseRecorder) models.MoveResponse {
	t.Helper()
	var resp models.MoveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return resp
}

func TestHealth(t *testing.T) {
	router := NewRouter(&config.Config{})

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"status":"ok"`) {
			t.Fatalf("GET %s body = %q", path, w.Body.String())
		}
	}
}

func TestProcessMoveBadRequests(t *testing.T) {
	router := NewRouter(engineConfig(writeFakeEngine(t, fakeEngineScript)))

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"fen": `},
		{"invalid fen", `{"fen":"not a position","move":"e2e4"}`},
		{"invalid move format", `{"fen":"` + startFEN + `","move":"zz99"}`},
		{"illegal move", `{"fen":"` + startFEN + `","move":"e2e5"}`},
		{"empty move with black to move", `{"fen":"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1","move":""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/move", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %q)", w.Code, w.Body.String())
			}
		})
	}
}

func TestProcessMoveCheckmate(t *testing.T) {
	// Fool's mate delivery: the engine is never consulted, so no binary is
	// needed at all.
	router := NewRouter(&config.Config{})

	w := postJSON(t, router, "/api/move",
		`{"fen":"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2","move":"d8h4"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}

	resp := decodeMoveResponse(t, w)
	if resp.EngineMove != "" {
		t.Fatalf("engine move on a finished game = %q, want empty", resp.EngineMove)
	}
	if resp.Evaluation != -MateEvaluation {
		t.Fatalf("evaluation = %v, want %v (Black delivered mate)", resp.Evaluation, -MateEvaluation)
	}
	if !strings.Contains(resp.Commentary, "Checkmate") {
		t.Fatalf("commentary = %q", resp.Commentary)
	}
}

func TestProcessMoveStalemate(t *testing.T) {
	router := NewRouter(&config.Config{})

	w := postJSON(t, router, "/api/move",
		`{"fen":"k7/8/8/8/8/1Q6/8/7K w - - 0 1","move":"b3b6"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}

	resp := decodeMoveResponse(t, w)
	if resp.Evaluation != 0 {
		t.Fatalf("stalemate evaluation = %v, want 0", resp.Evaluation)
	}
	if !strings.Contains(resp.Commentary, "Stalemate") {
		t.Fatalf("commentary = %q", resp.Commentary)
	}
}

// knightEngineScript answers g1f3, a legal White reply after 1.e4 e5.
const knightEngineScript = `#!/bin/sh
while read line; do
  case "$line" in
    uci) echo "uciok" ;;
    isready) echo "readyok" ;;
    go*) echo "info depth 12 score cp 30 pv g1f3"; echo "bestmove g1f3" ;;
    quit) exit 0 ;;
  esac
done
`

func TestProcessMoveEngineReply(t *testing.T) {
	router := NewRouter(engineConfig(writeFakeEngine(t, knightEngineScript)))

	// Player holds Black and answers 1.e4 with e5; the engine replies as White.
	w := postJSON(t, router, "/api/move",
		`{"fen":"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1","move":"e7e5"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}

	resp := decodeMoveResponse(t, w)
	if resp.EngineMove != "g1f3" {
		t.Fatalf("engine move = %q, want g1f3", resp.EngineMove)
	}
	if resp.Commentary == "" {
		t.Fatal("commentary should not be empty")
	}
}

func TestProcessMoveEngineOpens(t *testing.T) {
	router := NewRouter(engineConfig(writeFakeEngine(t, fakeEngineScript)))

	w := postJSON(t, router, "/api/move", `{"fen":"`+startFEN+`","move":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}

	resp := decodeMoveResponse(t, w)
	if resp.EngineMove != "e2e4" {
		t.Fatalf("engine move = %q, want e2e4", resp.EngineMove)
	}
	if !strings.Contains(resp.Commentary, "e2e4") {
		t.Fatalf("opening commentary should name the move: %q", resp.Commentary)
	}
}

func TestProcessMoveEngineUnavailable(t *testing.T) {
	cfg := &config.Config{}
	cfg.Engine.Path = "/nonexistent/stockfish"
	router := NewRouter(cfg)

	w := postJSON(t, router, "/api/move", `{"fen":"`+startFEN+`","move":"e2e4"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 (body %q)", w.Code, w.Body.String())
	}
	// The diagnostic names the misconfigured path.
	if !strings.Contains(w.Body.String(), "ENGINE_PATH") {
		t.Fatalf("error body should carry diagnostics: %q", w.Body.String())
	}
}

func TestImprovementTipsEndpoint(t *testing.T) {
	router := NewRouter(&config.Config{})

	w := postJSON(t, router, "/api/improvement-tips",
		`{"move":"d1h5","evaluation":-2.5,"previousEvaluation":0.0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp models.TipsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Tips == "" {
		t.Fatal("expected a tip for a large eval drop")
	}
}

func TestImprovementTipsEndpointGoodMove(t *testing.T) {
	router := NewRouter(&config.Config{})

	w := postJSON(t, router, "/api/improvement-tips",
		`{"move":"e2e4","evaluation":0.3,"previousEvaluation":0.1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp models.TipsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Tips != "" {
		t.Fatalf("good move should get no tip, got %q", resp.Tips)
	}
}

func TestImprovementTipsEndpointBadBody(t *testing.T) {
	router := NewRouter(&config.Config{})

	w := postJSON(t, router, "/api/improvement-tips", `{"move": `)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even for bad input", w.Code)
	}
	if !strings.Contains(w.Body.String(), cannedTip) {
		t.Fatalf("bad input should degrade to the canned tip, got %q", w.Body.String())
	}
}

package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

func writeFakeBinary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("writeFakeBinary: %v", err)
	}
	return path
}

func stubWellKnownPaths(t *testing.T, paths []string) {
	t.Helper()
	orig := wellKnownEnginePaths
	wellKnownEnginePaths = paths
	t.Cleanup(func() { wellKnownEnginePaths = orig })
}

func TestResolveEnginePathExplicitOverride(t *testing.T) {
	bin := writeFakeBinary(t, t.TempDir(), "stockfish")
	cfg := &config.Config{}
	cfg.Engine.Path = bin

	got, err := ResolveEnginePath(cfg)
	if err != nil {
		t.Fatalf("ResolveEnginePath error: %v", err)
	}
	if got != bin {
		t.Fatalf("ResolveEnginePath = %q, want %q", got, bin)
	}
}

func TestResolveEnginePathInvalidOverrideFailsFast(t *testing.T) {
	// A usable well-known candidate exists, but the misconfigured explicit
	// override must still fail rather than silently fall back.
	dir := t.TempDir()
	stubWellKnownPaths(t, []string{writeFakeBinary(t, dir, "stockfish")})

	cfg := &config.Config{}
	cfg.Engine.Path = filepath.Join(dir, "does-not-exist")

	_, err := ResolveEnginePath(cfg)
	if err == nil {
		t.Fatal("ResolveEnginePath should fail for a missing override")
	}
	if !strings.Contains(err.Error(), "ENGINE_PATH") {
		t.Fatalf("error should name the override, got: %v", err)
	}
}

func TestResolveEnginePathNonExecutableOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stockfish")
	if err := os.WriteFile(path, []byte("not a program"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := &config.Config{}
	cfg.Engine.Path = path

	_, err := ResolveEnginePath(cfg)
	if err == nil || !strings.Contains(err.Error(), "not executable") {
		t.Fatalf("expected not-executable error, got: %v", err)
	}
}

func TestResolveEnginePathWellKnownOrder(t *testing.T) {
	dir := t.TempDir()
	bin := writeFakeBinary(t, dir, "stockfish")
	stubWellKnownPaths(t, []string{filepath.Join(dir, "missing"), bin})

	cfg := &config.Config{}
	got, err := ResolveEnginePath(cfg)
	if err != nil {
		t.Fatalf("ResolveEnginePath error: %v", err)
	}
	if got != bin {
		t.Fatalf("ResolveEnginePath = %q, want %q", got, bin)
	}
}

func TestResolveEnginePathFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	bin := writeFakeBinary(t, dir, "stockfish")
	stubWellKnownPaths(t, nil)
	t.Setenv("PATH", dir)

	cfg := &config.Config{}
	got, err := ResolveEnginePath(cfg)
	if err != nil {
		t.Fatalf("ResolveEnginePath error: %v", err)
	}
	if got != bin {
		t.Fatalf("ResolveEnginePath = %q, want %q", got, bin)
	}
}

func TestResolveEnginePathNotFound(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	stubWellKnownPaths(t, []string{missing})
	t.Setenv("PATH", dir)

	cfg := &config.Config{}
	_, err := ResolveEnginePath(cfg)
	if !errors.Is(err, ErrEngineNotFound) {
		t.Fatalf("expected ErrEngineNotFound, got: %v", err)
	}
	// Diagnostics carry every rejected candidate.
	if !strings.Contains(err.Error(), missing) || !strings.Contains(err.Error(), "$PATH") {
		t.Fatalf("error should list checked candidates, got: %v", err)
	}
}

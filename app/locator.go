// Engine binary discovery. Resolution runs on every request because the
// binary can move between deployments without the process restarting.

package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

var ErrEngineNotFound = errors.New("no usable engine binary found")

// wellKnownEnginePaths is the conventional install list, checked in order.
// Package var so tests can stub it.
var wellKnownEnginePaths = []string{
	"/usr/bin/stockfish",
	"/usr/local/bin/stockfish",
	"/usr/games/stockfish",
	"/opt/homebrew/bin/stockfish",
}

// engineBinaryName is what we ask the OS search path for as a last resort.
var engineBinaryName = "stockfish"

// ResolveEnginePath finds an executable engine binary. An explicit
// ENGINE_PATH override always wins; if it is set but unusable we fail fast
// with the reason rather than silently fall through, since a misconfigured
// override is an operator error. Without an override we walk the well-known
// install locations and finally the OS search path, returning the first
// candidate that exists and is executable. Every rejected candidate's reason
// is carried in the returned error for operational debugging.
func ResolveEnginePath(cfg *config.Config) (string, error) {
	if p := cfg.Engine.Path; p != "" {
		if err := checkExecutable(p); err != nil {
			return "", fmt.Errorf("ENGINE_PATH %q is not usable: %w", p, err)
		}
		return p, nil
	}

	var reasons []string
	for _, p := range wellKnownEnginePaths {
		if err := checkExecutable(p); err != nil {
			reasons = append(reasons, fmt.Sprintf("%s: %v", p, err))
			continue
		}
		return p, nil
	}

	if p, err := exec.LookPath(engineBinaryName); err == nil {
		return p, nil
	} else {
		reasons = append(reasons, fmt.Sprintf("$PATH: %v", err))
	}

	return "", fmt.Errorf("%w (checked: %s)", ErrEngineNotFound, strings.Join(reasons, "; "))
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	if info.Mode().Perm()&0o111 == 0 {
		return errors.New("not executable")
	}
	return nil
}

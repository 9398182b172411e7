package app

import (
	"log"
	"strings"
	"time"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

const keepAliveInterval = 30 * time.Second

// StartKeepAlive pings the service's own health endpoint so free-tier hosts
// don't idle the instance out. Fire and forget for the process lifetime:
// no handle is retained, errors are logged and swallowed, and request
// handling never waits on it. A no-op unless EXTERNAL_URL is set.
func StartKeepAlive(cfg *config.Config) {
	base := cfg.Server.ExternalURL
	if base == "" {
		return
	}
	target := strings.TrimRight(base, "/") + "/health"

	go func() {
		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()
		for range ticker.C {
			resp, err := httpc.Get(target)
			if err != nil {
				log.Printf("keepalive: ping %s failed: %v", target, err)
				continue
			}
			resp.Body.Close()
		}
	}()
}

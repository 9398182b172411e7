package main

import (
	"log"

	"github.com/uchihaitachilz/Ai-chess-bot/app"
	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app.StartKeepAlive(cfg)

	router := app.NewRouter(cfg)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

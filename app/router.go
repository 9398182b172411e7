// Package app wires shared HTTP routes for both local and Lambda execution.
package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/uchihaitachilz/Ai-chess-bot/app/config"
)

// NewRouter builds the shared HTTP router for both local and Lambda execution.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/", Health)
	router.GET("/health", Health)
	router.POST("/api/move", ProcessMove(cfg))
	router.POST("/api/improvement-tips", ImprovementTips(cfg))

	return router
}

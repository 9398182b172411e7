package config

import (
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Logs   LogConfig
	Server ServerConfig
	Engine EngineConfig
	OpenAI OpenAIConfig
}

type LogConfig struct {
	Style string
	Level string
}

type ServerConfig struct {
	Addr        string
	ExternalURL string // externally reachable base URL; empty disables the keep-alive pinger
}

type EngineConfig struct {
	Path        string // explicit engine binary override; empty means discover
	MoveTime    int
	DepthOrTime bool //true for depth, false for time
	Depth       int
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LoadConfig reads everything from the environment once at startup.
// Every knob here is optional: the service must be able to boot with nothing
// but a PATH-visible engine, so missing vars fall back to defaults instead of
// killing the process.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: os.Getenv("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Addr:        "0.0.0.0:" + getenvDefault("PORT", "8080"),
			ExternalURL: os.Getenv("EXTERNAL_URL"),
		},
		Engine: EngineConfig{
			Path:        os.Getenv("ENGINE_PATH"),
			MoveTime:    getenvInt("ENGINE_MOVE_TIME", 500),
			Depth:       getenvInt("ENGINE_DEPTH", 12),
			DepthOrTime: getenvBool("ENGINE_DEPTH_OR_TIME", true),
		},
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: getenvDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getenvDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		},
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

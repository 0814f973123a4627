package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the whole service configuration. Required fields abort startup:
// running with empty credentials is never the right fallback.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	PostgresURL    string        `env:"POSTGRES_URL,required"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	QuizSessionTTL time.Duration `env:"QUIZ_SESSION_TTL" envDefault:"2h"`
}

func Load() (*Config, error) {
	// Local dev convenience; missing .env is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Telegram Bot API
	TelegramAPIURL  string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	TelegramTimeout time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`

	// Reward delivery. When true, /api/deliver only issues codes for
	// payloads with a recorded completed payment.
	RequirePaidDelivery bool `env:"REQUIRE_PAID_DELIVERY" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// TokenPrefix returns a redacted form of the bot token safe for logs.
func (c *Config) TokenPrefix() string {
	if len(c.BotToken) <= 10 {
		return "***"
	}
	return c.BotToken[:10] + "***"
}

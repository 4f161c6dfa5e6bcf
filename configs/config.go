package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv      string        `envconfig:"APP_ENV" default:"development"`
	Port        string        `envconfig:"PORT" default:"8000"`
	DBDriver    string        `envconfig:"DB_DRIVER" default:"sqlite"`
	DBSource    string        `envconfig:"DB_SOURCE" default:"marketplace.db"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"changeme"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"24h"`
	CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	SeedDemo      bool   `envconfig:"SEED_DEMO" default:"false"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development") || strings.EqualFold(c.AppEnv, "dev")
}

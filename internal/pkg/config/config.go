package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	TokenStoreFile   = "file"
	TokenStoreRedis  = "redis"
	TokenStoreMemory = "memory"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	API    APIConfig
	Tokens TokenConfig
	Redis  RedisConfig
	Stub   StubConfig
}

type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:8000"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=30s"`
}

// TokenConfig selects the durable slot that holds the bearer token between runs.
type TokenConfig struct {
	Store string `env:"TOKEN_STORE, default=file"`
	File  string `env:"TOKEN_FILE"`
	Key   string `env:"TOKEN_KEY,   default=token"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,       default=0"`
	Prefix   string        `env:"REDIS_PREFIX,   default=jobboard:session:"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,  default=3s"`
}

type StubConfig struct {
	Port      string        `env:"STUB_PORT,  default=8000"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
}

// Load reads optional .env files, then the process environment.
// Missing env files are ignored; values already set in the environment win.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith processes configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	switch cfg.Tokens.Store {
	case TokenStoreFile, TokenStoreRedis, TokenStoreMemory:
	default:
		return nil, fmt.Errorf("config: unknown TOKEN_STORE %q", cfg.Tokens.Store)
	}

	if cfg.Tokens.Store == TokenStoreFile && cfg.Tokens.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home dir for TOKEN_FILE: %w", err)
		}
		cfg.Tokens.File = filepath.Join(home, ".jobboard", "session.json")
	}
	return &cfg, nil
}

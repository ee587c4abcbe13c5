package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultRunAddress = "localhost:5000"
	defaultSecret     = "SecRetKey"
	defaultTokenTTL   = 24 * time.Hour
)

// Config - настройки локального тестового бэкенда
type Config struct {
	Env             string        `mapstructure:"app_env"`
	RunAddress      string        `mapstructure:"run_address"`
	Secret          string        `mapstructure:"secret"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
	LogLevel        string        `mapstructure:"log_level"`
	SeedPath        string        `mapstructure:"seed_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации сервера: %v", err))
	}
	return cfg
}

// Load читает .env и переменные окружения (RUN_ADDRESS, SECRET, TOKEN_TTL, SEED_PATH ...)
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("secret", defaultSecret)
	v.SetDefault("token_ttl", defaultTokenTTL)
	v.SetDefault("log_level", "info")
	v.SetDefault("seed_path", "")
	v.SetDefault("shutdown_timeout", 5*time.Second)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.RunAddress == "" {
		return nil, errors.New("run_address не может быть пустым")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token_ttl должен быть положительным, получено %s", cfg.TokenTTL)
	}
	if cfg.Env == EnvProd && cfg.Secret == defaultSecret {
		return nil, errors.New("в prod нужно задать secret")
	}

	return cfg, nil
}

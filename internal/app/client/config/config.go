package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"murojaat/internal/domain/role"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultServerAddress = "localhost:5000"
	defaultLogLevel      = "info"
	defaultEnv           = EnvLocal
	defaultConfigDir     = ".murojaat"
	defaultStateFile     = "state.db"
	defaultConfigFile    = "config.yaml"
	defaultHTTPTimeout   = 30 * time.Second
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	ServerAddress string        `mapstructure:"server_address"`
	EnableTLS     bool          `mapstructure:"enable_tls"`
	LogLevel      string        `mapstructure:"log_level"`
	ConfigDir     string        `mapstructure:"config_dir"`
	StatePath     string        `mapstructure:"state_path"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	Role          string        `mapstructure:"role"`
	// Passphrase включает шифрование токенов в файле состояния
	Passphrase string `mapstructure:"storage_passphrase"`
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке
func MustLoad(configFile string) *Config {
	cfg, err := Load(configFile)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, переменные окружения и YAML-файл (по умолчанию ~/.murojaat/config.yaml)
func Load(configFile string) (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("enable_tls", false)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("config_dir", "")
	v.SetDefault("state_path", "")
	v.SetDefault("http_timeout", defaultHTTPTimeout)
	v.SetDefault("role", string(role.Admin))
	v.SetDefault("storage_passphrase", "")

	configDir := v.GetString("config_dir")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, defaultConfigDir)
	}

	explicit := configFile != ""
	if !explicit {
		configFile = filepath.Join(configDir, defaultConfigFile)
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = configDir
	}
	if cfg.StatePath == "" {
		cfg.StatePath = filepath.Join(cfg.ConfigDir, defaultStateFile)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureDir создаёт каталог конфигурации, если его нет
func (c *Config) EnsureDir() error {
	if err := os.MkdirAll(filepath.Dir(c.StatePath), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return nil
}

// BaseURL - адрес сервера со схемой
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return strings.TrimRight(c.ServerAddress, "/")
	}
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + strings.TrimRight(c.ServerAddress, "/")
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("server_address не может быть пустым")
	}
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("неизвестное окружение app_env: %q", c.Env)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout должен быть положительным, получено %s", c.HTTPTimeout)
	}
	if _, err := role.Lookup(c.Role); err != nil {
		return err
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}

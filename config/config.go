package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port           int      `yaml:"port" split_words:"true"`
	AllowedOrigins []string `yaml:"allowedOrigins" split_words:"true"`
	MaxUploadBytes int64    `yaml:"maxUploadBytes" split_words:"true"`
}

type GeminiConfig struct {
	ApiKey string `yaml:"apiKey" split_words:"true"`
	Model  string `yaml:"model" split_words:"true"`
}

type EmotionConfig struct {
	Endpoint        string        `yaml:"endpoint" split_words:"true"`
	DetectorBackend string        `yaml:"detectorBackend" split_words:"true"`
	Timeout         time.Duration `yaml:"timeout" split_words:"true"`
}

// RedisConfig enables the advice rate limit when Addr is set.
type RedisConfig struct {
	Addr         string        `yaml:"addr" split_words:"true"`
	Password     string        `yaml:"password" split_words:"true"`
	DB           int           `yaml:"db" split_words:"true"`
	AdviceLimit  int           `yaml:"adviceLimit" split_words:"true"`
	AdviceWindow time.Duration `yaml:"adviceWindow" split_words:"true"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" split_words:"true"`
	Directory  string `yaml:"directory" split_words:"true"`
	MaxSize    int    `yaml:"maxSize" split_words:"true"`
	MaxBackups int    `yaml:"maxBackups" split_words:"true"`
	MaxAge     int    `yaml:"maxAge" split_words:"true"`
	Compress   bool   `yaml:"compress" split_words:"true"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server" split_words:"true"`
	Gemini  GeminiConfig  `yaml:"gemini" split_words:"true"`
	Emotion EmotionConfig `yaml:"emotion" split_words:"true"`
	Redis   RedisConfig   `yaml:"redis" split_words:"true"`
	Logging LoggingConfig `yaml:"logging" split_words:"true"`
}

// EnvPrefix prefixes every environment override, e.g. STRESS_SERVER_PORT.
const EnvPrefix = "STRESS"

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:5173"},
			MaxUploadBytes: 10 << 20,
		},
		Gemini: GeminiConfig{
			Model: "gemini-1.5-flash-latest",
		},
		Emotion: EmotionConfig{
			Endpoint:        "http://localhost:5005",
			DetectorBackend: "opencv",
			Timeout:         30 * time.Second,
		},
		Redis: RedisConfig{
			AdviceLimit:  5,
			AdviceWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Directory:  "logs",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

// LoadConfig reads the configuration file over the defaults, then applies
// .env and environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	if cfg.Gemini.ApiKey == "" {
		cfg.Gemini.ApiKey = firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with. A missing Gemini
// key is allowed; advice requests then fail.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("maxUploadBytes must be positive")
	}
	if c.Emotion.Endpoint == "" {
		return fmt.Errorf("emotion endpoint is required")
	}
	if c.Redis.Addr != "" && (c.Redis.AdviceLimit <= 0 || c.Redis.AdviceWindow <= 0) {
		return fmt.Errorf("redis advice limit and window must be positive")
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

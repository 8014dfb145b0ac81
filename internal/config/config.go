package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Random     RandomConfig     `yaml:"random"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOriginsRaw string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods    string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,HEAD,OPTIONS"`
	AllowedHeaders    string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials  bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge            int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`

	// AllowedOrigins is parsed from AllowedOriginsRaw during validation.
	AllowedOrigins []string `yaml:"-" env:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DictionaryConfig holds settings for the upstream dictionary provider.
type DictionaryConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"DICT_BASE_URL"       env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout       time.Duration `yaml:"timeout"        env:"DICT_TIMEOUT"        env-default:"10s"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"DICT_RETRY_DELAY"    env-default:"500ms"`
	HealthTimeout time.Duration `yaml:"health_timeout" env:"DICT_HEALTH_TIMEOUT" env-default:"3s"`
}

// RandomConfig holds settings for the random-word endpoint.
// An empty WordsPath selects the built-in word list.
type RandomConfig struct {
	WordsPath string `yaml:"words_path" env:"RANDOM_WORDS_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Fallback  FallbackConfig  `yaml:"fallback"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Static    StaticConfig    `yaml:"static"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LexiconConfig locates the Lexique TSV dataset loaded at startup.
// A path ending in .gz is decompressed on the fly.
type LexiconConfig struct {
	Path string `yaml:"path" env:"LEXICON_PATH" env-default:"./Lexique383.tsv"`
}

// FallbackConfig controls the Wiktionary lookup used for words missing
// from the lexicon. The fallback is on unless Disabled is set.
type FallbackConfig struct {
	Disabled          bool          `yaml:"disabled"            env:"FALLBACK_DISABLED"`
	BaseURL           string        `yaml:"base_url"            env:"FALLBACK_BASE_URL"            env-default:"https://fr.wiktionary.org/wiki"`
	UserAgent         string        `yaml:"user_agent"          env:"FALLBACK_USER_AGENT"          env-default:"legenre/1.0 (+https://github.com/heartmarshall/legenre)"`
	Timeout           time.Duration `yaml:"timeout"             env:"FALLBACK_TIMEOUT"             env-default:"5s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"FALLBACK_REQUESTS_PER_SECOND" env-default:"5"`
	Burst             int           `yaml:"burst"               env:"FALLBACK_BURST"               env-default:"5"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"      env:"FALLBACK_MAX_BODY_BYTES"      env-default:"4194304"`
	MasculineMarker   string        `yaml:"masculine_marker"    env:"FALLBACK_MASCULINE_MARKER"    env-default:"masculin"`
	FeminineMarker    string        `yaml:"feminine_marker"     env:"FALLBACK_FEMININE_MARKER"     env-default:"féminin"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the per-IP limit applied to /api/ routes.
// The limit is on unless Disabled is set.
type RateLimitConfig struct {
	Disabled          bool          `yaml:"disabled"            env:"RATE_LIMIT_DISABLED"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}

// StaticConfig points at an optional directory served under "/".
type StaticConfig struct {
	Dir string `yaml:"dir" env:"STATIC_DIR"`
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the game binaries.
type Config struct {
	Port            string `mapstructure:"port"`
	LogLevel        string `mapstructure:"log_level"`
	LogFormat       string `mapstructure:"log_format"`
	LogFile         string `mapstructure:"log_file"`
	SessionSecret   string `mapstructure:"session_secret"`
	SessionTTLHours int    `mapstructure:"session_ttl_hours"`
	ClientOrigin    string `mapstructure:"client_origin"`
	WordsDir        string `mapstructure:"words_dir"`
	WordsDB         string `mapstructure:"words_db"`
	Seed            string `mapstructure:"seed"`
}

var keys = []string{
	"port", "log_level", "log_format", "log_file",
	"session_secret", "session_ttl_hours", "client_origin",
	"words_dir", "words_db", "seed",
}

// Load reads .env (if present) into the environment, then environment
// variables over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees env values for keys viper knows about.
	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = 24
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5175")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("log_file", "")
	v.SetDefault("session_secret", "dev_secret_change_me")
	v.SetDefault("session_ttl_hours", 24)
	v.SetDefault("client_origin", "http://localhost:5173")
	v.SetDefault("words_dir", "")
	v.SetDefault("words_db", "")
	v.SetDefault("seed", "")
}

// SessionTTL is the lifetime of issued session tokens.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// NewLogger builds the zerolog logger described by the config and installs
// its level globally. Output goes to w unless LOG_FILE is set.
func (c *Config) NewLogger(w *os.File) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	out, cleanup := w, func() {}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out, cleanup = f, func() { _ = f.Close() }
	}

	var logger zerolog.Logger
	if c.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(out).With().Timestamp().Logger()
	}
	return logger, cleanup, nil
}

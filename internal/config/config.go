package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aleksamarkoni/uva-command-line/client"
)

// LocalBaseURL is used for both the judge and uHunt in dev mode
const LocalBaseURL = "http://localhost:8080"

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Settings is everything a command needs to build a client and a store.
type Settings struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	UHuntURL     string        `mapstructure:"uhunt_url" validate:"required,url"`
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"min=100ms"`
	PollTimeout  time.Duration `mapstructure:"poll_timeout" validate:"min=0"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout" validate:"min=0"`
	ConfigDir    string        `mapstructure:"config_dir" validate:"required"`
	Backend      string        `mapstructure:"session_backend" validate:"oneof=file redis"`

	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" validate:"min=0"`
	Profile       string `mapstructure:"profile" validate:"required"`
}

var settingKeys = []string{
	"base_url", "uhunt_url", "poll_interval", "poll_timeout", "http_timeout",
	"config_dir", "session_backend", "redis_addr", "redis_password", "redis_db",
	"profile", "dev_mode",
}

// LoadSettings reads UVA_* environment variables, after loading an optional
// .env file from the working directory, and validates the result.
func LoadSettings() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("ignoring .env: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("UVA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range settingKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	v.SetDefault("base_url", client.DefaultBaseURL)
	v.SetDefault("uhunt_url", client.DefaultUHuntURL)
	v.SetDefault("poll_interval", client.DefaultPollInterval)
	v.SetDefault("poll_timeout", time.Duration(0))
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("config_dir", filepath.Join(home, ".uva-cli"))
	v.SetDefault("session_backend", BackendFile)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("profile", "default")

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if v.GetBool("dev_mode") {
		s.BaseURL = LocalBaseURL
		s.UHuntURL = LocalBaseURL + "/api"
	}

	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// Client builds a judge client from the settings.
func (s *Settings) Client() (*client.Client, error) {
	return client.New(s.BaseURL, s.UHuntURL, s.HTTPTimeout)
}

// Store opens the configured credential store.
func (s *Settings) Store() (client.CredentialStore, error) {
	switch s.Backend {
	case BackendRedis:
		return NewRedisStore(s.RedisAddr, s.RedisPassword, s.RedisDB, s.Profile), nil
	case BackendFile, "":
		return NewFileStore(s.ConfigDir), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", s.Backend)
	}
}

// WatchOptions turns the poll settings into poller options.
func (s *Settings) WatchOptions() client.WatchOptions {
	return client.WatchOptions{Interval: s.PollInterval, Timeout: s.PollTimeout}
}

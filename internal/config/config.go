// Package config handles resolving configuration.
package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"buf.build/go/protovalidate"
	"buf.build/go/protoyaml"
	"github.com/adrg/xdg"
	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"

	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
)

// EnvPrefix is prepended to the env tag of every overridable field.
const EnvPrefix = "LARDER_"

// Default returns a version of the config with all default values populated.
// Note that this configuration is _not_ valid, as the user must set
// session_key.
func Default() *larderv1.Config {
	return larderv1.Config_builder{
		LogLevel:   larderv1.Config_INFO,
		WebAddress: "localhost:9999",
		DbFilepath: filepath.Join(xdg.DataHome, "larder", "db.sqlite"),
		SessionKey: "", // must be set by the user
	}.Build()
}

// Load loads a YAML configuration file from a path, merges it with defaults,
// applies environment overrides, and validates it for completeness.
func Load(path string) (*larderv1.Config, error) {
	return load(path, nil)
}

func load(path string, environ map[string]string) (*larderv1.Config, error) {
	bytes, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	fileConfig := &larderv1.Config{}
	if err = (protoyaml.UnmarshalOptions{Path: path}).Unmarshal(bytes, fileConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	cfg := Default()
	proto.Merge(cfg, fileConfig)
	if err = applyEnv(cfg, environ); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if err = Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overrides are the LARDER_* variables layered on top of the file. Each field
// starts at the current config value so unset variables change nothing.
type overrides struct {
	LogLevel      string        `env:"LOG_LEVEL"`
	WebAddress    string        `env:"WEB_ADDRESS"`
	DBFilepath    string        `env:"DB_FILEPATH"`
	SessionKey    string        `env:"SESSION_KEY"`
	SessionTTL    time.Duration `env:"SESSION_TTL"`
	SecureCookies bool          `env:"SECURE_COOKIES"`
	DevMode       bool          `env:"DEV_MODE"`
}

func applyEnv(cfg *larderv1.Config, environ map[string]string) error {
	vars := overrides{
		LogLevel:      cfg.GetLogLevel().String(),
		WebAddress:    cfg.GetWebAddress(),
		DBFilepath:    cfg.GetDbFilepath(),
		SessionKey:    cfg.GetSessionKey(),
		SessionTTL:    cfg.GetSessionTtl().AsDuration(),
		SecureCookies: cfg.GetSecureCookies(),
		DevMode:       cfg.GetDevMode(),
	}
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.Parse(&vars, opts); err != nil {
		return err
	}
	lvl, ok := larderv1.Config_LogLevel_value[strings.ToUpper(vars.LogLevel)]
	if !ok {
		return fmt.Errorf("unknown log level %q", vars.LogLevel)
	}
	cfg.SetLogLevel(larderv1.Config_LogLevel(lvl))
	cfg.SetWebAddress(vars.WebAddress)
	cfg.SetDbFilepath(vars.DBFilepath)
	cfg.SetSessionKey(vars.SessionKey)
	if vars.SessionTTL != cfg.GetSessionTtl().AsDuration() {
		cfg.SetSessionTtl(durationpb.New(vars.SessionTTL))
	}
	cfg.SetSecureCookies(vars.SecureCookies)
	cfg.SetDevMode(vars.DevMode)
	return nil
}

// Validate checks the config for completeness.
func Validate(cfg *larderv1.Config) error {
	if err := protovalidate.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Write marshals the config to YAML at path, readable only by the owner.
func Write(path string, cfg *larderv1.Config) error {
	data, err := protoyaml.MarshalOptions{UseProtoNames: true}.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil { //nolint:mnd // owner rwx access
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil { //nolint:mnd // owner rw access
		return fmt.Errorf("failed to write config file to %s: %w", path, err)
	}
	return nil
}

// NewSessionKey returns a random key suitable for signing session tokens.
func NewSessionKey() string {
	return rand.Text() + rand.Text()
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment, if one exists.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

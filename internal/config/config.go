// Package config loads server configuration from a YAML file, FLASHRECALL_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/and161185/flashrecall/internal/srs"
)

// EnvPrefix prefixes every environment variable. Nested keys use "__",
// dashes use "_": FLASHRECALL_DUE__DEFAULT_LIMIT sets due.default-limit.
const EnvPrefix = "FLASHRECALL_"

// Config is the complete server configuration.
type Config struct {
	Addr      string    `koanf:"addr" validate:"required"`
	Dev       bool      `koanf:"dev"`
	LogLevel  string    `koanf:"log-level" validate:"oneof=debug info warn error"`
	Storage   Storage   `koanf:"storage"`
	Auth      Auth      `koanf:"auth"`
	TLS       TLS       `koanf:"tls"`
	Due       Due       `koanf:"due"`
	Import    Import    `koanf:"import"`
	Scheduler Scheduler `koanf:"scheduler"`
}

// Storage selects the repository backend. DSN is a Postgres connection string
// or a SQLite file path; Migrate applies the embedded schema on startup.
type Storage struct {
	Driver  string `koanf:"driver" validate:"oneof=postgres sqlite"`
	DSN     string `koanf:"dsn" validate:"required"`
	Migrate bool   `koanf:"migrate"`
}

// Auth holds the bearer token settings.
type Auth struct {
	// JWTKey verifies HS256 bearer tokens.
	JWTKey string `koanf:"jwt-key" validate:"required,min=16"`
}

// TLS enables gRPC over TLS when both files are set. Leave both empty for plaintext.
type TLS struct {
	Cert string `koanf:"cert" validate:"required_with=Key"`
	Key  string `koanf:"key" validate:"required_with=Cert"`
}

// Enabled reports whether both certificate and key are configured.
func (t TLS) Enabled() bool { return t.Cert != "" && t.Key != "" }

// Due bounds the due-cards read: page size limits and the storage query timeout.
type Due struct {
	DefaultLimit int           `koanf:"default-limit" validate:"gte=1,ltefield=MaxLimit"`
	MaxLimit     int           `koanf:"max-limit" validate:"gte=1,lte=10000"`
	QueryTimeout time.Duration `koanf:"query-timeout" validate:"gt=0"`
}

// Import caps how many cards a single import request may carry.
type Import struct {
	MaxBatch int `koanf:"max-batch" validate:"gte=1,lte=100000"`
}

// Scheduler mirrors srs.Params.
type Scheduler struct {
	AgainEaseDelta    float64 `koanf:"again-ease-delta"`
	HardEaseDelta     float64 `koanf:"hard-ease-delta"`
	EasyEaseDelta     float64 `koanf:"easy-ease-delta"`
	HardMultiplier    float64 `koanf:"hard-multiplier"`
	EasyBonus         float64 `koanf:"easy-bonus"`
	LapseInterval     int     `koanf:"lapse-interval"`
	FirstEasyInterval int     `koanf:"first-easy-interval"`
	MaximumInterval   int     `koanf:"maximum-interval"`
}

// Params converts the section into calculator coefficients.
func (s Scheduler) Params() srs.Params {
	return srs.Params{
		AgainEaseDelta:    s.AgainEaseDelta,
		HardEaseDelta:     s.HardEaseDelta,
		EasyEaseDelta:     s.EasyEaseDelta,
		HardMultiplier:    s.HardMultiplier,
		EasyBonus:         s.EasyBonus,
		LapseInterval:     s.LapseInterval,
		FirstEasyInterval: s.FirstEasyInterval,
		MaximumInterval:   s.MaximumInterval,
	}
}

// FlagSet declares every option with its default value.
func FlagSet() *pflag.FlagSet {
	d := srs.DefaultParams()
	fs := pflag.NewFlagSet("flashrecall", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("addr", ":8443", "gRPC listen address")
	fs.Bool("dev", false, "development logging")
	fs.String("log-level", "info", "log level: debug|info|warn|error")

	fs.String("storage.driver", "sqlite", "storage backend: postgres|sqlite")
	fs.String("storage.dsn", "flashrecall.db", "database DSN (postgres URL or sqlite path)")
	fs.Bool("storage.migrate", true, "apply embedded migrations on startup")

	fs.String("auth.jwt-key", "", "HS256 key used to verify bearer tokens")
	fs.String("tls.cert", "", "TLS certificate file")
	fs.String("tls.key", "", "TLS key file")

	fs.Int("due.default-limit", 50, "due cards returned when the request sets no limit")
	fs.Int("due.max-limit", 500, "upper bound for a requested due limit")
	fs.Duration("due.query-timeout", 3*time.Second, "due query timeout; on expiry nothing is returned")
	fs.Int("import.max-batch", 1000, "maximum cards per import request")

	fs.Float64("scheduler.again-ease-delta", d.AgainEaseDelta, "ease change on Again")
	fs.Float64("scheduler.hard-ease-delta", d.HardEaseDelta, "ease change on Hard")
	fs.Float64("scheduler.easy-ease-delta", d.EasyEaseDelta, "ease change on Easy")
	fs.Float64("scheduler.hard-multiplier", d.HardMultiplier, "interval multiplier on Hard")
	fs.Float64("scheduler.easy-bonus", d.EasyBonus, "extra multiplier on Easy")
	fs.Int("scheduler.lapse-interval", d.LapseInterval, "interval in days after Again")
	fs.Int("scheduler.first-easy-interval", d.FirstEasyInterval, "interval in days for Easy on a new card")
	fs.Int("scheduler.maximum-interval", d.MaximumInterval, "interval cap in days")
	return fs
}

// Load parses args and merges file, environment and flags into a validated Config.
func Load(args []string) (*Config, error) {
	fs := FlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	s = strings.ReplaceAll(s, "__", ".")
	return strings.ReplaceAll(s, "_", "-")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the scheduler coefficients.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.Scheduler.Params().Validate()
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/ucsb-cs156/crudapi/pkg/loaders"
)

var (
	ErrMissingSecret = errors.New("auth secret is required")
)

type Config struct {
	Server Server
	API    API
	Store  Store
	Auth   Auth
}

// Server configuration
type Server struct {
	Env        string `env:"SRV_ENV" flag:"env" usage:"runtime environment, dev or prod"`
	ConfigFile string `env:"SRV_CONFIG_FILE" flag:"config" usage:"configuration file (.env, .json or .yaml)"`
}

// API configuration
type API struct {
	Port            string        `env:"API_PORT" flag:"port" usage:"listen address"`
	ShutdownTimeout time.Duration `env:"API_SHUTDOWN_TIMEOUT" flag:"shutdown-timeout" usage:"grace period for in-flight requests"`
}

// Store configuration
type Store struct {
	Driver string `env:"STORE_DRIVER" flag:"store-driver" usage:"sqlite, memory or file"`
	DSN    string `env:"STORE_DSN" flag:"store-dsn" usage:"sqlite database path, or directory for the file driver"`
}

// Auth configuration
type Auth struct {
	Secret   string        `env:"AUTH_SECRET" flag:"auth-secret" usage:"HMAC secret used to sign bearer tokens"`
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" flag:"token-ttl" usage:"lifetime of issued tokens"`
	Users    []string      `env:"AUTH_USERS" flag:"users" usage:"comma separated name:ROLE[+ROLE]:bcrypt-hash entries"`
}

func defaults() *Config {
	return &Config{
		Server: Server{
			Env:        "prod",
			ConfigFile: ".env",
		},
		API: API{
			Port:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Store: Store{
			Driver: "sqlite",
			DSN:    "crud.db",
		},
		Auth: Auth{
			TokenTTL: 24 * time.Hour,
		},
	}
}

func (c *Config) sections() []any {
	return []any{
		&c.Server,
		&c.API,
		&c.Store,
		&c.Auth,
	}
}

// RegisterFlags adds a flag for every configuration field to flags.
func RegisterFlags(flags *pflag.FlagSet) error {
	for _, section := range defaults().sections() {
		if err := loaders.RegisterFlags(flags, section); err != nil {
			return err
		}
	}
	return nil
}

// Load builds the configuration from defaults, the environment, the
// configuration file and finally flags. Later sources win.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfg := defaults()

	// the file name itself may only come from env or flags
	early := loaders.NewChainLoader(loaders.NewEnvloader(), loaders.NewFlagLoader(flags))
	if err := early.Load(&cfg.Server); err != nil {
		return nil, err
	}

	loader := loaders.NewChainLoader(
		loaders.NewEnvloader(),
		loaders.NewFileLoader(cfg.Server.ConfigFile),
		loaders.NewFlagLoader(flags),
	)

	for _, section := range cfg.sections() {
		err := loader.Load(section)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("invalid config: %w", ErrMissingSecret)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid config: token ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}


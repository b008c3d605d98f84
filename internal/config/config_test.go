package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
	"golang.org/x/crypto/bcrypt"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := RegisterFlags(flags); err != nil {
		t.Fatalf("unable to register flags: %s", err.Error())
	}
	if err := flags.Parse(args); err != nil {
		t.Fatalf("unable to parse flags: %s", err.Error())
	}
	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "s3cr3t")

	cfg, err := Load(newFlags(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	if cfg.Server.Env != "prod" || cfg.API.Port != ":8080" {
		t.Errorf("unexpected defaults: %+v %+v", cfg.Server, cfg.API)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.DSN != "crud.db" {
		t.Errorf("unexpected store defaults: %+v", cfg.Store)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, but got: %s", cfg.Auth.TokenTTL)
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_SECRET", "")

	_, err := Load(newFlags(t))
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected %v, but got: %v", ErrMissingSecret, err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "crud.yaml")
	content := "AUTH_SECRET: from-file\nAPI_PORT: \":9000\"\nSTORE_DRIVER: memory\nAUTH_USERS:\n  - admin:ADMIN:hash\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("unable to write config file: %s", err.Error())
	}

	t.Setenv("SRV_CONFIG_FILE", file)
	t.Setenv("API_PORT", ":7000")
	t.Setenv("SRV_ENV", "dev")

	cfg, err := Load(newFlags(t, "--store-driver", "file", "--token-ttl", "2h"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	if cfg.Auth.Secret != "from-file" {
		t.Errorf("expected secret from file, but got: %q", cfg.Auth.Secret)
	}
	if cfg.API.Port != ":9000" {
		t.Errorf("expected file to override env port, but got: %q", cfg.API.Port)
	}
	if cfg.Store.Driver != "file" {
		t.Errorf("expected flag to override file driver, but got: %q", cfg.Store.Driver)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("expected 2h token ttl, but got: %s", cfg.Auth.TokenTTL)
	}
	if cfg.Server.Env != "dev" {
		t.Errorf("expected dev env, but got: %q", cfg.Server.Env)
	}
	if len(cfg.Auth.Users) != 1 || cfg.Auth.Users[0] != "admin:ADMIN:hash" {
		t.Errorf("unexpected users: %v", cfg.Auth.Users)
	}
}

func TestLoadBcryptUsersFromDotenv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("AUTH_USERS", "")

	admin, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unable to hash password: %s", err.Error())
	}
	reader, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unable to hash password: %s", err.Error())
	}

	want := []string{"admin:ADMIN:" + string(admin), "reader:USER:" + string(reader)}
	content := "AUTH_SECRET=s3cr3t\nAUTH_USERS='" + strings.Join(want, ",") + "'\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("unable to write .env: %s", err.Error())
	}

	cfg, err := Load(newFlags(t))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if !slices.Equal(cfg.Auth.Users, want) {
		t.Fatalf("expected users %v, but got: %v", want, cfg.Auth.Users)
	}

	users, err := jwt.ParseUsers(cfg.Auth.Users)
	if err != nil {
		t.Fatalf("loaded hashes are not valid: %s", err.Error())
	}
	if _, err := users.Authenticate("reader", "letmein"); err != nil {
		t.Fatalf("unable to authenticate with loaded hash: %s", err.Error())
	}
}

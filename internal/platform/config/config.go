package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"paperdrill/internal/platform/clock"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	BackendSQLite = "sqlite"
	BackendSheets = "sheets"
)

type Config struct {
	AppPassword   string      `mapstructure:"app_password"`
	SessionSecret string      `mapstructure:"session_secret"`
	CookieSecure  bool        `mapstructure:"cookie_secure"`
	ListenAddr    string      `mapstructure:"listen_addr" validate:"required"`
	UTCOffset     string      `mapstructure:"utc_offset"`
	Store         StoreConfig `mapstructure:"store"`
	Log           LogConfig   `mapstructure:"log"`

	// Offset is UTCOffset parsed; "today" for the ledger is computed in it.
	Offset time.Duration `mapstructure:"-"`
}

type StoreConfig struct {
	Backend             string `mapstructure:"backend" validate:"oneof=sqlite sheets"`
	SQLitePath          string `mapstructure:"sqlite_path" validate:"required_if=Backend sqlite"`
	SheetID             string `mapstructure:"sheet_id" validate:"required_if=Backend sheets"`
	ServiceAccountEmail string `mapstructure:"service_account_email" validate:"required_if=Backend sheets,omitempty,email"`
	PrivateKey          string `mapstructure:"private_key" validate:"required_if=Backend sheets"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

var validate = validator.New()

// Load reads paperdrill.yaml (or cfgFile when set) and PAPERDRILL_* env vars
// over the defaults.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("paperdrill")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/paperdrill")
	}

	v.SetEnvPrefix("PAPERDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	offset, err := clock.ParseOffset(cfg.UTCOffset)
	if err != nil {
		return Config{}, fmt.Errorf("validate config: utc_offset: %w", err)
	}
	cfg.Offset = offset
	return cfg, nil
}

// RequireAuth reports whether the settings the HTTP server needs are present.
// Local commands do not need them.
func (c Config) RequireAuth() error {
	if err := validate.Var(c.AppPassword, "required"); err != nil {
		return fmt.Errorf("app_password is required: %w", err)
	}
	if err := validate.Var(c.SessionSecret, "required,min=16"); err != nil {
		return fmt.Errorf("session_secret must be at least 16 characters: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_password", "")
	v.SetDefault("session_secret", "")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("utc_offset", "+09:00")

	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.sqlite_path", filepath.Join(".paperdrill", "paperdrill.db"))
	v.SetDefault("store.sheet_id", "")
	v.SetDefault("store.service_account_email", "")
	v.SetDefault("store.private_key", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

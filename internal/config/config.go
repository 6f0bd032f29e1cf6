// Package config loads SMTP/IMAP credentials from a KEY=VALUE dotfile
// and the process environment, and validates the required keys.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// AppName is the service name used for keyring storage and config paths.
const AppName = "mailcli"

const (
	defaultConnectTimeout   = 30 * time.Second
	defaultOperationTimeout = 60 * time.Second
)

// ErrMissingKeys is wrapped by Load when required keys are absent.
var ErrMissingKeys = errors.New("missing required configuration keys")

// Config carries everything the mail service needs. The env tag names
// the dotfile key for each field; validate tags mark the required set.
type Config struct {
	SMTPHost string `env:"SMTP_HOST" validate:"required"`
	SMTPPort int    `env:"SMTP_PORT" validate:"required,min=1,max=65535"`
	IMAPHost string `env:"IMAP_HOST" validate:"required"`
	IMAPPort int    `env:"IMAP_PORT" validate:"required,min=1,max=65535"`
	Username string `env:"MAIL_USER" validate:"required"`
	Password string `env:"MAIL_PASSWORD" validate:"required"`

	SMTPSSL          bool          `env:"SMTP_SSL"`
	IMAPTLS          bool          `env:"IMAP_TLS"`
	MarkSeenOnRead   bool          `env:"MARK_SEEN_ON_READ"`
	ConnectTimeout   time.Duration `env:"CONNECT_TIMEOUT"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
}

var validate = validator.New()

// DefaultPath returns the config file searched when --config is not
// given: ./.env if present, else the user config dir.
func DefaultPath() string {
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName, "config")
	}
	return ".env"
}

// Load reads the dotfile at path (if it exists), overlays the process
// environment, resolves the password through the keyring when the
// dotfile omits it, and validates the required keys. A missing-keys
// error lists every absent key.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := &Config{
		SMTPHost:         os.Getenv("SMTP_HOST"),
		IMAPHost:         os.Getenv("IMAP_HOST"),
		Username:         os.Getenv("MAIL_USER"),
		Password:         os.Getenv("MAIL_PASSWORD"),
		SMTPSSL:          envBool("SMTP_SSL"),
		IMAPTLS:          envBool("IMAP_TLS"),
		MarkSeenOnRead:   envBool("MARK_SEEN_ON_READ"),
		ConnectTimeout:   envDuration("CONNECT_TIMEOUT", defaultConnectTimeout),
		OperationTimeout: envDuration("OPERATION_TIMEOUT", defaultOperationTimeout),
	}
	cfg.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.IMAPPort, _ = strconv.Atoi(os.Getenv("IMAP_PORT"))

	// The keyring is an alternative to putting MAIL_PASSWORD in the file.
	if cfg.Password == "" && cfg.Username != "" {
		if pw, err := GetPassword(cfg.Username); err == nil && pw != "" {
			cfg.Password = pw
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required keys and reports every missing one by
// its dotfile name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	keys := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		keys = append(keys, envKey(fe.StructField()))
	}
	return fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(keys, ", "))
}

func envKey(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}
	return f.Tag.Get("env")
}

func envBool(key string) bool {
	switch strings.TrimSpace(strings.ToLower(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	// Bare integers are seconds.
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

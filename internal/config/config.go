// Package config holds the tuneable values for the demo server and CLI.
// Values come from defaults, then an optional esewa.yaml file, then
// environment variables, each layer overriding the last.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"esewa-payment/esewa"
)

// DefaultPath is the config file looked up when no explicit path is given.
const DefaultPath = "esewa.yaml"

// Config carries everything the server and CLI need. SecretKey is
// sensitive: it is passed into signing calls and must never be logged —
// use Redacted for anything that ends up in a log line.
type Config struct {
	ListenAddr     string        `yaml:"listen_addr" mapstructure:"listen_addr"`
	Environment    string        `yaml:"environment" mapstructure:"environment"`
	SecretKey      string        `yaml:"secret_key" mapstructure:"secret_key"`
	ProductCode    string        `yaml:"product_code" mapstructure:"product_code"`
	SuccessURL     string        `yaml:"success_url" mapstructure:"success_url"`
	FailureURL     string        `yaml:"failure_url" mapstructure:"failure_url"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
}

// Default returns a config wired for the eSewa sandbox with the published
// test credentials, serving on :8080.
func Default() *Config {
	return &Config{
		ListenAddr:     ":8080",
		Environment:    "sandbox",
		SecretKey:      "8gBm/:&EnhH.1/q",
		ProductCode:    "EPAYTEST",
		SuccessURL:     "http://127.0.0.1:8080/success",
		FailureURL:     "http://127.0.0.1:8080/failure",
		RequestTimeout: 30 * time.Second,
	}
}

// Load builds the effective config. A missing file at the default path is
// fine (defaults apply); a missing file at an explicitly requested path is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := loadFile(path, cfg); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if _, err := esewa.ParseEnvironment(cfg.Environment); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(cfg)
}

// applyEnv overlays environment variables on top of the loaded config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.ListenAddr = ":" + v
	}
	setFromEnv(&cfg.ListenAddr, "ESEWA_LISTEN_ADDR")
	setFromEnv(&cfg.Environment, "ESEWA_ENVIRONMENT")
	setFromEnv(&cfg.SecretKey, "ESEWA_SECRET_KEY")
	setFromEnv(&cfg.ProductCode, "ESEWA_PRODUCT_CODE")
	setFromEnv(&cfg.SuccessURL, "ESEWA_SUCCESS_URL")
	setFromEnv(&cfg.FailureURL, "ESEWA_FAILURE_URL")
}

func setFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// Env returns the parsed gateway environment. Load already validated the
// spelling, so this cannot fail after a successful Load.
func (c *Config) Env() esewa.Environment {
	env, _ := esewa.ParseEnvironment(c.Environment)
	return env
}

// Redacted returns a copy safe to log: the secret key is masked.
func (c *Config) Redacted() Config {
	out := *c
	out.SecretKey = "***"
	return out
}

// WriteDefault writes the default config as YAML to path. Refuses to
// overwrite an existing file. The file is created 0600 since it will
// usually end up holding a real merchant key.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

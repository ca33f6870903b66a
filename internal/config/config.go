// Package config loads the settings shared by the CLI and the Lambda.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"

	"github.com/pricofy/poeditor/pkg/poeditor"
)

// Config is read from an optional YAML file and POEDITOR_* environment
// variables, the latter taking precedence.
type Config struct {
	APIToken      string        `mapstructure:"api_token"      validate:"required"`
	URL           string        `mapstructure:"url"            validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout"        validate:"gt=0"`
	UploadTimeout time.Duration `mapstructure:"upload_timeout" validate:"gte=0"`

	// TermBatchTokens bounds the estimated size of one bulk term request.
	TermBatchTokens int `mapstructure:"term_batch_tokens" validate:"gt=0"`

	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=trace debug info warn error off"`
}

// Load reads the configuration. path may be empty, in which case
// ./poeditor.yaml is used when present.
func Load(path string) (*Config, error) {
	vip := viper.New()
	if path != "" {
		vip.SetConfigFile(path)
	} else {
		vip.SetConfigName("poeditor")
		vip.AddConfigPath(".")
	}

	vip.SetConfigType("yaml")
	vip.SetEnvPrefix("POEDITOR")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("url", poeditor.DefaultBaseURL)
	vip.SetDefault("timeout", poeditor.DefaultTimeout)
	vip.SetDefault("upload_timeout", 0)
	vip.SetDefault("term_batch_tokens", 20000)
	vip.SetDefault("log_level", "info")

	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"api_token", "url", "timeout", "upload_timeout", "term_batch_tokens", "log_level"} {
		if err := vip.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// ClientConfig returns the client settings. The library never reads the
// environment itself.
func (c *Config) ClientConfig(logger hclog.Logger) poeditor.Config {
	return poeditor.Config{
		BaseURL:       c.URL,
		APIToken:      c.APIToken,
		Timeout:       c.Timeout,
		UploadTimeout: c.UploadTimeout,
		Logger:        logger,
	}
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

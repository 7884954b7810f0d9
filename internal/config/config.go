// Package config loads and validates the flashkit configuration file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Decks      DecksConfig      `mapstructure:"decks"`
	Reports    ReportsConfig    `mapstructure:"reports"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type DecksConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type ReportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type AssessmentConfig struct {
	QuestionCount      int `mapstructure:"question_count" validate:"gt=0"`
	PerQuestionSeconds int `mapstructure:"per_question_seconds" validate:"gte=0"`
	TotalSeconds       int `mapstructure:"total_seconds" validate:"gte=0"`
	RevealSeconds      int `mapstructure:"reveal_seconds" validate:"gte=0"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// Enabled reports whether review history recording is configured. The CLI
// runs fully without a database.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// DeckPath returns the file path for a named deck under the configured
// decks directory.
func (c *Config) DeckPath(name string) string {
	return filepath.Join(c.Decks.Directory, name+".yml")
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashkit")
	}

	v.SetDefault("decks.directory", "decks")
	v.SetDefault("reports.directory", "reports")
	v.SetDefault("assessment.question_count", 10)
	v.SetDefault("assessment.per_question_seconds", 30)
	v.SetDefault("assessment.total_seconds", 0)
	v.SetDefault("assessment.reveal_seconds", 2)
	v.SetDefault("database.port", 3306)

	// Bind database credentials to environment variables only (not from config file)
	if err := v.BindEnv("database.username", "FLASHKIT_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHKIT_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "FLASHKIT_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHKIT_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	validatorInstance, translator, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validatorInstance.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validator.Struct() > %w", err)
		}

		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, e.Translate(translator))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Tagger   TaggerConfig   `mapstructure:"tagger"`
	Extract  ExtractConfig  `mapstructure:"extract"`
	Exports  ExportsConfig  `mapstructure:"exports"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"min=1,max=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// TaggerConfig configures the optional part-of-speech tagging service.
// An empty base URL means extraction only uses the heuristic path.
type TaggerConfig struct {
	BaseURL             string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey              string `mapstructure:"api_key"`
	ChunkSize           int    `mapstructure:"chunk_size" validate:"min=1"`
	ProbeTimeoutSeconds int    `mapstructure:"probe_timeout_seconds" validate:"min=1"`
}

type ExtractConfig struct {
	// MinFrequency is the minimum number of occurrences for a word to
	// be kept. 1 keeps everything.
	MinFrequency int `mapstructure:"min_frequency" validate:"min=1"`
}

type ExportsConfig struct {
	Directory string `mapstructure:"directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocabrecall")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "vocabrecall")
	v.SetDefault("database.username", "user")
	v.SetDefault("tagger.chunk_size", 100000)
	v.SetDefault("tagger.probe_timeout_seconds", 5)
	v.SetDefault("extract.min_frequency", 1)
	v.SetDefault("exports.directory", "exports")

	// Bind tagger credentials to environment variables only (not from config file)
	if err := v.BindEnv("tagger.base_url", "TAGGER_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TAGGER_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("tagger.api_key", "TAGGER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind TAGGER_API_KEY environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

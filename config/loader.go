package config

// Viper configuration loader: reads config.yaml from the user config
// directory or the working directory

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from config.yaml
type Config struct {
	// Data file configuration
	Data struct {
		File string `mapstructure:"file"` // path to the task file, relative paths resolve against cwd
	} `mapstructure:"data"`

	// Logging configuration
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging"`

	// Console configuration
	Console struct {
		ConfirmDelete bool `mapstructure:"confirmDelete"`
	} `mapstructure:"console"`
}

var appConfig *Config

// LoadConfig loads configuration from config.yaml
// Priority order (first found wins): user config → current directory (dev)
// If config.yaml doesn't exist, it uses default values
func LoadConfig() (*Config, error) {
	// Reset viper to clear any previous configuration
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths in priority order (first added = highest priority)
	viper.AddConfigPath(GetConfigDir())
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	viper.SetEnvPrefix("TASKFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := bindFlags(); err != nil {
		slog.Warn("failed to bind command line flags", "error", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}

	appConfig = cfg
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("data.file", "tasks.yaml")
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("console.confirmDelete", true)
}

// bindFlags binds supported command line flags to viper so they can override config values.
func bindFlags() error {
	flagSet := pflag.NewFlagSet("taskforge", pflag.ContinueOnError)
	flagSet.ParseErrorsWhitelist.UnknownFlags = true
	flagSet.SetOutput(io.Discard)

	flagSet.String("data-file", "", "Path to the task file")
	flagSet.String("log-level", "", "Log level (debug, info, warn, error)")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	if err := viper.BindPFlag("data.file", flagSet.Lookup("data-file")); err != nil {
		return err
	}
	return viper.BindPFlag("logging.level", flagSet.Lookup("log-level"))
}

// GetConfig returns the loaded configuration
// If config hasn't been loaded yet, it loads it first
func GetConfig() *Config {
	if appConfig == nil {
		cfg, err := LoadConfig()
		if err != nil {
			slog.Warn("failed to load config, using defaults", "error", err)
			setDefaults()
			cfg = &Config{}
			_ = viper.Unmarshal(cfg)
		}
		appConfig = cfg
	}
	return appConfig
}

// DataFilePath returns the resolved path of the task file for the given config.
func DataFilePath(cfg *Config) string {
	file := cfg.Data.File
	if file == "" {
		file = "tasks.yaml"
	}
	return ResolveDataFile(file)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	SeedFile string
	OutFile  string
)

// Config holds the resolved CLI settings.
type Config struct {
	SeedFile  string `mapstructure:"seed_file"`
	LogLevel  string `mapstructure:"log_level"`
	Indent    int    `mapstructure:"indent"`
	ExpandAll bool   `mapstructure:"expand_all"`
}

// Load resolves settings from, in order of precedence, EXPLORER_* environment
// variables, the config file and built-in defaults. An explicit path that
// cannot be read is an error; a missing default config file is not.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "explorer"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EXPLORER")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("seed_file", "data.json")
	v.SetDefault("log_level", "warn")
	v.SetDefault("indent", 2)
	v.SetDefault("expand_all", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Indent < 0 {
		return nil, fmt.Errorf("indent must not be negative, got %d", cfg.Indent)
	}
	return &cfg, nil
}

// InitConfig loads the config named by the --config flag and applies the
// --file override.
func InitConfig() (*Config, error) {
	cfg, err := Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if SeedFile != "" {
		cfg.SeedFile = SeedFile
	}
	return cfg, nil
}

// NewLogger builds the stderr logger used by every command.
func NewLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/explorer/config.yaml)")
	cmd.PersistentFlags().StringVar(&SeedFile, "file", "", "Tree snapshot to operate on (overrides seed_file)")
	cmd.PersistentFlags().StringVar(&OutFile, "out", "", "Where edits are written (default is the snapshot itself)")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tasktree configuration.
type Config struct {
	DataFile        string
	AllowDuplicates bool
	Journal         bool
	Logger          LoggerConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// New returns a viper instance with tasktree's defaults and environment
// bindings (TASKTREE_DATA_FILE, TASKTREE_LOGGER_LEVEL, ...).
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("tasktree")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_file", filepath.Join(".tasktree", "tasks.json"))
	v.SetDefault("allow_duplicates", false)
	v.SetDefault("journal", true)
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.encoding", "console")
}

// Load reads configuration into v and decodes it.
// When configFile is empty, tasktree.yaml is searched in ., and $HOME/.config/tasktree;
// not finding one is fine. An explicit configFile must exist.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("tasktree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tasktree"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DataFile:        v.GetString("data_file"),
		AllowDuplicates: v.GetBool("allow_duplicates"),
		Journal:         v.GetBool("journal"),
		Logger: LoggerConfig{
			Level:    v.GetString("logger.level"),
			Encoding: v.GetString("logger.encoding"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.DataFile) == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	switch cfg.Logger.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("logger.encoding must be console or json, got %q", cfg.Logger.Encoding)
	}
	return nil
}

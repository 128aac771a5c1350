package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type CatalogConfig struct {
	// Dir holds optional catalog override files (*.json). Empty disables
	// file loading and the built-in catalogs are used as-is.
	Dir         string `mapstructure:"dir"`
	DefaultRole string `mapstructure:"default_role"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func Load() (*Config, error) {
	viper.SetConfigName("wedform")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("catalog.dir", "")
	viper.SetDefault("catalog.default_role", "user")
	viper.SetDefault("logging.level", "info")

	viper.SetEnvPrefix("wedform")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover everything, so a missing file is fine.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

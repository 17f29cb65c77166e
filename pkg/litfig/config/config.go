// Package config loads the CLI's configuration and logger.
package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the CLI's configuration.
type Config struct {
	DataDir      string `mapstructure:"DATA_DIR"`
	StartYear    int    `mapstructure:"START_YEAR"`
	ItemsFile    string `mapstructure:"ITEMS_FILE"`
	ResultsFile  string `mapstructure:"RESULTS_FILE"`
	ItemsSheet   string `mapstructure:"ITEMS_SHEET"`
	ResultsSheet string `mapstructure:"RESULTS_SHEET"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from litfig.yaml (working directory or a
// ./config folder) and the environment.
func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("litfig")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("START_YEAR", 2010)
	viper.SetDefault("ITEMS_FILE", "data_items.csv")
	viper.SetDefault("RESULTS_FILE", "reporting_results.csv")
	viper.SetDefault("ITEMS_SHEET", "Data items")
	viper.SetDefault("RESULTS_SHEET", "Reporting results")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		logger.Info("no config file found, using defaults and environment")
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.Warn("could not parse configuration, using defaults", zap.Error(err))
	}

	return &config
}

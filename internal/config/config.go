package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

type APIConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	TimeoutSeconds int     `mapstructure:"timeoutSeconds"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateBurst      int     `mapstructure:"rate_burst"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ReminderConfig struct {
	LeadMinutes   int `mapstructure:"lead_minutes"`
	CheckInterval int `mapstructure:"check_interval_minutes"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "citasmovil"))
	}

	viper.SetEnvPrefix("CITASMOVIL")
	viper.AutomaticEnv()

	viper.SetDefault("api.base_url", "http://localhost:3000/api")
	viper.SetDefault("api.timeoutSeconds", 10)
	viper.SetDefault("api.rate_limit", 0)
	viper.SetDefault("api.rate_burst", 1)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("reminder.lead_minutes", 60)
	viper.SetDefault("reminder.check_interval_minutes", 15)

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, everything has a default or env value.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Storage.Dir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		config.Storage.Dir = filepath.Join(dir, "citasmovil")
	}

	return &config, nil
}

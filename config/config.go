package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App    AppConfig
	Log    LogConfig
	Source SourceConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

// SourceConfig points at the static doctor document
type SourceConfig struct {
	URL     string
	Timeout time.Duration
}

// LoadConfig reads the given .env file when present, then lets environment
// variables override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SOURCE_URL", DefaultSourceURL)
	v.SetDefault("SOURCE_TIMEOUT", "10s")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	timeout, err := time.ParseDuration(v.GetString("SOURCE_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Source: SourceConfig{
			URL:     v.GetString("SOURCE_URL"),
			Timeout: timeout,
		},
	}

	return config, nil
}

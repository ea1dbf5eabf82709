// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIPort        string `mapstructure:"API_PORT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	GinMode        string `mapstructure:"GIN_MODE"`        // "debug", "release", "test"
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"` // Comma-separated list, or "nil" to disable

	// --- Poll engine ---
	PollInterval      time.Duration `mapstructure:"POLL_INTERVAL_SECONDS"`
	ProbeTimeout      time.Duration `mapstructure:"PROBE_TIMEOUT_SECONDS"`
	MaxInflightProbes int           `mapstructure:"MAX_INFLIGHT_PROBES"`
	HistoryCapacity   int           `mapstructure:"HISTORY_CAPACITY"`
	EndpointsFile     string        `mapstructure:"ENDPOINTS_FILE"`
	TimeOffsetHours   int           `mapstructure:"TIME_OFFSET_HOURS"`

	// --- Alerting ---
	SlackAlert   bool   `mapstructure:"SLACK_ALERT"`
	SlackWebhook string `mapstructure:"SLACK_WEBHOOK"`

	// --- Agent ---
	AgentPort string `mapstructure:"AGENT_PORT"`

	// --- TLS ---
	TLSEnable   bool   `mapstructure:"TLS_ENABLE"`
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`
}

var AppConfig Config

func LoadConfig() error {
	viper.SetConfigFile(".env") // Look for .env file
	viper.AutomaticEnv()        // Read from environment variables as fallback/override

	// --- Set Defaults ---
	viper.SetDefault("API_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("TRUSTED_PROXIES", "")
	viper.SetDefault("POLL_INTERVAL_SECONDS", 5)
	viper.SetDefault("PROBE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MAX_INFLIGHT_PROBES", 100)
	viper.SetDefault("HISTORY_CAPACITY", 3)
	viper.SetDefault("ENDPOINTS_FILE", "endpoints.json")
	viper.SetDefault("TIME_OFFSET_HOURS", 7)
	viper.SetDefault("SLACK_ALERT", false)
	viper.SetDefault("SLACK_WEBHOOK", "")
	viper.SetDefault("AGENT_PORT", "8081")
	viper.SetDefault("TLS_ENABLE", false)
	viper.SetDefault("TLS_CERT_FILE", "")
	viper.SetDefault("TLS_KEY_FILE", "")

	err := viper.ReadInConfig()
	// Ignore if .env file not found, rely on defaults/env vars
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return err
		}
	}

	err = viper.Unmarshal(&AppConfig)
	if err != nil {
		return err
	}

	// Convert seconds to durations
	AppConfig.PollInterval = AppConfig.PollInterval * time.Second
	AppConfig.ProbeTimeout = AppConfig.ProbeTimeout * time.Second

	if AppConfig.PollInterval <= 0 {
		AppConfig.PollInterval = 5 * time.Second
	}
	if AppConfig.ProbeTimeout <= 0 {
		AppConfig.ProbeTimeout = 10 * time.Second
	}
	if AppConfig.MaxInflightProbes <= 0 {
		AppConfig.MaxInflightProbes = 100
	}
	if AppConfig.HistoryCapacity <= 0 {
		AppConfig.HistoryCapacity = 3
	}

	return nil
}

// TimeLocation returns the fixed-offset zone capture timestamps are
// rendered in.
func (c Config) TimeLocation() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.TimeOffsetHours), c.TimeOffsetHours*3600)
}

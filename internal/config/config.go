// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"os"

	"github.com/shouldirefi/refi-advisor/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for refi-advisor.
type Configuration struct {
	Server    ServerConfig    `yaml:"server,omitempty"`
	Site      SiteConfig      `yaml:"site,omitempty"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	RateLimit RateLimitConfig `yaml:"rateLimit,omitempty"`
	Cache     CacheConfig     `yaml:"cache,omitempty"`
}

// ServerConfig holds the HTTP listener options.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// SiteConfig identifies the deployment in the tool descriptor and the
// initialize response.
type SiteConfig struct {
	Name    string `yaml:"name,omitempty"`
	Version string `yaml:"version,omitempty"`
	BaseURL string `yaml:"baseUrl,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// RateLimitConfig holds the per-client request budget.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requestsPerMinute,omitempty"`
}

// CacheConfig selects the response cache backend. An empty Redis address
// selects the in-memory cache.
type CacheConfig struct {
	RedisAddress string `yaml:"redisAddress,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; the defaults apply.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := defaultConfiguration()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := viper.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return configuration, nil
}

func defaultConfiguration() *Configuration {
	cfg := &Configuration{}
	cfg.applyDefaults()
	return cfg
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Site.Name == "" {
		conf.Site.Name = constants.DefaultSiteName
	}
	if conf.Site.Version == "" {
		conf.Site.Version = constants.DefaultSiteVersion
	}
	if conf.Site.BaseURL == "" {
		conf.Site.BaseURL = constants.DefaultSiteBaseURL
	}
	if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
	}
	if conf.Logging.Format == "" {
		conf.Logging.Format = "console"
	}
	if conf.RateLimit.RequestsPerMinute <= 0 {
		conf.RateLimit.RequestsPerMinute = constants.DefaultRateLimitPerMinute
	}
}

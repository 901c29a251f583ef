package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// Cache for configuration to avoid repeated file reads
	configCache *Config
	configOnce  sync.Once
)

// Load creates a new Config instance using only YAML configuration.
// This is a convenience function that calls LoadWithFlags with nil flags,
// making it suitable for applications that don't use command-line flags.
//
// Returns a Config instance loaded from configs/config.yaml.
func Load() *Config {
	return LoadWithFlags(nil)
}

// LoadCached creates a cached Config instance using only YAML configuration.
// This function caches the configuration after the first load for better performance.
//
// Returns a cached Config instance loaded from configs/config.yaml.
func LoadCached() *Config {
	configOnce.Do(func() {
		configCache = LoadWithFlags(nil)
	})
	return configCache
}

// Flags defines the interface for command-line flag access.
// It provides methods to retrieve server configuration flags while keeping
// demo and system tuning YAML-only.
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
	// Demo and system tuning is YAML-only
}

// LoadWithFlags creates a new Config instance by loading configuration from
// YAML files and applying command-line flag overrides where appropriate.
//
// Configuration precedence (highest to lowest):
// 1. Command-line flags (for server settings only)
// 2. Environment variables
// 3. YAML configuration files
// 4. Default values
//
// Demo endpoint tuning and system metrics settings are YAML-only.
// The function falls back to safe defaults for anything missing or
// unparsable rather than failing.
//
// Parameters:
//   - flgs: Command-line flags interface (can be nil)
//
// Returns a fully configured Config instance ready for use.
func LoadWithFlags(flgs Flags) *Config {
	yamlConfig := loadFromYAML()

	port := getEnv("PORT", yamlConfig.Server.Port)
	if port == "" {
		port = DefaultPort
	}
	if flgs != nil && flgs.GetPort() != "" {
		port = flgs.GetPort()
	}

	environment := getEnv("ENVIRONMENT", yamlConfig.Server.Environment)
	if environment == "" {
		environment = DefaultEnvironment
	}
	if flgs != nil && flgs.GetEnvironment() != "" {
		environment = flgs.GetEnvironment()
	}

	logLevel := getEnv("LOG_LEVEL", yamlConfig.Server.LogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	if flgs != nil && flgs.GetLogLevel() != "" {
		logLevel = flgs.GetLogLevel()
	}

	return &Config{
		Port:        port,
		Environment: environment,
		LogLevel:    logLevel,
		Demo: DemoConfig{
			Seed:         yamlConfig.Demo.Seed,
			DataDelayMin: durationOrDefault(yamlConfig.Demo.DataDelayMin, DefaultDataDelayMin),
			DataDelayMax: durationOrDefault(yamlConfig.Demo.DataDelayMax, DefaultDataDelayMax),
			SlowDelayMin: durationOrDefault(yamlConfig.Demo.SlowDelayMin, DefaultSlowDelayMin),
			SlowDelayMax: durationOrDefault(yamlConfig.Demo.SlowDelayMax, DefaultSlowDelayMax),
			ErrorRate:    rateOrDefault(yamlConfig.Demo.ErrorRate, DefaultErrorRate),
		},
		System: SystemConfig{
			CPUSampleInterval: durationOrDefault(yamlConfig.System.CPUSampleInterval, DefaultCPUSampleInterval),
			DiskPath:          pathOrDefault(yamlConfig.System.DiskPath, DefaultDiskPath),
		},
	}
}

func loadFromYAML() *YAMLConfig {
	config := &YAMLConfig{}
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		return config
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// durationOrDefault parses a duration string from YAML, falling back to the
// default when the value is missing or unparsable.
func durationOrDefault(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// rateOrDefault parses a probability string from YAML, falling back to the
// default when the value is missing or unparsable. The result is clamped
// to [0, 1].
func rateOrDefault(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

func pathOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

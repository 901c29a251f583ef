package config

import "time"

// Config represents the main application configuration structure.
// It contains all configuration settings for the demo application server,
// including server settings, demo endpoint tuning, and system metrics
// sampling.
type Config struct {
	// HTTP server port (e.g., "5000")
	Port string

	// Application environment (e.g., "development", "production")
	Environment string

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string

	// Demo endpoint tuning
	Demo DemoConfig

	// System metrics sampling configuration
	System SystemConfig
}

// DemoConfig holds tuning for the simulated demo endpoints.
// It controls the artificial latency windows and the failure probability
// the endpoints use to exercise monitoring pipelines.
type DemoConfig struct {
	// Seed for the random source; 0 seeds from the current time
	Seed int64

	// Simulated processing delay window for the data endpoint
	DataDelayMin time.Duration
	DataDelayMax time.Duration

	// Simulated delay window for the slow endpoint
	SlowDelayMin time.Duration
	SlowDelayMax time.Duration

	// Probability in [0, 1] that the error endpoint fails
	ErrorRate float64
}

// SystemConfig holds configuration for system metrics collection.
// It contains the CPU sampling window and the filesystem measured for
// disk usage.
type SystemConfig struct {
	// Blocking window for the system-wide CPU sample
	CPUSampleInterval time.Duration

	// Filesystem measured for disk usage (e.g., "/")
	DiskPath string
}

// ServerConfig represents server-related configuration settings.
// It contains HTTP server configuration including port, environment,
// and logging settings that can be overridden by command-line flags.
type ServerConfig struct {
	// HTTP server port (e.g., "5000")
	Port string `yaml:"port"`

	// Application environment (e.g., "development", "production")
	Environment string `yaml:"environment"`

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string `yaml:"log_level"`
}

// DemoYAMLConfig represents demo endpoint tuning from YAML files.
// It mirrors the DemoConfig structure but keeps durations and the error
// rate as strings for proper unmarshaling from configuration files.
type DemoYAMLConfig struct {
	// Seed for the random source; 0 seeds from the current time
	Seed int64 `yaml:"seed"`

	// Simulated processing delay window for the data endpoint
	// as duration strings (e.g., "100ms", "500ms")
	DataDelayMin string `yaml:"data_delay_min"`
	DataDelayMax string `yaml:"data_delay_max"`

	// Simulated delay window for the slow endpoint
	// as duration strings (e.g., "1s", "3s")
	SlowDelayMin string `yaml:"slow_delay_min"`
	SlowDelayMax string `yaml:"slow_delay_max"`

	// Probability that the error endpoint fails (e.g., "0.5")
	ErrorRate string `yaml:"error_rate"`
}

// SystemYAMLConfig represents system metrics configuration from YAML files.
// It mirrors the SystemConfig structure but keeps the sampling interval as
// a string for proper unmarshaling from configuration files.
type SystemYAMLConfig struct {
	// Blocking window for the system-wide CPU sample (e.g., "1s")
	CPUSampleInterval string `yaml:"cpu_sample_interval"`

	// Filesystem measured for disk usage (e.g., "/")
	DiskPath string `yaml:"disk_path"`
}

// YAMLConfig represents the structure of the YAML configuration file.
// It defines the complete structure for configs/config.yaml and provides
// the root configuration object for the application.
type YAMLConfig struct {
	// Server configuration settings
	Server ServerConfig `yaml:"server"`

	// Demo endpoint tuning
	Demo DemoYAMLConfig `yaml:"demo"`

	// System metrics configuration
	System SystemYAMLConfig `yaml:"system"`
}

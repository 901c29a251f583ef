package config

import "time"

// Default configuration values
const (
	// DefaultPort is the default HTTP server port
	DefaultPort = "5000"

	// DefaultEnvironment is the default deployment environment
	DefaultEnvironment = "development"

	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "info"
)

// Default demo endpoint tuning
const (
	// DefaultDataDelayMin and DefaultDataDelayMax bound the simulated
	// processing delay on the data endpoint
	DefaultDataDelayMin = 100 * time.Millisecond
	DefaultDataDelayMax = 500 * time.Millisecond

	// DefaultSlowDelayMin and DefaultSlowDelayMax bound the simulated
	// delay on the slow endpoint
	DefaultSlowDelayMin = 1 * time.Second
	DefaultSlowDelayMax = 3 * time.Second

	// DefaultErrorRate is the probability that the error endpoint fails
	DefaultErrorRate = 0.5
)

// Default system metrics tuning
const (
	// DefaultCPUSampleInterval is the blocking window for the system-wide
	// CPU sample
	DefaultCPUSampleInterval = 1 * time.Second

	// DefaultDiskPath is the filesystem measured for disk usage
	DefaultDiskPath = "/"
)

// Valid environment values
const (
	ValidEnvironmentDevelopment = "development"
	ValidEnvironmentProduction  = "production"
)

// Valid log level values
const (
	ValidLogLevelDebug = "debug"
	ValidLogLevelInfo  = "info"
	ValidLogLevelWarn  = "warn"
	ValidLogLevelError = "error"
)

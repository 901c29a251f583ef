package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/DornelassDev/demo-app/internal/config"
	"github.com/DornelassDev/demo-app/internal/version"
)

// Default values for server configuration
const (
	DefaultPort        = config.DefaultPort
	DefaultEnvironment = config.DefaultEnvironment
	DefaultLogLevel    = config.DefaultLogLevel
)

// Valid values for validation
const (
	ValidEnvironmentDevelopment = config.ValidEnvironmentDevelopment
	ValidEnvironmentProduction  = config.ValidEnvironmentProduction

	ValidLogLevelDebug = config.ValidLogLevelDebug
	ValidLogLevelInfo  = config.ValidLogLevelInfo
	ValidLogLevelWarn  = config.ValidLogLevelWarn
	ValidLogLevelError = config.ValidLogLevelError
)

// Help and version text
const (
	AppName        = "Demo App Server"
	AppDescription = "A Go Fiber demo service with simulated workloads and system metrics"
)

// ServerFlags holds all command-line flags for the demo application server.
// It provides a structured way to parse and validate command-line arguments
// for server configuration. Demo endpoint tuning and system metrics sampling
// are configured exclusively through YAML files.
type ServerFlags struct {
	// Server configuration flags
	// HTTP server port number
	Port string
	// Deployment environment (development/production)
	Environment string
	// Logging verbosity level (debug/info/warn/error)
	LogLevel string

	// Demo and system configuration is YAML-only
	// These settings live in the config.yaml file

	// General flags
	// Show help information and exit
	Help bool
	// Show version information and exit
	Version bool
}

// parseFlags parses command-line flags and returns a ServerFlags struct.
// This function sets up all available command-line options and parses the
// command line arguments.
//
// Flags default to empty strings so that only explicitly provided flags
// override environment variables and YAML configuration. The effective
// defaults are applied by the config package.
func parseFlags() *ServerFlags {
	f := &ServerFlags{}

	// Server configuration flags
	flag.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (default: %s)", DefaultPort))
	flag.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment: %s, %s (default: %s)",
			ValidEnvironmentDevelopment, ValidEnvironmentProduction, DefaultEnvironment))
	flag.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s, %s, %s, %s (default: %s)",
			ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError, DefaultLogLevel))

	// Demo endpoint tuning and system metrics sampling are handled via the
	// YAML config file, no command-line flags needed for those settings

	// General flags
	flag.BoolVar(&f.Help, "help", false, "Show help information and exit")
	flag.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	flag.BoolVar(&f.Version, "version", false, "Show version information and exit")
	flag.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	// Parse command-line arguments
	flag.Parse()

	return f
}

// showHelp displays help information for the demo application server.
// It documents all available command-line flags, usage examples, and how to
// tune the simulated endpoints through the YAML configuration file.
func (f *ServerFlags) showHelp() {
	fmt.Printf("%s - %s\n", AppName, AppDescription)
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  demo-app [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  Server Configuration:")
	fmt.Printf("    -port string\n")
	fmt.Printf("          Server port (default: %s, or PORT environment variable)\n", DefaultPort)
	fmt.Printf("    -env string\n")
	fmt.Printf("          Environment: development, production (default: %s)\n", DefaultEnvironment)
	fmt.Printf("    -log-level string\n")
	fmt.Printf("          Log level: debug, info, warn, error (default: %s)\n", DefaultLogLevel)
	fmt.Println()
	fmt.Println("  Endpoint Tuning:")
	fmt.Println("    Demo delay windows, the error rate, and system metrics sampling")
	fmt.Println("    are configured via configs/config.yaml")
	fmt.Println("    - demo: seed, data/slow delay windows, error_rate")
	fmt.Println("    - system: cpu_sample_interval, disk_path")
	fmt.Println()
	fmt.Println("  General:")
	fmt.Println("    -help, -h")
	fmt.Println("          Show this help information")
	fmt.Println("    -version, -v")
	fmt.Println("          Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start with default settings")
	fmt.Println("  demo-app")
	fmt.Println()
	fmt.Println("  # Start in production mode with custom log level")
	fmt.Println("  demo-app -env production -log-level warn")
	fmt.Println()
	fmt.Println("  # Start on custom port")
	fmt.Println("  demo-app -port 8080")
}

// showVersion displays version and capability information for the demo
// application server.
func (f *ServerFlags) showVersion() {
	fmt.Printf("%s %s\n", AppName, version.GetVersion())
	fmt.Printf("Build info: %s\n", version.GetBuildInfo())
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println("Capabilities:")
	fmt.Println("  - Health and process metrics endpoint")
	fmt.Println("  - Simulated data, latency, and error endpoints")
	fmt.Println("  - System metrics endpoint (CPU, memory, disk, network)")
	fmt.Println("  - Prometheus metrics")
}

// validate checks that all provided flag values are valid.
// Empty values are skipped because they mean the flag was not set and the
// config package will apply environment variables or defaults instead.
//
// Returns an error if any validation fails, with a descriptive error message.
func (f *ServerFlags) validate() error {
	// Validate environment
	if f.Environment != "" {
		validEnvs := []string{ValidEnvironmentDevelopment, ValidEnvironmentProduction}
		validEnv := false
		for _, env := range validEnvs {
			if f.Environment == env {
				validEnv = true
				break
			}
		}
		if !validEnv {
			return fmt.Errorf("invalid environment: %s (must be one of: %s)", f.Environment, strings.Join(validEnvs, ", "))
		}
	}

	// Validate log level
	if f.LogLevel != "" {
		validLevels := []string{ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError}
		validLevel := false
		for _, level := range validLevels {
			if f.LogLevel == level {
				validLevel = true
				break
			}
		}
		if !validLevel {
			return fmt.Errorf("invalid log level: %s (must be one of: %s)", f.LogLevel, strings.Join(validLevels, ", "))
		}
	}

	return nil
}

// Interface methods for config package
// These methods implement the config.Flags interface to allow the config package
// to access flag values without depending on the specific flag implementation.

// GetPort returns the configured server port number.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the configured deployment environment.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the configured logging verbosity level.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}

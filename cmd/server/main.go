package main

import (
	"log"
	"os"

	"github.com/DornelassDev/demo-app/internal/config"
	"github.com/DornelassDev/demo-app/internal/server"
	"github.com/DornelassDev/demo-app/pkg/logger"

	"github.com/joho/godotenv"
)

// main is the entry point for the demo application server.
// It performs the following operations:
//  1. Parses command-line flags for server configuration
//  2. Loads environment variables from .env file if present
//  3. Loads configuration from YAML files with flag overrides
//  4. Initializes the HTTP server with its metrics collaborators
//  5. Begins listening for HTTP requests
func main() {
	flgs := parseFlags()

	if flgs.Help {
		flgs.showHelp()
		return
	}

	if flgs.Version {
		flgs.showVersion()
		return
	}

	if err := flgs.validate(); err != nil {
		log.Printf("Invalid flags: %v", err)
		os.Exit(1)
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration from YAML and environment variables with flag overrides
	cfg := config.LoadWithFlags(flgs)

	// Create and start server
	srv := server.New(cfg)

	logger.Infof("Starting on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Log level: %s", cfg.LogLevel)

	if err := srv.Start(); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}

package server

import (
	"log"
	"time"

	"github.com/goccy/go-json"

	"github.com/DornelassDev/demo-app/apis/common"
	"github.com/DornelassDev/demo-app/apis/demo"
	"github.com/DornelassDev/demo-app/apis/health"
	"github.com/DornelassDev/demo-app/apis/system"
	"github.com/DornelassDev/demo-app/internal/config"
	"github.com/DornelassDev/demo-app/internal/handlers"
	"github.com/DornelassDev/demo-app/internal/version"
	"github.com/DornelassDev/demo-app/pkg/logger"
	"github.com/DornelassDev/demo-app/pkg/metrics"
	"github.com/DornelassDev/demo-app/pkg/sysinfo"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the HTTP server instance with all its components.
// It encapsulates the Fiber application and configuration for the
// demo application server.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config
}

// New creates and initializes a new Server instance with the provided configuration.
// It sets up the Fiber application with middleware, routes, and the metrics
// collaborators. The server will be ready to start after this function returns.
func New(cfg *config.Config) *Server {
	// Initialize logger first
	if err := logger.InitFromConfig(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Create Fiber app with faster JSON encoder
	app := fiber.New(fiber.Config{
		AppName:      "Demo App Server " + version.GetVersion(),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: common.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(metrics.Middleware())

	// Process metrics reader for the health endpoint
	processReader, err := sysinfo.NewProcessReader()
	if err != nil {
		logger.Fatalf("Failed to initialize process metrics reader: %v", err)
	}
	healthHandler := health.NewHandler(processReader)

	// Demo endpoints with their random source; a zero seed falls back to
	// the current time so restarts produce fresh sequences
	seed := cfg.Demo.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		logger.Infof("Demo random source seeded from configuration - seed: %d", seed)
	}
	demoHandler := demo.NewHandler(demo.NewRand(seed), demo.Config{
		DataDelay: demo.DelayRange{Min: cfg.Demo.DataDelayMin, Max: cfg.Demo.DataDelayMax},
		SlowDelay: demo.DelayRange{Min: cfg.Demo.SlowDelayMin, Max: cfg.Demo.SlowDelayMax},
		ErrorRate: cfg.Demo.ErrorRate,
	})
	logger.Infof("Demo endpoints configured - data delay: %v-%v, slow delay: %v-%v, error rate: %.2f",
		cfg.Demo.DataDelayMin, cfg.Demo.DataDelayMax,
		cfg.Demo.SlowDelayMin, cfg.Demo.SlowDelayMax,
		cfg.Demo.ErrorRate)

	// System metrics reader for the system endpoint
	systemHandler := system.NewHandler(sysinfo.NewSystemReader(), cfg.System.CPUSampleInterval, cfg.System.DiskPath)
	logger.Infof("System metrics configured - CPU sample interval: %v, disk path: %s",
		cfg.System.CPUSampleInterval, cfg.System.DiskPath)

	// Setup routes
	handlers.SetupRoutes(app, healthHandler, demoHandler, systemHandler)

	// Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return &Server{
		app: app,
		cfg: cfg,
	}
}

// Start starts the HTTP server.
// It listens on all interfaces at the configured port and blocks until the
// server shuts down. Returns an error if the server fails to start.
func (s *Server) Start() error {
	logger.Infof("%s server listening on port %s", version.Project, s.cfg.Port)
	return s.app.Listen(":" + s.cfg.Port)
}

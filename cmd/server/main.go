// Package main provides the surf forecast HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"go.ngs.io/surf-api/internal/adapter/openmeteo"
	"go.ngs.io/surf-api/internal/adapter/store"
	"go.ngs.io/surf-api/internal/adapter/store/csv"
	"go.ngs.io/surf-api/internal/adapter/store/jsonfile"
	"go.ngs.io/surf-api/internal/adapter/store/sqlite"
	"go.ngs.io/surf-api/internal/config"
	"go.ngs.io/surf-api/internal/domain"
	httpHandler "go.ngs.io/surf-api/internal/http"
	"go.ngs.io/surf-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	envFile := flag.String("env-file", ".env", "Optional dotenv file to load before reading the environment")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("surf-api version %s\n", version)
		return
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting surf API server",
		zap.String("version", version),
		zap.String("port", cfg.Port),
		zap.String("backend", cfg.RegistryBackend),
		zap.Strings("protected", cfg.ProtectedBeaches))

	// Initialize registry store.
	beachStore, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	registry, err := usecase.NewRegistry(ctx, beachStore, domain.NewProtectedSet(cfg.ProtectedBeaches...), logger.Named("registry"))
	if err != nil {
		return err
	}
	logger.Info("registry loaded", zap.Int("beaches", registry.Len()))

	if cfg.SeedCSV != "" {
		n, err := registry.Seed(ctx, csv.NewBeachSource(cfg.SeedCSV))
		if err != nil {
			return fmt.Errorf("failed to seed registry: %w", err)
		}
		if n > 0 {
			logger.Info("registry seeded", zap.String("source", cfg.SeedCSV), zap.Int("beaches", n))
		}
	}

	// Initialize use case.
	client := openmeteo.NewClient(cfg.MarineURL, cfg.ForecastURL, cfg.UpstreamTimeout)
	forecastUC := usecase.NewForecastUseCase(registry, client, logger.Named("forecast"))

	// Setup router.
	handler := httpHandler.NewHandler(registry, forecastUC, cfg.SelectorCountries, logger.Named("http"))
	router, err := httpHandler.SetupRouter(handler, cfg.CORSOrigins, logger.Named("access"))
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening",
		zap.String("addr", server.Addr),
		zap.Strings("endpoints", []string{
			"GET /", "GET /surf/{id}", "GET /playas", "POST /playas/add", "DELETE /playas/delete/{id}", "GET /health",
		}))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openStore returns the configured registry store and a function releasing it.
func openStore(cfg *config.Config, logger *zap.Logger) (store.BeachStore, func(), error) {
	switch cfg.RegistryBackend {
	case config.BackendSQLite:
		logger.Info("using SQLite registry", zap.String("path", cfg.SQLitePath))
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		logger.Info("using JSON registry", zap.String("path", cfg.DataFile))
		return jsonfile.NewStore(cfg.DataFile), func() {}, nil
	}
}

// newLogger builds a production (json) or development (console) zap logger.
func newLogger(format string) (*zap.Logger, error) {
	if format == "console" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Surf API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  surf-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println("  -env-file      Dotenv file to load (default: .env, ignored if missing)")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8000)")
	fmt.Println("  DATA_FILE               JSON registry file (default: playas.json)")
	fmt.Println("  REGISTRY_BACKEND        json or sqlite (default: json)")
	fmt.Println("  SQLITE_PATH             SQLite registry path (default: data/playas.db)")
	fmt.Println("  SEED_CSV                CSV path or URL imported into an empty registry (optional)")
	fmt.Println("  PROTECTED_BEACHES       Comma-separated IDs that cannot be deleted (default: pantin)")
	fmt.Println("  SELECTOR_COUNTRIES      Fixed country groups of the selector (default: Brasil,España)")
	fmt.Println("  MARINE_API_URL          Marine provider endpoint (default: Open-Meteo marine)")
	fmt.Println("  FORECAST_API_URL        Wind provider endpoint (default: Open-Meteo forecast)")
	fmt.Println("  UPSTREAM_TIMEOUT        Timeout for provider calls (default: 15s)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println("  LOG_FORMAT              json or console (default: json)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  surf-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port with a SQLite registry")
	fmt.Println("  PORT=3000 REGISTRY_BACKEND=sqlite surf-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET    /                       Beach selector page")
	fmt.Println("  GET    /surf/{id}              Current surf forecast for a beach")
	fmt.Println("  GET    /playas                 List registered beaches")
	fmt.Println("  POST   /playas/add             Register a beach")
	fmt.Println("  DELETE /playas/delete/{id}     Remove a beach")
	fmt.Println("  GET    /health                 Health check")
	fmt.Println()
}

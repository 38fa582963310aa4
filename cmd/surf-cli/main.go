// Command surf-cli prints the current surf forecast for a registered beach,
// or lists the registry, without going through the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"go.ngs.io/surf-api/internal/adapter/openmeteo"
	"go.ngs.io/surf-api/internal/adapter/store"
	"go.ngs.io/surf-api/internal/adapter/store/jsonfile"
	"go.ngs.io/surf-api/internal/adapter/store/sqlite"
	"go.ngs.io/surf-api/internal/config"
	"go.ngs.io/surf-api/internal/domain"
	"go.ngs.io/surf-api/internal/usecase"
)

func main() {
	beach := flag.String("beach", "", "Beach ID to forecast")
	list := flag.Bool("list", false, "List registered beaches grouped by country")
	envFile := flag.String("env-file", ".env", "Optional dotenv file")
	flag.Parse()

	if err := run(*beach, *list, *envFile); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(beach string, list bool, envFile string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var beachStore store.BeachStore
	if cfg.RegistryBackend == config.BackendSQLite {
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		beachStore = s
	} else {
		beachStore = jsonfile.NewStore(cfg.DataFile)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.UpstreamTimeout+5*time.Second)
	defer cancel()

	registry, err := usecase.NewRegistry(ctx, beachStore, domain.NewProtectedSet(cfg.ProtectedBeaches...), zap.NewNop())
	if err != nil {
		return err
	}

	if list || beach == "" {
		fmt.Println(renderGroups(usecase.BuildGroups(registry.List(), cfg.SelectorCountries)))
		return nil
	}

	client := openmeteo.NewClient(cfg.MarineURL, cfg.ForecastURL, cfg.UpstreamTimeout)
	forecast, err := usecase.NewForecastUseCase(registry, client, zap.NewNop()).Execute(ctx, beach)
	if err != nil {
		return err
	}

	fmt.Println(renderForecast(forecast))
	return nil
}

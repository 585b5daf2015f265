package main

import (
	"fmt"

	"github.com/MKhiriev/go-type-keeper/internal/catalog"
	"github.com/MKhiriev/go-type-keeper/internal/config"
	"github.com/MKhiriev/go-type-keeper/internal/handler"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/internal/resolver"
	"github.com/MKhiriev/go-type-keeper/internal/schema"
	"github.com/MKhiriev/go-type-keeper/internal/server"
	"github.com/MKhiriev/go-type-keeper/internal/service"
	"github.com/MKhiriev/go-type-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-type-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	cat, err := catalog.Load(cfg.App.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.App.CatalogPath).Msg("error loading type catalog")
	}

	// global options must be in force before the catalog declares any type;
	// configured options override the catalog's own
	catalogGlobal, err := cat.Global()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid catalog global options")
	}
	if err = schema.Configure(catalogGlobal); err != nil {
		log.Fatal().Err(err).Msg("error applying catalog global options")
	}
	configured, err := cfg.Types.Options()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid global type options")
	}
	if err = schema.Configure(configured); err != nil {
		log.Fatal().Err(err).Msg("error applying global type options")
	}
	for _, src := range resolver.Trace(schema.Global()) {
		log.Debug().Str("option", src.Option).Str("level", src.Level.String()).Msg("global type option source")
	}

	registry, err := cat.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("error declaring catalog types")
	}
	log.Info().Strs("scopes", cat.ScopeNames()).Msg("type catalog declared")

	services, err := service.NewServices(registry, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}

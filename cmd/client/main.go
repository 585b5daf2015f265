package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-type-keeper/internal/adapter"
	"github.com/MKhiriev/go-type-keeper/internal/client"
	"github.com/MKhiriev/go-type-keeper/internal/config"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("go-type-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	args := flag.Args()
	if len(args) == 1 && args[0] == "build-info" {
		printBuildInfo()
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app := client.NewApp(serverAdapter, os.Stdin, os.Stdout, log)
	if err = app.Run(context.Background(), args); err != nil {
		if errors.Is(err, client.ErrInvalidPayload) {
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}

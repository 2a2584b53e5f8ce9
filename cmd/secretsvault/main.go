package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secrets-vault/internal/cli"
	"github.com/MKhiriev/go-secrets-vault/internal/config"
	"github.com/MKhiriev/go-secrets-vault/internal/logger"
	"github.com/MKhiriev/go-secrets-vault/internal/service"
	"github.com/MKhiriev/go-secrets-vault/internal/store"
	"github.com/MKhiriev/go-secrets-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprint(os.Stderr, buildInfo.String())

	log := logger.NewLogger("secretsvault")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services := service.NewServices(store.NewStorages(), log)
	var app cli.Runner = cli.NewApp(services, cfg, buildInfo, log)

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

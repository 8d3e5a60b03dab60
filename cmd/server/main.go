package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/handler"
	"github.com/MKhiriev/go-goal-keeper/internal/handler/http"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/metrics"
	"github.com/MKhiriev/go-goal-keeper/internal/server"
	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const flagIssueToken = "issue-token"

func main() {
	fs := pflag.NewFlagSet("goal-keeper-server", pflag.ExitOnError)
	config.RegisterServerFlags(fs)
	issueToken := fs.Int64(flagIssueToken, 0, "Print a bearer token for the given owner id and exit")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("goal-keeper-server")
	cfg, err := config.GetServerConfig(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	log.Debug().Str("address", cfg.HTTPAddress).Dur("request_timeout", cfg.RequestTimeout).Msg("received configs")

	goals := store.NewMemoryCollection[models.SavingsGoal]("g")
	services := service.NewServices(goals, *cfg, log)

	if *issueToken != 0 {
		token, err := services.TokenService.CreateToken(log.WithContext(context.Background()), *issueToken)
		if err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		fmt.Println(token.String())
		return
	}

	printBuildInfo()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handlers, err := handler.NewHandlers(services, *cfg, log,
		http.WithMetrics(metrics.NewHTTPMetrics(registry), registry),
		http.WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

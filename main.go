package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/alecthomas/kong"
	"github.com/helpcomp/sheetmatch/config"
	"github.com/helpcomp/sheetmatch/prom"
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/version"
	"github.com/prometheus/exporter-toolkit/web"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

const AppName = "sheetmatch"
const AppDesc = "Go-based tool that matches spreadsheet transactions against an accounts table by a lookup column and aggregates per-account counts and totals. Runs once from the command line or as an HTTP service accepting uploads."

var cli struct {
	ConfigPath        string `env:"CONFIG_PATH" help:"${env} - Path to config file" default:"./config.yml"`
	TransactionsFile  string `env:"TRANSACTIONS_FILE" help:"${env} - Path to the transactions spreadsheet (.xlsx or .csv). Overrides the config file"`
	AccountsFile      string `env:"ACCOUNTS_FILE" help:"${env} - Path to the accounts spreadsheet (.xlsx or .csv). Overrides the config file"`
	TransactionLookup string `env:"TRANSACTION_LOOKUP_COLUMN" help:"${env} - Transaction column holding the lookup value. Overrides the config file"`
	AccountLookup     string `env:"ACCOUNT_LOOKUP_COLUMN" help:"${env} - Accounts column holding the lookup value. Overrides the config file"`
	AmountColumn      string `env:"AMOUNT_COLUMN" help:"${env} - Transaction column holding the amount. Overrides the config file"`
	Serve             bool   `env:"SERVE" help:"${env} - Run as an HTTP service accepting spreadsheet uploads instead of a one-shot run" default:"false"`
	ListenAddress     string `env:"LISTEN_ADDRESS" help:"${env} - Address to listen on for the HTTP service and telemetry" default:"9718"`
	MetricsPath       string `env:"METRICS_PATH" help:"${env} - Path under which to expose metrics" default:"/metrics"`
	EnablePrometheus  bool   `env:"ENABLE_PROMETHEUS" help:"${env} - Enable Prometheus metrics in serve mode" default:"true"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY" help:"${env} - API Key for OpenAI column suggestion. If none is provided, suggestion is disabled"`
	OpenAIModel       string `env:"OPENAI_MODEL" help:"${env} - OpenAI Model type" default:"gpt-3.5-turbo-instruct"`
}

func main() {
	// Variable Setup //
	///////////////////
	kong.Parse(&cli,
		kong.Name(AppName),
		kong.Description(AppDesc),
	)
	log.Logger = log.Output(os.Stderr).With().Caller().Logger() // Logger
	cfg := config.InitConfig(cli.ConfigPath)                    // Config
	var oai *openai.Client                                      // OpenAI

	// AI Setup //
	/////////////
	if key := firstNonEmpty(cli.OpenAIAPIKey, cfg.OpenAI.APIKey); key != "" {
		oai = openai.NewClient(key)
	}

	// One-shot mode //
	//////////////////
	if !cli.Serve {
		if err := startRun(cfg, oai); err != nil {
			log.Error().Err(err).Msg("Run failed")
			os.Exit(1)
		}
		return
	}

	// Serve mode //
	///////////////
	log.Logger.Info().
		Str("version", version.Info()).
		Msg("Starting " + AppName)

	// Create a channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	if cli.EnablePrometheus {
		// Metric Registration
		prometheus.MustRegister(
			versioncollector.NewCollector(AppName),
			prom.NewExporter(AppName),
		)
		http.Handle(cli.MetricsPath, promhttp.Handler())
	}

	http.HandleFunc("/api/process", processHandler(oai))
	http.HandleFunc("/health", prom.HealthHandler)

	if cli.MetricsPath != "/" && cli.MetricsPath != "" {
		landingConfig := web.LandingConfig{
			Name:        AppName,
			Description: AppDesc,
			Version:     version.Print(AppName),
			Links: []web.LandingLinks{
				{
					Address: cli.MetricsPath,
					Text:    "Metrics",
				},
				{
					Address: "/health",
					Text:    "Health",
				},
			},
		}
		landingPage, err := web.NewLandingPage(landingConfig)

		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		http.Handle("/", landingPage)
	}

	log.Info().Msgf("Starting HTTP server on listen address :%s and metric path %s", cli.ListenAddress, cli.MetricsPath)

	server := &http.Server{
		Addr:         ":" + cli.ListenAddress,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Listen and serve
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Error starting HTTP server")
		}
	}()

	// Handle shutdown
	sig := <-sigChan
	log.Info().Msgf("Received signal %s. Exiting...", sig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	log.Info().Msg("Shutting down HTTP server...")
	_ = server.Shutdown(ctx)
	log.Info().Msg("Shutdown Complete; Exiting...")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

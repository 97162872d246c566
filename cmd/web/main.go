package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/bshore/github-contribution-merge/pkg/metrics"
	"github.com/bshore/github-contribution-merge/pkg/server"
	"github.com/bshore/github-contribution-merge/pkg/services/chart"
	"github.com/bshore/github-contribution-merge/pkg/services/config"
	"github.com/bshore/github-contribution-merge/pkg/services/github"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the contribution merge web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (settings also read from GHCM_* env vars)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger = logger.Level(level)

	metrics.Register()

	client := github.NewClient(cfg.GitHub)
	controller := chart.NewController(client)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Cache:           cfg.Cache,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Chart:   controller,
			Primary: cfg.GitHub.Username,
		},
	})

	logger.Info().
		Str("primary", cfg.GitHub.Username).
		Msg("configuration loaded")

	return api.Start()
}

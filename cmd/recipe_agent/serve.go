package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/recipe-finder/internal/config"
	"github.com/jonathan/recipe-finder/internal/logging"
	"github.com/jonathan/recipe-finder/internal/server"
	"github.com/jonathan/recipe-finder/internal/store"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recipe catalog, filters, and survey recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	recipes, err := store.LoadSeed(cfg.Catalog.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	st := store.New(store.WithLogger(logger.Named("store")))
	st.Seed(recipes)
	logger.Info("catalog loaded",
		zap.Int("recipes", st.Len()),
		zap.String("seed_file", cfg.Catalog.SeedFile),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, st, logger.Named("http"))
	return srv.ListenAndServe(ctx)
}

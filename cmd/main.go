package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "smartcloth/docs"
	"smartcloth/internal/config"
	"smartcloth/internal/engine"
	"smartcloth/internal/handlers"
	"smartcloth/internal/input"
	"smartcloth/internal/logger"
	"smartcloth/internal/metrics"
	"smartcloth/internal/network"
	"smartcloth/internal/repository"
	"smartcloth/internal/repository/db"
	"smartcloth/internal/server"
	"smartcloth/internal/service"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// @title                       SmartCloth device API
// @version                     1.0
// @description                 Drives and inspects the SmartCloth meal-weighing appliance.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "smartcloth",
		Short:         "SmartCloth meal-weighing appliance",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default configs/config.yml)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newRulesCommand())
	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the device engine and its HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Validate and print the transition table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := engine.DefaultRules()
			if err := engine.ValidateRules(rules); err != nil {
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), engine.FormatRules(rules))
			return err
		},
	}
}

func runServe(opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to init sqlite: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	metrics.Register()

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := repository.NewRepository(sqlDB)

	buttons := &input.ButtonCell{}
	samples := &input.SampleCell{}
	scale := input.NewLoadCell(samples)
	go scale.Run(ctx, cfg.Scale.Period)

	display := service.NewDisplayHub()
	eng, err := engine.New(cfg.EngineTimeouts(), engine.Deps{
		Display:  display,
		Store:    service.NewStoreService(repos.Meals, log),
		Network:  newNetwork(cfg.Network, log),
		Scale:    scale,
		Inputs:   input.NewSource(buttons, samples, input.NewClassifier(cfg.Scale.Threshold, cfg.Scale.ReleaseBand), log),
		Observer: service.NewRecorderService(repos.Transitions, log),
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	services := service.NewService(service.Deps{
		Repos:   repos,
		Engine:  eng,
		Display: display,
		Buttons: buttons,
		Scale:   scale,
		Auth:    cfg.ServiceAuth(),
		Logger:  log,
	})
	apiHandler := handlers.NewHandler(services, log)

	go services.Runner.Run(ctx, cfg.Engine.Tick)

	srv := &server.Server{}
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "port", cfg.Port)
		errCh <- srv.Run(cfg.Port, apiHandler.InitRoutes())
	}()

	return waitForShutdown(cancel, srv, errCh, log)
}

// newNetwork dials the network module, or runs offline when no address is set.
func newNetwork(cfg config.NetworkConfig, log *logger.Logger) engine.Network {
	if cfg.Addr == "" {
		log.Infow("network.addr not set; running offline")
		return network.Offline{}
	}
	return network.NewClient(cfg.Addr, cfg.DialTimeout, log)
}

// waitForShutdown blocks until a termination signal or a server failure and
// then stops the background goroutines and drains in-flight requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
		log.Infow("shutting down server...")
	case runErr = <-errCh:
		if runErr != nil {
			log.Errorw("error starting server", "err", runErr)
		}
	}

	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return runErr
}

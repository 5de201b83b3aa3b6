package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/t2t/waste-api/api/handlers"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/demodata"
)

const shutdownTimeout = 15 * time.Second

var (
	configPath string
	conf       *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waste-api",
		Short: "Waste management api",
		Long:  `REST api for waste reports, bins, collection schedules and drivers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conf, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the http api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Wipe every collection and load the demo dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := handlers.App{Config: *conf}
			if err := a.Initialize(cmd.Context()); err != nil {
				return err
			}
			defer func() { _ = a.Close(context.Background()) }()

			steps, err := demodata.NewSeeder(a.Stores()).Reset(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range steps {
				fmt.Printf("%-16s %d\n", s.Name, s.Count)
			}
			return nil
		},
	}
}

// serve runs the api until ctx is cancelled, then drains in flight
// requests and disconnects from the database
func serve(ctx context.Context) error {
	a := handlers.App{Config: *conf}
	if err := a.Initialize(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", a.Config.Port),
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		zap.S().Infow("waste-api is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
		)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		_ = a.Close(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	zap.S().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().With(err).Error("failed to shut down http server")
	}
	return a.Close(shutdownCtx)
}

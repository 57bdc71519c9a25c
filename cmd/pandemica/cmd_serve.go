package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/realmfikri/pandemica/internal/chart"
	"github.com/realmfikri/pandemica/internal/server"
	"github.com/realmfikri/pandemica/internal/sim"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation and stream frames over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Server.Addr = addr
			}
			protoDir, _ := cmd.Flags().GetString("proto-dir")

			world, err := buildWorld(cfg, logger)
			if err != nil {
				return err
			}
			adapter := chart.NewAdapter(cfg.Chart.OriginX, cfg.Chart.OriginY, cfg.Chart.AxisLength, cfg.Chart.CriticalHeights...)
			hub := server.NewHub(world, adapter, logger)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			notifySignals(sigCh)
			go func() {
				select {
				case sig := <-sigCh:
					logger.Info("shutting down", "signal", sig.String())
					cancel()
				case <-ctx.Done():
				}
			}()

			srv := &http.Server{
				Addr:    cfg.Server.Addr,
				Handler: server.NewMux(hub, cfg.Server.StaticDir, protoDir),
			}

			runErr := make(chan error, 1)
			go func() {
				runErr <- world.Run(ctx, cfg.Server.Interval, func(snap sim.Snapshot) {
					hub.Broadcast(snap)
				})
				cancel()
			}()

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("serving live feed", "addr", cfg.Server.Addr, "interval", cfg.Server.Interval)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case <-ctx.Done():
			case err := <-serveErr:
				if err != nil {
					cancel()
					return fmt.Errorf("server failed: %w", err)
				}
			}

			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("server shutdown", "err", err)
			}
			if err := <-runErr; err != nil {
				return fmt.Errorf("simulation stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides config)")
	cmd.Flags().String("proto-dir", "proto", "Directory holding the wire schema, served at /proto/")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"penal-engine/internal/handler"
	"penal-engine/internal/metrics"
	"penal-engine/internal/server"
	"penal-engine/internal/view"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the microsite and JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Listen port (overrides PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	h := handler.New(handler.Options{
		Catalog:  a.catalog,
		Renderer: renderer,
		Logger:   a.logger,
		Metrics:  metrics.New(),
		HubURL:   a.cfg.HubURL,
		Lang:     a.cfg.Language().String(),
	})

	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.cfg.Addr(), err)
	}

	a.logger.Info("penal engine starting",
		zap.Int("port", a.cfg.Port),
		zap.Int("penalties", len(a.catalog.Penalties)),
		zap.String("version", version),
	)
	return server.Run(ctx, ln, h.Handle, server.Options{
		ReadTimeout:     a.cfg.ReadTimeout,
		WriteTimeout:    a.cfg.WriteTimeout,
		ShutdownTimeout: a.cfg.ShutdownTimeout,
		Logger:          a.logger,
	})
}

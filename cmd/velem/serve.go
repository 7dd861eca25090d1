package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/velem/internal/errors"
	"github.com/vango-dev/velem/pkg/middleware"
	"github.com/vango-dev/velem/pkg/preview"
	"github.com/vango-dev/velem/pkg/render"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port    int
		host    string
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start the preview server.

POST a document to /render and every browser open on / shows the
result. Metrics are exposed on /metrics.

Examples:
  velem serve
  velem serve --port=8080
  curl -X POST --data-binary @button.yaml -H 'Content-Type: application/yaml' localhost:4000/render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}

			logger := slog.Default()
			pcfg := preview.Config{
				Addr: cfg.Address(),
				Render: render.RendererConfig{
					Pretty:       cfg.Render.Pretty,
					Indent:       cfg.Render.Indent,
					EventMarkers: cfg.Render.EventMarkers,
				},
				StrictTags:   cfg.Server.StrictTags,
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
				Handlers:     g.registry(logger),
				Registry:     prometheus.DefaultRegisterer,
				Gatherer:     prometheus.DefaultGatherer,
				Namespace:    cfg.Metrics.Namespace,
				Logger:       logger,
			}
			if tracing {
				pcfg.Tracing = middleware.NewTracing()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := g.output()
			success(out, "Preview on http://%s", cfg.Address())
			fmt.Fprintln(out)

			if err := preview.New(pcfg).ListenAndServe(ctx); err != nil {
				return errors.New("E140").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from velem.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from velem.json)")
	cmd.Flags().BoolVar(&tracing, "trace", false, "Open an OpenTelemetry span per mount")

	return cmd
}

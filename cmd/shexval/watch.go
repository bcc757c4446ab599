package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/david4096/sparql-agent-sub003/config"
	"github.com/david4096/sparql-agent-sub003/loader"
	"github.com/david4096/sparql-agent-sub003/metric"
	"github.com/david4096/sparql-agent-sub003/record"
	"github.com/david4096/sparql-agent-sub003/shex"
	"github.com/david4096/sparql-agent-sub003/validation"
)

func watchCmd() *cobra.Command {
	overrides := &config.Config{}

	cmd := &cobra.Command{
		Use:   "watch [flags] RECORD_FILE...",
		Short: "Revalidate records whenever the schema file changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(overrides)
			if err != nil {
				return err
			}

			schema, shapeID, err := loadSchema(cfg)
			if err != nil {
				return err
			}

			records, err := loadRecords(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			recorder := metric.NewRecorder()
			if cfg.Metrics.Addr != "" {
				startMetricsServer(ctx, cfg.Metrics.Addr, recorder)
			}

			run := func(schema *shex.Schema) {
				validator := validation.New(schema,
					validation.WithWorkers(cfg.Validation.Workers),
					validation.WithRecorder(recorder))
				runOnce(validator, records, shapeID, cfg.Validation.Format)
			}
			run(schema)

			watcher, err := loader.NewWatcher(cfg.Schema.Path, slog.Default())
			if err != nil {
				return err
			}
			if err := watcher.Start(ctx); err != nil {
				return err
			}
			slog.Info("watching schema", "path", cfg.Schema.Path, "shape", shapeID)

			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events():
					if !ok {
						return nil
					}
					if event.Err != nil {
						slog.Error("schema reload failed", "error", event.Err)
						continue
					}
					if _, exists := event.Schema.Shape(shapeID); !exists {
						slog.Error("shape no longer declared", "shape", shapeID)
						continue
					}
					run(event.Schema)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&overrides.Schema.Path, "schema", "s", "", "schema file path")
	cmd.Flags().StringVar(&overrides.Schema.Shape, "shape", "", "shape identifier, e.g. '<PersonShape>'")
	cmd.Flags().IntVar(&overrides.Validation.Workers, "workers", 0, "batch validation workers")
	cmd.Flags().StringVar(&overrides.Validation.Format, "format", "", "report format: text or json")
	cmd.Flags().StringVar(&overrides.Metrics.Addr, "metrics-addr", "", "prometheus listen address, e.g. :9090")
	return cmd
}

func runOnce(validator *validation.Validator, records []*record.Record, shapeID, format string) {
	reports, err := validator.ValidateBatch(records, shapeID)
	if err != nil {
		slog.Error("validation failed", "error", err)
		return
	}
	invalid := 0
	for _, report := range reports {
		if !report.IsValid() {
			invalid++
		}
		if err := printReport(report, format); err != nil {
			slog.Error("print report", "error", err)
		}
	}
	slog.Info("validation pass complete", "records", len(reports), "invalid", invalid)
}

func startMetricsServer(ctx context.Context, addr string, recorder *metric.Recorder) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		slog.Info("serving metrics", "addr", fmt.Sprintf("http://%s/metrics", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server failed", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}

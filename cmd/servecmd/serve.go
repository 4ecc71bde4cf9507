// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package servecmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	luxlog "github.com/luxfi/log"
	"github.com/luxfi/minter/pkg/application"
	"github.com/luxfi/minter/pkg/config"
	"github.com/luxfi/minter/pkg/constants"
	"github.com/luxfi/minter/pkg/metrics"
	"github.com/luxfi/minter/pkg/server"
	"github.com/luxfi/minter/pkg/ux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.Minter

	listenAddress string
	noMetrics     bool
)

// minter serve
func NewCmd(injectedApp *application.Minter) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "serve [saleName]",
		Short: "Serve read-only sale status over HTTP",
		Long: `The serve command answers read-only queries about a sale:

  GET /phase        current phase and supply counters
  GET /price        current unit price
  GET /token/{id}   token URI and metadata id of a unit
  GET /metrics      Prometheus metrics

The sale is reloaded on every request, so changes made by other minter
commands are visible immediately.`,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         serve,
	}
	cmd.Flags().StringVar(&listenAddress, "listen", "", "address to listen on (default from config)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "do not serve /metrics")
	return cmd
}

func serve(cmd *cobra.Command, args []string) error {
	saleName := args[0]
	// fail fast on a missing sale
	if _, err := app.LoadSale(saleName); err != nil {
		return err
	}

	addr := listenAddress
	if addr == "" {
		addr = app.Conf.GetConfigStringValue(config.ListenAddressKey)
	}

	var (
		m        *metrics.Sale
		gatherer prometheus.Gatherer
	)
	if !noMetrics && app.Conf.GetConfigBoolValue(config.MetricsEnabledKey) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		gatherer = reg
	}

	source := func() (server.Reader, error) {
		s, err := app.OpenSale(saleName, m)
		if err != nil {
			return nil, err
		}
		// read only, nothing to journal
		app.CloseSale(s)
		return s, nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ux.Logger.PrintToUser("Serving sale %s on http://%s", saleName, addr)
	accessLog, err := newAccessLogger()
	if err != nil {
		return err
	}
	defer func() { _ = accessLog.Sync() }()

	app.Log.Info("serving sale", luxlog.String("sale", saleName), luxlog.String("listen", addr))
	err = server.New(source, gatherer, accessLog).Run(ctx, addr)
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// newAccessLogger writes the HTTP request log as JSON lines next to the CLI log.
func newAccessLogger() (*zap.Logger, error) {
	if err := os.MkdirAll(app.GetLogDir(), constants.DefaultPerms755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.OutputPaths = []string{filepath.Join(app.GetLogDir(), constants.AccessLogName)}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

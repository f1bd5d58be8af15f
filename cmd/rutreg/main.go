package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/miajio/keytrie/pkg/badger"
	"github.com/miajio/keytrie/pkg/config"
	"github.com/miajio/keytrie/pkg/logger"
	"github.com/miajio/keytrie/pkg/metrics"
	"github.com/miajio/keytrie/pkg/registry"
	"github.com/miajio/keytrie/pkg/shell"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	output := flag.String("o", "", "registry output file (overrides registry.output_file)")
	flag.Parse()

	if err := run(*configPath, *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, output string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Registry.OutputFile = output
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := badger.Default(cfg.Store.Path, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	db.SetGCInterval(cfg.Store.GCInterval)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.Metrics.Addr != "" {
		srv := metrics.Serve(cfg.Metrics.Addr, reg, log)
		defer srv.Close()
	}

	engine, err := registry.NewEngine(db, log, m)
	if err != nil {
		db.Close()
		return err
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Error("close store fail", zap.Error(err))
		}
	}()

	return shell.NewRegistryShell(engine, cfg.Registry.OutputFile, os.Stdout).Run(os.Stdin)
}

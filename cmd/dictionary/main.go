package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/miajio/keytrie/pkg/badger"
	"github.com/miajio/keytrie/pkg/config"
	"github.com/miajio/keytrie/pkg/dictionary"
	"github.com/miajio/keytrie/pkg/logger"
	"github.com/miajio/keytrie/pkg/metrics"
	"github.com/miajio/keytrie/pkg/shell"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
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

	engine, err := dictionary.NewEngine(db, log, m)
	if err != nil {
		db.Close()
		return err
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Error("close store fail", zap.Error(err))
		}
	}()

	return shell.NewDictionaryShell(engine, os.Stdout).Run(os.Stdin)
}

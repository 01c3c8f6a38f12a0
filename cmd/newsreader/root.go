package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"newsreader-core/core/interfaces"
	"newsreader-core/infrastructure/metrics/prometheus"
	"newsreader-core/pkg/config"
	newsreader "newsreader-core/sdk"
)

// app is the state shared by every subcommand once configuration is loaded
type app struct {
	cfgFile string
	out     io.Writer

	cfg     *config.Config
	logger  interfaces.Logger
	metrics *prometheus.Metrics
	client  *newsreader.Client
	closers []io.Closer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "newsreader",
		Short:         "Deep-link resolution, search and listings for the news content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Path to a YAML config file (environment overrides it)")

	root.AddCommand(
		newResolveCmd(a),
		newNotifyCmd(a),
		newSearchCmd(a),
		newAuthorsCmd(a),
		newHomeCmd(a),
		newWeatherCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger

	store, closer := openStore(cfg.Store, logger)
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	a.metrics = prometheus.New("newsreader")
	a.client, err = newClient(cfg, logger, store, a.metrics)
	return err
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *app) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"github.com/hupe1980/vecstat"
	"github.com/hupe1980/vecstat/internal/config"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	format     string
	path       string
	logLevel   string

	cfg    *config.Config
	logger *vecstat.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "vecstat",
		Short:        "Statistics and introspection over vector datasets",
		SilenceUsage: true,
		Long: `vecstat loads a dataset of number vectors and labels from a local file,
S3, MinIO or a Postgres pgvector table and reports centroids, variances,
bounds and covariance matrices, overall or per class label.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a vecstat.yaml config file")
	flags.StringVarP(&a.format, "format", "f", "", "output format: yaml or json")
	flags.StringVarP(&a.path, "path", "p", "", "dataset blob name, overrides source.path (- reads stdin)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newSummaryCmd(a),
		newMatchCmd(a),
		newLabelsCmd(a),
		newTypeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = a.format
	}
	if cmd.Flags().Changed("path") {
		cfg.Source.Path = a.path
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = vecstat.NewTextLogger(level)
	return nil
}

// Package cli provides the command-line interface for thermo.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermo/internal/config"
	"github.com/katalvlaran/thermo/metrics"
)

// Version is set at build time.
var Version = "0.1.0"

// app is the state shared by every command of one invocation.
type app struct {
	cfgPath string
	jsonOut bool

	cfg     config.Config
	logger  *slog.Logger
	cleanup func() error
	runID   string
	metrics *metrics.Estimator
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "thermo",
		Short: "Effective-temperature estimation for annealing samplers",
		Long: `Thermo estimates the effective temperature of samples drawn from a binary
quadratic model by maximising their pseudo-likelihood, converts between
Ising biases and physical device units, and generates test problems.

Configuration is read from .env, an optional YAML file (--config or
THERMO_CONFIG) and THERMO_* environment variables; flags win.`,
		Version:            Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print machine-readable JSON")

	root.AddCommand(
		a.estimateCmd(),
		a.fieldCmd(),
		a.fastCmd(),
		a.freezeoutCmd(),
		a.fluxBiasCmd(),
		a.hBiasCmd(),
		a.cutoffCmd(),
		a.generateCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	a.runID = uuid.NewString()
	a.logger = logger.With("run_id", a.runID, "command", cmd.Name())
	a.cleanup = cleanup
	if cfg.MetricsTextfile != "" {
		a.metrics = metrics.NewEstimator(metrics.Config{})
	}
	a.logger.Debug("configuration loaded", "seed", cfg.Seed, "workers", cfg.Workers, "method", cfg.Method)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.cleanup == nil {
		return nil
	}
	if a.metrics != nil {
		if err := metrics.WriteTextfile(a.metrics.Registry(), a.cfg.MetricsTextfile); err != nil {
			a.logger.Warn("failed to write metrics textfile", "error", err, "path", a.cfg.MetricsTextfile)
		}
	}
	return a.cleanup()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "thermo", Version)
		},
	}
}

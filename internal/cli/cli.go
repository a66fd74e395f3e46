// Package cli implements the wgraph command-line interface.
//
// wgraph plays the role of the host process: it drives the handle-based API
// in package host from scenario files, the way a foreign front end would.
//
// # Commands
//
//   - run: execute a YAML scenario of graph operations
//   - demo: build the six-vertex sample graph and run every algorithm on it
//   - gen: write a scenario for a standard shape (path, grid, random, ...)
//
// # Configuration
//
// An optional TOML file (--config) provides defaults; flags override it:
//
//	max_vertices = 1000
//	log_level    = "debug"
//	metrics      = true
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports calls the engine ignored because of invalid vertex ids.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfg    Config
	logger *log.Logger
	out    io.Writer
}

// Execute runs the wgraph CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		verbose     bool
		configPath  string
		maxVertices int
		metrics     bool
	)
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "wgraph",
		Short:         "wgraph drives the weighted graph engine from scenario files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-vertices") {
				cfg.MaxVertices = maxVertices
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics = metrics
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("%w: log_level %q", ErrBadConfig, cfg.LogLevel)
			}

			a.cfg = cfg
			a.logger = newLogger(errOut, level)
			cmd.SetContext(withLogger(cmd.Context(), a.logger))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("wgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().IntVar(&maxVertices, "max-vertices", 0, "vertex bound per graph (0 = unbounded)")
	root.PersistentFlags().BoolVar(&metrics, "metrics", false, "print operation metrics after the run")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newGenCmd(a))

	return root
}

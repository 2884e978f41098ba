// Command bodies prints the surface area and volume of a mixed set of
// geometric bodies, each reached only through the body.Body interface.
//
// Usage:
//
//	bodies [--config bodies.yaml] [--precision 4] [--verbose]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/smallken/geometric-bodies/bodydispatcher"
	"github.com/smallken/geometric-bodies/config"
	"github.com/smallken/geometric-bodies/report"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		precision  int
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "bodies",
		Short: "Report surface area and volume of spheres and pyramids",
		Long: `Builds a collection of bodies (spheres and rectangular-base pyramids),
then walks it through a single interface, printing each body's description,
surface area and volume.

Run without arguments to print the built-in demonstration set.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.New(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") {
				conf.SetPrecision(precision)
			}
			return run(conf, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file describing the bodies (default: built-in set)")
	rootCmd.Flags().IntVarP(&precision, "precision", "p", config.DefaultPrecision, "Fractional digits for area and volume")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return rootCmd
}

func setupLogger(w io.Writer, verbose bool) {
	lvl := log.LevelInfo
	if verbose {
		lvl = log.LevelDebug
	}
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd())
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(w, lvl, useColor)))
}

func run(conf *config.Config, out io.Writer) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dispatcher, err := bodydispatcher.New(conf)
	if err != nil {
		return err
	}
	defer dispatcher.Close()
	log.Info("bodies ready", "count", dispatcher.Len(), "owned", dispatcher.Owned(), "precision", conf.GetPrecision())

	reporter := report.New(out, int32(conf.GetPrecision()))
	if err := reporter.Header(); err != nil {
		return err
	}
	if err := dispatcher.Dispatch(reporter.Report); err != nil {
		return err
	}
	return reporter.Footer()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("bodies failed", "err", err)
		os.Exit(1)
	}
}

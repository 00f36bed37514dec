// Package main is the entry point for the routekit demo, a terminal version
// of a small app with pages, sheets and alerts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/routekit/pkg/routekit"
	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
	"github.com/BrandonKowalski/routekit/pkg/routekit/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		lang       string
	)

	cmd := &cobra.Command{
		Use:          "routekit-demo",
		Short:        "Navigate pages, sheets and alerts in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := routekit.LoadConfigIfExists(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				opts.LogLevel = logLevel
			}
			if cmd.Flags().Changed("lang") {
				opts.Language = lang
			}

			if err := routekit.Init(opts); err != nil {
				return err
			}
			defer routekit.Close()

			logger := routekit.GetLogger()
			logger.Info("Starting demo", "config", configPath, "language", opts.Language)

			r := routekit.NewRouter()
			app := newDemo(logger)
			if err := tui.Run(r, app.page1Screen()); err != nil {
				return fmt.Errorf("failed to run demo: %w", err)
			}

			logger.Info("Demo finished", "depth", r.Depth())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "path to a TOML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "application log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&lang, "lang", constants.DefaultLanguage, "language of built-in strings")

	return cmd
}

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/multirange/internal/infra/config"
	"github.com/aalvaropc/multirange/internal/infra/logger"
	"github.com/aalvaropc/multirange/internal/infra/watcher"
	"github.com/aalvaropc/multirange/internal/slider"
	"github.com/aalvaropc/multirange/internal/ui/tui"
	"github.com/aalvaropc/multirange/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	config string
	debug  bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var watch bool
	var width int

	cmd := &cobra.Command{
		Use:          "multirange",
		Short:        "Multirange: edit non-overlapping intervals on a slider",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(g.config)
			if err != nil {
				return err
			}

			cleanup := setupLogging(path, g.debug)
			defer cleanup()

			log := logger.L()
			store, _, err := usecase.NewOpenSlider(config.NewLoader(), slider.WithLogger(log)).Execute(path)
			if err != nil {
				return err
			}
			if _, err := usecase.CheckStore(path, store); err != nil {
				return err
			}

			deps := tui.Deps{
				Store:          store,
				ConfigPath:     path,
				OnSliderChange: logChange(log),
				Width:          width,
				Logger:         log,
				Debug:          g.debug,
			}
			if watch {
				deps.Watcher = watcher.New(config.NewLoader(), watcher.WithLogger(log))
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.config, "config", "f", "", "Slider config file (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .multirange/logs/multirange.log")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload intervals when the config file changes")
	cmd.Flags().IntVar(&width, "width", 0, "Track width in columns (0 follows the terminal)")

	cmd.AddCommand(
		initCmd(),
		validateCmd(g),
		showCmd(g),
		ticksCmd(g),
		applyCmd(g),
		versionCmd(),
	)
	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/infra/config"
	"github.com/aalvaropc/multirange/internal/usecase"
)

func ticksCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "ticks",
		Short: "Print the track indicator positions of a slider config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(g.config)
			if err != nil {
				return err
			}

			store, _, err := usecase.NewOpenSlider(config.NewLoader()).Execute(path)
			if err != nil {
				return err
			}

			b := store.Transformer().TransformBounds(store.Bounds())
			return printTicks(cmd.OutOrStdout(), domain.Ticks(b.Min, b.Max, store.RangeType()), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

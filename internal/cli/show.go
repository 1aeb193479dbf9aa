package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/multirange/internal/infra/config"
	"github.com/aalvaropc/multirange/internal/slider"
	"github.com/aalvaropc/multirange/internal/usecase"
	"github.com/aalvaropc/multirange/internal/usecase/query"
)

func showCmd(g *globalFlags) *cobra.Command {
	var view string
	var format string
	var expr string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the intervals of a slider config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := slider.ParseView(view)
			if err != nil {
				return err
			}

			path, err := resolveConfigPath(g.config)
			if err != nil {
				return err
			}

			store, _, err := usecase.NewOpenSlider(config.NewLoader()).Execute(path)
			if err != nil {
				return err
			}
			snap := usecase.BuildSnapshot(store, v)

			if expr != "" {
				val, err := query.Eval(snap, expr)
				if err != nil {
					return err
				}
				out, err := query.Format(val)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			return printSnapshot(cmd.OutOrStdout(), snap, format)
		},
	}

	c.Flags().StringVar(&view, "view", "working", "Interval set to print: working|initial")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|yaml")
	c.Flags().StringVarP(&expr, "query", "q", "", "JSONPath expression evaluated against the snapshot")
	return c
}

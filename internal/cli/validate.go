package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/multirange/internal/infra/config"
	"github.com/aalvaropc/multirange/internal/usecase"
)

func validateCmd(g *globalFlags) *cobra.Command {
	var strict bool

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check a slider config without opening the UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(g.config)
			if err != nil {
				return err
			}

			loader := config.NewLoader(config.WithStrictFields(strict))
			problems, err := usecase.NewValidateSlider(loader).Execute(path)
			for _, p := range problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "- %s\n", p)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().BoolVar(&strict, "strict", true, "Reject unknown keys in the config file")
	return c
}

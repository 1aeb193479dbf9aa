package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/multirange/internal/app/template"
	"github.com/aalvaropc/multirange/internal/infra/config"
	"github.com/aalvaropc/multirange/internal/infra/logger"
	"github.com/aalvaropc/multirange/internal/slider"
	"github.com/aalvaropc/multirange/internal/usecase"
)

func applyCmd(g *globalFlags) *cobra.Command {
	var edits string
	var tmpl string
	var format string

	c := &cobra.Command{
		Use:   "apply",
		Short: "Replay an edit script against a slider config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "pretty" && format != "json" && format != "" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			path, err := resolveConfigPath(g.config)
			if err != nil {
				return err
			}

			cleanup := setupLogging(path, g.debug)
			defer cleanup()
			log := logger.L()

			// Validate the template up front so a typo fails before any edit runs.
			if _, err := template.RenderString(tmpl, template.IntervalVars("", sampleInterval)); err != nil {
				return err
			}

			var lines []string
			onChange := func(c slider.Change) {
				logChange(log)(c)
				line, err := template.RenderString(tmpl, template.IntervalVars(c.Kind.String(), c.Transformed()))
				if err != nil {
					return
				}
				lines = append(lines, line)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			loader := config.NewLoader()
			res, err := usecase.NewApplyEdits(loader, loader, usecase.WithApplyLogger(log)).
				Execute(ctx, path, edits, onChange)
			if err != nil {
				return err
			}

			if err := printApply(cmd.OutOrStdout(), res, lines, format); err != nil {
				return err
			}
			if n := res.Failed(); n > 0 {
				return fmt.Errorf("script %s failed (%d expectation(s))", res.Script, n)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&edits, "edits", "e", "", "Edit script (required)")
	c.Flags().StringVar(&tmpl, "template", template.DefaultChangeLine, "Line printed per change; vars: kind id start end len start_clock end_clock")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("edits")
	return c
}

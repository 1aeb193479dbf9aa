package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/multirange/internal/infra/fsinit"
	"github.com/aalvaropc/multirange/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a sample multirange.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitConfig(fsinit.NewInitializer()).Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", filepath.Join(root, "multirange.yaml"))
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to write the sample config into")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}

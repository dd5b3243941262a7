package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zeusync/gnr/internal/config"
)

func newInitConfigCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a commented default config file",
		Long: `init-config writes the default configuration to path, or to
~/.config/gnr/config.yaml. A .toml path selects the TOML template.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join("~", ".config", "gnr", "config.yaml")
			if len(args) == 1 {
				path = args[0]
			}
			path = config.ExpandHome(path)

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.WriteDefault(path); err != nil {
				return err
			}
			if _, err := config.Load(path); err != nil {
				return fmt.Errorf("written config does not load: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// Package cli implements the gnr command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zeusync/gnr/internal/config"
)

// ErrFailed is returned when some of the inputs of a batch command failed.
// The individual failures have already been reported on stderr.
var ErrFailed = errors.New("inputs failed")

// ErrStdinTwice is returned when "-" is named more than once.
var ErrStdinTwice = errors.New(`standard input "-" given more than once`)

type app struct {
	cfgFile string
	viper   *viper.Viper
	cfg     config.Config
}

func NewRootCommand(version string) *cobra.Command {
	a := &app{viper: viper.New()}

	root := &cobra.Command{
		Use:   "gnr",
		Short: "Grid node registry shared-language codec",
		Long: `gnr decodes, validates and stores shared-language documents of the grid
node registry. Documents of superseded versions are translated to the
current version of their type.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file, .yaml or .toml (default: built-in defaults)")
	flags.String("log-level", "", "debug, info, warn, error or none")
	flags.String("db", "", "SQLite database path")
	flags.Bool("strict", false, "reject unknown versions instead of falling back to the current one")
	_ = a.viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.viper.BindPFlag("database.path", flags.Lookup("db"))
	_ = a.viper.BindPFlag("codec.strict_versions", flags.Lookup("strict"))

	root.AddCommand(
		newDecodeCommand(a),
		newTypesCommand(a),
		newInitConfigCommand(),
		newMigrateCommand(a),
		newStoreCommand(a),
	)
	return root
}

func (a *app) loadConfig() error {
	if a.cfgFile != "" {
		a.viper.SetConfigFile(a.cfgFile)
		if err := a.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	cfg, err := config.FromViper(a.viper)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// readInput reads a named file, or stdin for "-".
func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func inputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}
	stdin := 0
	for _, name := range args {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, ErrStdinTwice
	}
	return args, nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/registry"
	"github.com/zeusync/gnr/internal/injector"
)

func newTypesCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "types [type-name...]",
		Short: "List the registered types, their versions and fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, cleanup, err := injector.InitializeCodec(a.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := selectTypes(codec, args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err = enc.Encode(entries); err != nil {
					return err
				}
				return enc.Close()
			case "text":
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "TYPE\tVERSION\tLEGACY\tFIELDS")
				for _, e := range entries {
					version := e.Version
					if version == schema.NoVersion {
						version = "-"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.TypeName, version, strings.Join(e.Legacy, ","), strings.Join(e.Fields, ","))
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "text, json or yaml")
	return cmd
}

func selectTypes(codec *registry.Codec, names []string) ([]registry.Entry, error) {
	all := codec.Types()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]registry.Entry, len(all))
	for _, e := range all {
		byName[e.TypeName] = e
	}
	out := make([]registry.Entry, 0, len(names))
	for _, name := range names {
		e, ok := byName[name]
		if !ok {
			return nil, &registry.UnknownTypeError{TypeName: name, Known: codec.Known()}
		}
		out = append(out, e)
	}
	return out, nil
}

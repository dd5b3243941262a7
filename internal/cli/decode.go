package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/registry"
	"github.com/zeusync/gnr/internal/injector"
	"github.com/zeusync/gnr/pkg/concurrent"
)

type decoded struct {
	data []byte
	path registry.Path
}

func newDecodeCommand(a *app) *cobra.Command {
	var (
		workers int
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "Decode documents and print their canonical current-version JSON",
		Long: `Decode reads one JSON document per file, or from stdin when no file or "-"
is given, and prints the canonical encoding of its current version, one
line per input in argument order. Failures are reported on stderr with
their error kind.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := inputs(args)
			if err != nil {
				return err
			}
			codec, cleanup, err := injector.InitializeCodec(a.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			results := concurrent.ParallelMap(names, workers, func(name string) (decoded, error) {
				data, err := readInput(cmd.InOrStdin(), name)
				if err != nil {
					return decoded{}, err
				}
				doc, err := registry.ParseDocument(data)
				if err != nil {
					return decoded{}, err
				}
				v, path, err := codec.Resolve(doc)
				if err != nil {
					return decoded{}, err
				}
				out, err := codec.Encode(v)
				return decoded{data: out, path: path}, err
			})

			failed := 0
			for i, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %v\n", names[i], kind(r.Err), r.Err)
					continue
				}
				if explain {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", names[i], r.Value.path)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(r.Value.data))
			}
			if failed > 0 {
				return fmt.Errorf("decode: %d of %d %w", failed, len(names), ErrFailed)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "inputs decoded in parallel")
	cmd.Flags().BoolVar(&explain, "explain", false, "report on stderr how each document was resolved")
	return cmd
}

// kind names the error for reports; I/O failures have no schema kind.
func kind(err error) string {
	if k := schema.Kind(err); k != "" && k != "Unknown" {
		return k
	}
	return "IO"
}

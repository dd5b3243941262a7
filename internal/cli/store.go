package cli

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/spf13/cobra"

	"github.com/zeusync/gnr/internal/injector"
	"github.com/zeusync/gnr/internal/store"
	"github.com/zeusync/gnr/pkg/concurrent"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the store schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(s *store.Store) error {
				version, err := s.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
				return nil
			})
		},
	}
}

func newStoreCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Persist and load position points, GNodes and connectivity edges",
	}
	cmd.AddCommand(newStorePutCommand(a), newStoreGetCommand(a), newStoreStatsCommand(a))
	return cmd
}

func newStorePutCommand(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "put [file...]",
		Short: "Decode documents and store them",
		Long: `put decodes each input like decode does and stores the current-version
value, replacing a stored value with the same id. Referenced rows must be
stored first. The first failure stops the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := inputs(args)
			if err != nil {
				return err
			}
			return a.withStore(cmd.Context(), func(s *store.Store) error {
				var mu sync.Mutex
				return concurrent.ForEach(cmd.Context(), names, workers, func(ctx context.Context, name string) error {
					data, err := readInput(cmd.InOrStdin(), name)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					v, err := s.PutBytes(ctx, data)
					if err != nil {
						return fmt.Errorf("%s: %s: %w", name, kind(err), err)
					}

					mu.Lock()
					defer mu.Unlock()
					fmt.Fprintf(cmd.OutOrStdout(), "%s: stored %s\n", name, v.Descriptor())
					return nil
				})
			})
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "inputs stored in parallel")
	return cmd
}

func newStoreGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <type-name> <id>",
		Short: "Load a stored value and print its canonical JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(s *store.Store) error {
				v, err := s.Get(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				data, err := v.Encode()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			})
		},
	}
}

func newStoreStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count the stored values per type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(s *store.Store) error {
				stats, err := s.Statistics(cmd.Context())
				if err != nil {
					return err
				}
				names := s.Persisted()
				slices.Sort(names)
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, stats[name])
				}
				return nil
			})
		},
	}
}

func (a *app) withStore(ctx context.Context, fn func(s *store.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, cleanup, err := injector.InitializeStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(s)
}

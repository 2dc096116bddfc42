package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"tastebuds/internal/admin"
	"tastebuds/internal/cache"
	"tastebuds/internal/config"
	"tastebuds/internal/database"

	"github.com/spf13/cobra"
)

// opener yields a registry and a function releasing its connections.
type opener func(ctx context.Context) (*admin.Registry, func(), error)

func openRegistry(ctx context.Context) (*admin.Registry, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	redisClient := cache.NewClient(ctx, cfg.RedisURL)
	closeFn := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = database.Close(db)
	}
	return admin.NewRegistry(db, cache.NewStore(redisClient)), closeFn, nil
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Tastebuds table administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// withRegistry opens the registry around a subcommand body.
	withRegistry := func(fn func(cmd *cobra.Command, r *admin.Registry, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()
			return fn(cmd, r, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "tables",
			Short: "List tables with their row counts",
			Args:  cobra.NoArgs,
			RunE: withRegistry(func(cmd *cobra.Command, r *admin.Registry, _ []string) error {
				summaries, err := r.Summaries(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "TABLE\tROWS")
				for _, s := range summaries {
					_, _ = fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Rows)
				}
				return w.Flush()
			}),
		},
		&cobra.Command{
			Use:   "list <table>",
			Short: "Print every row of a table as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: withRegistry(func(cmd *cobra.Command, r *admin.Registry, args []string) error {
				rows, err := r.List(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rows)
			}),
		},
		&cobra.Command{
			Use:   "get <table> <key>",
			Short: "Print one row; composite keys are written a,b",
			Args:  cobra.ExactArgs(2),
			RunE: withRegistry(func(cmd *cobra.Command, r *admin.Registry, args []string) error {
				row, err := r.Get(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), row)
			}),
		},
		&cobra.Command{
			Use:   "delete <table> <key>",
			Short: "Delete one row and everything that depends on it",
			Args:  cobra.ExactArgs(2),
			RunE: withRegistry(func(cmd *cobra.Command, r *admin.Registry, args []string) error {
				if err := r.Delete(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", args[0], args[1])
				return err
			}),
		},
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

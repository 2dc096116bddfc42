// Command migrate applies, inspects and rolls back the database schema.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"tastebuds/internal/config"
	"tastebuds/internal/database"
	"tastebuds/internal/observability"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withDB loads the configuration and opens the database around a subcommand body.
func withDB(fn func(ctx context.Context, cmd *cobra.Command, cfg *config.Config, db *gorm.DB, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()
		return fn(cmd.Context(), cmd, cfg, db, args)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Tastebuds schema management",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending SQL migrations",
			Args:  cobra.NoArgs,
			RunE: withDB(func(ctx context.Context, _ *cobra.Command, _ *config.Config, db *gorm.DB, _ []string) error {
				if err := database.RunMigrations(ctx, db); err != nil {
					return fmt.Errorf("sql migrations failed: %w", err)
				}
				observability.Logger.InfoContext(ctx, "SQL migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "auto",
			Short: "Create or update tables from the GORM models",
			Args:  cobra.NoArgs,
			RunE: withDB(func(ctx context.Context, _ *cobra.Command, cfg *config.Config, db *gorm.DB, _ []string) error {
				cfg.DBSchemaMode = database.SchemaModeAuto
				if err := database.ApplySchema(ctx, db, cfg); err != nil {
					return fmt.Errorf("auto schema apply failed: %w", err)
				}
				observability.Logger.InfoContext(ctx, "AutoMigrate applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the schema plan and pending migrations",
			Args:  cobra.NoArgs,
			RunE: withDB(func(ctx context.Context, cmd *cobra.Command, cfg *config.Config, db *gorm.DB, _ []string) error {
				status, err := database.GetSchemaStatus(ctx, db, cfg)
				if err != nil {
					return fmt.Errorf("schema status failed: %w", err)
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintf(w, "driver\t%s\n", status.Driver)
				_, _ = fmt.Fprintf(w, "mode\t%s\n", status.Mode)
				_, _ = fmt.Fprintf(w, "env\t%s\n", status.Environment)
				_, _ = fmt.Fprintf(w, "sql migrations\t%t\n", status.SQL)
				_, _ = fmt.Fprintf(w, "auto migrate\t%t\n", status.Auto)
				_, _ = fmt.Fprintf(w, "applied\t%v\n", status.AppliedVersions)
				for _, m := range status.PendingMigrations {
					_, _ = fmt.Fprintf(w, "pending\t%s\n", m.String())
				}
				return w.Flush()
			}),
		},
		&cobra.Command{
			Use:   "down <version>",
			Short: "Roll back one applied migration",
			Args:  cobra.ExactArgs(1),
			RunE: withDB(func(ctx context.Context, _ *cobra.Command, _ *config.Config, db *gorm.DB, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				if err := database.RollbackMigration(ctx, db, version); err != nil {
					return fmt.Errorf("rollback failed: %w", err)
				}
				observability.Logger.InfoContext(ctx, "Migration rolled back", "version", version)
				return nil
			}),
		},
	)
	return root
}

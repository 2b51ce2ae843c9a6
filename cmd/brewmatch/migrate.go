package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/brewmatch/internal/cli"
	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the journal database schema to the latest version.

Other commands migrate automatically; use --status to inspect the
database without changing it.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	dbPath := cfg.Database.Path

	common.LogInfo("Starting database migration", common.Fields{
		"database":    dbPath,
		"status_only": status,
	})

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if status {
		store, err := storage.NewSQLiteStorage(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = store.Close() }()

		current, err := store.SchemaVersion(ctx)
		if err != nil {
			return err
		}

		msg := fmt.Sprintf("Schema version %d of %d", current, storage.ExpectedSchemaVersion)
		if current < storage.ExpectedSchemaVersion {
			_, err = fmt.Fprintln(out, cli.FormatWarning(msg+"; run 'brewmatch migrate' to upgrade"))
		} else {
			_, err = fmt.Fprintln(out, cli.FormatSuccess(msg))
		}
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer func() { _ = store.Close() }()

	_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Database at %s is up to date (schema version %d)", store.Path(), storage.ExpectedSchemaVersion)))
	return err
}

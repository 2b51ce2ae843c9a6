package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/brewmatch/internal/catalog"
	"github.com/joshsymonds/brewmatch/internal/cli"
	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/config"
	"github.com/joshsymonds/brewmatch/internal/engine"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/recommend"
	"github.com/joshsymonds/brewmatch/internal/storage"
)

// currentConfig returns the loaded configuration, falling back to the
// defaults when no command hook ran.
func currentConfig() (*config.Config, error) {
	if appConfig != nil {
		return appConfig, nil
	}
	v := viper.New()
	config.SetDefaults(v)
	return config.Load(v)
}

// initEngine builds the engine over the configured catalog.
func initEngine() (*engine.Engine, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, common.NewUserError("Could not load the coffee catalog", err)
	}

	return engine.NewWithConfig(cat, cfg.EngineConfig())
}

// initStorage opens and migrates the journal database.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}

	dbPath := cfg.Database.Path
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", cli.FormatTable, "output format (table, json)")
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if !cli.ValidFormat(format) {
		return "", common.NewUserError(fmt.Sprintf("Unknown output format %q", format), common.ErrInvalidConfig)
	}
	return format, nil
}

// addBudgetFlags registers --budget and --purpose.
func addBudgetFlags(cmd *cobra.Command) {
	cmd.Flags().String("budget", "", "budget tier (entry, mid, high, professional)")
	cmd.Flags().StringSlice("purpose", nil, "purposes (quick-espresso, milk-drinks, pour-over, cold-brew, experimenting, full-setup)")
}

func budgetFlags(cmd *cobra.Command) (model.PriceTier, []recommend.Purpose, error) {
	budgetName, _ := cmd.Flags().GetString("budget")
	budget := model.ParseTier(budgetName)
	if budgetName != "" && !budget.Known() {
		return budget, nil, common.NewUserError(fmt.Sprintf("Unknown budget %q", budgetName), common.ErrInvalidConfig)
	}

	names, _ := cmd.Flags().GetStringSlice("purpose")
	for _, name := range names {
		if _, ok := recommend.ParsePurpose(name); !ok {
			return budget, nil, common.NewUserError(fmt.Sprintf("Unknown purpose %q (valid: %v)", name, recommend.Purposes()), common.ErrInvalidConfig)
		}
	}
	return budget, recommend.ParsePurposes(names), nil
}

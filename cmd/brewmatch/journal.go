package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/joshsymonds/brewmatch/internal/cli"
	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/service"
)

// entryTimeLayouts are accepted for --date and --since, tried in order.
var entryTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04", time.DateOnly}

func journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a brewing journal",
	}

	cmd.AddCommand(journalAddCmd())
	cmd.AddCommand(journalListCmd())
	cmd.AddCommand(journalDeleteCmd())
	cmd.AddCommand(journalImportCmd())
	cmd.AddCommand(journalStatsCmd())

	return cmd
}

func journalAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a brew",
		Long: `Record one brew in the journal.

Example:
  brewmatch journal add --coffee "Ethiopia Guji" --method pour-over --dose 15 --water 250 --rating 4`,
		Args: cobra.NoArgs,
		RunE: runJournalAdd,
	}

	cmd.Flags().String("coffee", "", "coffee name (required)")
	cmd.Flags().String("method", "", "brew method (required)")
	cmd.Flags().String("grind", "", "grind size")
	cmd.Flags().Float64("dose", 0, "coffee dose in grams")
	cmd.Flags().Float64("water", 0, "water in grams")
	cmd.Flags().Int("time", 0, "brew time in seconds")
	cmd.Flags().Float64("temp", 0, "water temperature in °C")
	cmd.Flags().Int("rating", 0, "rating from 1 to 5 (required)")
	cmd.Flags().String("notes", "", "free-form notes")
	cmd.Flags().StringSlice("tasting", nil, "tasting notes")
	cmd.Flags().String("date", "", "brew time (default now)")
	_ = cmd.MarkFlagRequired("coffee")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func runJournalAdd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	entry := model.BrewLogEntry{Date: time.Now().UTC()}
	entry.CoffeeName, _ = flags.GetString("coffee")
	entry.BrewMethod, _ = flags.GetString("method")
	entry.GrindSize, _ = flags.GetString("grind")
	entry.DoseGrams, _ = flags.GetFloat64("dose")
	entry.WaterGrams, _ = flags.GetFloat64("water")
	entry.BrewTimeSeconds, _ = flags.GetInt("time")
	entry.WaterTempC, _ = flags.GetFloat64("temp")
	entry.Rating, _ = flags.GetInt("rating")
	entry.Notes, _ = flags.GetString("notes")
	entry.TastingNotes, _ = flags.GetStringSlice("tasting")

	if date, _ := flags.GetString("date"); date != "" {
		t, err := parseEntryTime(date)
		if err != nil {
			return err
		}
		entry.Date = t.UTC()
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveEntry(ctx, &entry); err != nil {
		if errors.Is(err, common.ErrInvalidEntry) {
			return common.NewUserError("Brew not saved", err)
		}
		return fmt.Errorf("failed to save brew: %w", err)
	}

	slog.Debug("Brew logged", "id", entry.ID, "coffee", entry.CoffeeName)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Logged %s (%s) as %s", entry.CoffeeName, entry.BrewMethod, entry.ID)))
	return err
}

func journalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged brews, newest first",
		Args:  cobra.NoArgs,
		RunE:  runJournalList,
	}

	cmd.Flags().String("since", "", "only brews at or after this time")
	cmd.Flags().String("method", "", "only brews with this method")
	cmd.Flags().Int("limit", 20, "maximum number of brews (0 for all)")
	addOutputFlag(cmd)

	return cmd
}

func runJournalList(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	filter := service.EntryFilter{}
	filter.BrewMethod, _ = cmd.Flags().GetString("method")
	filter.Limit, _ = cmd.Flags().GetInt("limit")
	if since, _ := cmd.Flags().GetString("since"); since != "" {
		t, err := parseEntryTime(since)
		if err != nil {
			return err
		}
		filter.Since = &t
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.ListEntries(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list brews: %w", err)
	}

	if format == cli.FormatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), entries)
	}
	return cli.RenderEntries(cmd.OutOrStdout(), entries)
}

func journalDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logged brew",
		Args:  cobra.ExactArgs(1),
		RunE:  runJournalDelete,
	}

	cmd.Flags().BoolP("yes", "y", false, "skip confirmation")

	return cmd
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("No brew with ID %q", id), err)
		}
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		question := fmt.Sprintf("Delete %s brewed %s?", entry.CoffeeName, entry.Date.Local().Format("Jan 2 15:04"))
		ok, err := cli.Confirm(ctx, cli.NewLineReader(cmd.InOrStdin()), cmd.OutOrStdout(), question)
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Nothing deleted"))
			return err
		}
	}

	if err := store.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete brew: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted "+id))
	return err
}

func journalImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import brews from a JSON array",
		Long: `Import brew log entries from a JSON file holding an array of entries
in the same shape that 'journal list -o json' prints.

Entries whose ID already exists are skipped. Invalid entries are reported
and skipped. Interrupting keeps everything imported so far.`,
		Args: cobra.ExactArgs(1),
		RunE: runJournalImport,
	}

	return cmd
}

type importResult struct {
	imported   atomic.Int64
	duplicates atomic.Int64
	invalid    atomic.Int64
	total      int
}

func (r *importResult) String() string {
	return fmt.Sprintf("Imported %d of %d brews (%d duplicates, %d invalid)",
		r.imported.Load(), r.total, r.duplicates.Load(), r.invalid.Load())
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return common.NewUserError("Could not read import file", err)
	}

	var entries []model.BrewLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return common.NewUserError("Import file is not a JSON array of brews", err)
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	result := &importResult{total: len(entries)}
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), result.String)
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	if err := importEntries(ctx, store, entries, result, cmd); err != nil && !handler.WasInterrupted() {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(result.String()))
	return err
}

func importEntries(ctx context.Context, store service.JournalStore, entries []model.BrewLogEntry, result *importResult, cmd *cobra.Command) error {
	bar := progressbar.NewOptions(len(entries),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing brews..."),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		}),
	)

	for i := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry := entries[i]
		switch err := store.SaveEntry(ctx, &entry); {
		case err == nil:
			result.imported.Add(1)
		case errors.Is(err, common.ErrDuplicateEntry):
			result.duplicates.Add(1)
		case errors.Is(err, common.ErrInvalidEntry):
			result.invalid.Add(1)
			slog.Warn("Skipping invalid brew", "index", i, "error", err)
		default:
			return fmt.Errorf("failed to import brew %d: %w", i, err)
		}

		if err := bar.Add(1); err != nil {
			slog.Debug("Failed to update progress bar", "error", err)
		}
	}

	return bar.Finish()
}

func journalStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show brewing statistics",
		Args:  cobra.NoArgs,
		RunE:  runJournalStats,
	}

	addOutputFlag(cmd)

	return cmd
}

func runJournalStats(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.ListEntries(ctx, service.EntryFilter{})
	if err != nil {
		return fmt.Errorf("failed to load brews: %w", err)
	}

	eng, err := initEngine()
	if err != nil {
		return err
	}

	summary := eng.CalculateAnalytics(entries)
	if format == cli.FormatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), summary)
	}
	return cli.RenderAnalytics(cmd.OutOrStdout(), summary)
}

func parseEntryTime(s string) (time.Time, error) {
	for _, layout := range entryTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, common.NewUserError(fmt.Sprintf("Cannot parse time %q (use YYYY-MM-DD or YYYY-MM-DD HH:MM)", s), common.ErrInvalidEntry)
}

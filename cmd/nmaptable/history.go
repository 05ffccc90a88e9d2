package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hakim/nmaptable/internal/storage"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously rendered reports",
	Long: `Display a table of reports recorded in the history database.

Reports are only recorded when history.enabled is set in the config file.
Rows are listed newest-first. Use --source to show only reports rendered from
one input file and --limit to cap the number of rows (default: 10). Use --id
to show a single report in full.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		limit, _ := cmd.Flags().GetInt("limit")
		id, _ := cmd.Flags().GetString("id")
		out := cmd.OutOrStdout()

		if cfg == nil {
			return fmt.Errorf("config not loaded")
		}

		// Do not create an empty database just to list it
		if _, err := os.Stat(cfg.History.DBPath); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(out, "No report history found at %s\n", cfg.History.DBPath)
			return nil
		}

		store, err := storage.NewStore(cfg.History.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		if id != "" {
			meta, err := store.GetReport(id)
			if err != nil {
				return fmt.Errorf("reading report %s: %w", id, err)
			}
			if meta == nil {
				return fmt.Errorf("report %s not found", id)
			}

			fmt.Fprintf(out, "Report ID:   %s\n", meta.ID)
			fmt.Fprintf(out, "Source:      %s\n", meta.Source)
			fmt.Fprintf(out, "Generated:   %s\n", meta.GeneratedAt.UTC().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Hosts:       %d\n", meta.HostCount)
			fmt.Fprintf(out, "Open ports:  %d\n", meta.OpenPortCount)
			return nil
		}

		if source != "" {
			source = sourcePath(source)
		}

		reports, err := store.ListReports(source)
		if err != nil {
			return fmt.Errorf("listing reports: %w", err)
		}

		if len(reports) == 0 {
			fmt.Fprintln(out, "No report history found")
			return nil
		}

		if limit > 0 && len(reports) > limit {
			reports = reports[:limit]
		}

		const separator = "────────────────────────────────────────────────────────────────────────"

		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "  %-3s  %-12s  %-20s  %-5s  %-10s  %s\n", "#", "Report ID", "Generated", "Hosts", "Open ports", "Source")
		fmt.Fprintln(out, separator)

		for i, r := range reports {
			fmt.Fprintf(out, "  %-3d  %-12s  %-20s  %-5d  %-10d  %s\n",
				i+1,
				shortReportID(r.ID),
				r.GeneratedAt.UTC().Format("2006-01-02 15:04"),
				r.HostCount,
				r.OpenPortCount,
				r.Source)
		}

		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "Total: %d report(s)\n", len(reports))

		return nil
	},
}

// shortReportID returns the first 8 characters of a UUID followed by "..."
func shortReportID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}

func init() {
	historyCmd.Flags().String("source", "", "only show reports rendered from this input file")
	historyCmd.Flags().Int("limit", 10, "Maximum number of reports to display")
	historyCmd.Flags().String("id", "", "show the full record of one report")
	rootCmd.AddCommand(historyCmd)
}

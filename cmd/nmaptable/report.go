package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/hakim/nmaptable/internal/models"
	"github.com/hakim/nmaptable/internal/nmapxml"
	"github.com/hakim/nmaptable/internal/report"
	"github.com/hakim/nmaptable/internal/storage"
	"github.com/spf13/cobra"
)

// runReport renders the report at path to the command's stdout and, when
// enabled, records it in the history store
func runReport(cmd *cobra.Command, path string) error {
	f, err := nmapxml.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	slog.Debug("reading scan report", "path", path)

	table, sum, err := report.RenderTable(nmapxml.Hosts(bufio.NewReader(f)))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if _, err := io.WriteString(cmd.OutOrStdout(), table); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	slog.Debug("report rendered", "hosts", sum.Hosts, "open_ports", sum.OpenPorts)

	if cfg != nil && cfg.History.Enabled {
		// The table is already out, so a history failure is only a warning
		if err := recordHistory(cfg.History.DBPath, sourcePath(path), sum); err != nil {
			slog.Warn("failed to record report history", "db_path", cfg.History.DBPath, "error", err)
		}
	}

	return nil
}

func recordHistory(dbPath, source string, sum report.Summary) error {
	store, err := storage.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	meta := models.NewReportMeta(source, sum.Hosts, sum.OpenPorts)
	if err := store.SaveReport(meta); err != nil {
		return fmt.Errorf("saving report record: %w", err)
	}

	slog.Debug("report recorded", "id", meta.ID, "source", source)
	return nil
}

// sourcePath returns the absolute form of path, used as the history key
func sourcePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

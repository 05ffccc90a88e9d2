package main

import (
	"fmt"

	"github.com/hakim/nmaptable/internal/config"
	"github.com/hakim/nmaptable/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "nmaptable <file>",
	Short: "Summarize an nmap XML report as a markdown table",
	Long: `nmaptable reads an nmap XML report (nmap -oX) and prints a markdown table
with one row per scanned host: its user-assigned name, its PTR name, its
address and the open ports with their detected services.

The table goes to stdout; logs and errors go to stderr. Nothing is printed
to stdout if any host in the report cannot be read.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args[0])
	},
}

// rootPersistentPreRunE is assigned in init because it refers to rootCmd.
func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	// Skip config loading for commands that don't need it
	skipConfig := map[string]bool{
		"init": true,
		"help": true,
	}

	level := "warn"
	var ignored error
	if !skipConfig[cmd.Name()] {
		var err error
		cfg, err = config.Load(cfgFile)
		switch {
		case err == nil:
			level = cfg.LogLevel
		case cmd == rootCmd && cfgFile == "":
			// A stray or broken config found by search must not block the report
			cfg = config.DefaultConfig()
			level = cfg.LogLevel
			ignored = err
		default:
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if verbose {
		level = "debug"
	}
	logger := logging.Setup(level)

	if ignored != nil {
		logger.Warn("ignoring config, using defaults", "error", ignored)
	}

	return nil
}

func init() {
	rootCmd.PersistentPreRunE = rootPersistentPreRunE

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: search for nmaptable.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging on stderr")

	rootCmd.Version = "0.1.0-dev"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

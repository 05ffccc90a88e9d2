package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakim/nmaptable/internal/config"
	"github.com/spf13/cobra"
)

var (
	initForce bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default nmaptable.yaml",
	Long: `Creates a default configuration file (nmaptable.yaml) in the output directory.

The defaults log warnings only and keep report history disabled. Set
history.enabled to true to record every rendered report in a local database
and list them with 'nmaptable history'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := filepath.Join(initDir, config.FileName)

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s. Use --force to overwrite", configPath)
		}

		if err := config.WriteDefault(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s with default configuration\n", configPath)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "output directory")
	rootCmd.AddCommand(initCmd)
}

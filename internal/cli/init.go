package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textlab/config"
	"textlab/internal/logger"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to .textlab/config.yaml",
	Long: `Create the .textlab data directory and write the configuration currently
in effect, defaults included, so it can be edited in place.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := GetRootDir()
	path := config.DataConfigPath(dir)

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := config.EnsureDataDir(dir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := GetConfig().Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logger.Info("Config written", "path", path)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

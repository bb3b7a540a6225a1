package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const initLongDescription = `Write linkdup.yaml to the current directory with every setting at its
current value, so it can be edited instead of repeating flags.

  run.*    defaults for run: min_size, max_size, merge, mtime, digest,
           smarthash, smarthash_threshold, parallel, normalize, groupby_relative, tui
  index.*  defaults for index: min_size, max_size, hash, normalize
  log.*    log file rotation: filename, level, max_size, max_backups, max_age, compress

Flags override the file, and LINKDUP_* environment variables override both
(for example LINKDUP_RUN_MIN_SIZE). An existing linkdup.yaml is never
overwritten.`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a linkdup.yaml holding the current settings",
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
